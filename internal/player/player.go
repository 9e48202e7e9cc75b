// Package player wraps the beep audio stack behind a small engine interface.
package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// File extensions the engine can decode.
const (
	ExtMP3 = ".mp3"
	ExtWAV = ".wav"
	ExtOGG = ".ogg"
)

// IsAudioFile returns true if the path has a playable extension.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtWAV, ExtOGG:
		return true
	}
	return false
}

// Player plays local audio files through the system speaker.
type Player struct {
	// state is written from the speaker goroutine when a track drains, so
	// every access goes through setState/State.
	state       atomic.Int32
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	streamer    beep.StreamSeekCloser
	format      beep.Format
	file        *os.File
	volumeLevel int
	finishedCh  chan struct{}
}

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// New creates a stopped player at full volume.
func New() *Player {
	return &Player{
		volumeLevel: 100,
		finishedCh:  make(chan struct{}, 1),
	}
}

func (p *Player) setState(s State) { p.state.Store(int32(s)) }

// State returns the current playback state.
func (p *Player) State() State { return State(p.state.Load()) }

// Play stops any current track, decodes the file and starts playback.
func (p *Player) Play(path string) error {
	p.Stop()

	// Drain any stale finish signal from the previous track.
	select {
	case <-p.finishedCh:
	default:
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !IsAudioFile(path) {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ExtMP3:
		streamer, format, err = mp3.Decode(f)
	case ExtWAV:
		streamer, format, err = wav.Decode(f)
	case ExtOGG:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	p.file = f
	p.streamer = streamer
	p.format = format

	// Resample if the track's sample rate differs from the speaker's.
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: levelToVolume(p.volumeLevel), Silent: p.volumeLevel == 0}

	p.setState(Playing)

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		// Runs on the speaker goroutine when the track drains naturally.
		// The streamer and file stay attached until the next Stop.
		p.setState(Stopped)
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
	})))

	return nil
}

// Stop halts playback and releases the streamer and file. A naturally
// drained track is already Stopped but still holds its resources, so the
// release is keyed on the streamer, not the state.
func (p *Player) Stop() {
	if p.streamer == nil {
		p.setState(Stopped)
		return
	}

	speaker.Clear()

	p.streamer.Close()
	p.streamer = nil
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.setState(Stopped)
}

// Pause pauses playback. No-op unless Playing.
func (p *Player) Pause() {
	if p.State() != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.setState(Paused)
}

// Resume resumes paused playback. No-op unless Paused.
func (p *Player) Resume() {
	if p.State() != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.setState(Playing)
}

// Position returns the playback position within the current track.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the length of the current track, 0 when stopped.
func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// SeekTo moves playback to an absolute position, clamped to the track bounds.
func (p *Player) SeekTo(position time.Duration) {
	if p.streamer == nil || p.State() == Stopped {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	sample := p.format.SampleRate.N(position)
	if sample < 0 {
		sample = 0
	}
	if limit := p.streamer.Len() - 1; sample > limit {
		sample = limit
	}
	_ = p.streamer.Seek(sample)
}

// FinishedChan signals once per track when output naturally reaches the end.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}
