// Package session implements the playback session controller: the
// play/pause/resume/stop state machine, the playlist cursor, timed position
// refresh and end-of-track auto-advance. The session exclusively owns the
// live playlist and the engine handle.
package session

import (
	"errors"
	"time"

	"github.com/mveldt/chime/internal/artwork"
	"github.com/mveldt/chime/internal/errmsg"
	"github.com/mveldt/chime/internal/meta"
	"github.com/mveldt/chime/internal/player"
	"github.com/mveldt/chime/internal/playlist"
)

// ErrNoFileSelected is returned when play is requested on an empty playlist.
var ErrNoFileSelected = errors.New("file not selected")

// NoFileMessage is the user-facing text for ErrNoFileSelected.
const NoFileMessage = "Error: file not selected!"

// Notifier is the transient notice channel the session reports through.
type Notifier interface {
	Show(msg string)
	Clear()
}

// Session drives the engine through user actions and engine events.
// All methods must be called from a single goroutine; engine status events
// are funneled onto that goroutine before HandleFinished is invoked.
type Session struct {
	engine   player.Interface
	list     *playlist.Playlist
	resolver *meta.Resolver
	notifier Notifier

	// Display state, recomputed on track load and on every tick.
	title      string
	author     string
	album      string
	genre      string
	year       string
	fileSize   int64
	background artwork.RGB
	elapsed    string
	durLabel   string
	duration   time.Duration
}

// New creates a stopped session with an empty playlist.
func New(engine player.Interface, resolver *meta.Resolver, notifier Notifier) *Session {
	return &Session{
		engine:     engine,
		list:       playlist.New(),
		resolver:   resolver,
		notifier:   notifier,
		background: artwork.Default(),
	}
}

// Toggle is the single user-facing play/pause/resume action.
// On an empty playlist it reports ErrNoFileSelected and changes nothing.
func (s *Session) Toggle() error {
	if s.list.IsEmpty() {
		s.notifier.Show(NoFileMessage)
		return ErrNoFileSelected
	}
	s.notifier.Clear()

	switch s.engine.State() {
	case player.Stopped:
		return s.play()
	case player.Playing:
		s.engine.Pause()
	case player.Paused:
		s.engine.Resume()
	}
	return nil
}

// Next advances the cursor with wraparound and plays the new current track.
// A single-entry playlist replays the same track.
func (s *Session) Next() error {
	if _, ok := s.list.Advance(); !ok {
		return nil
	}
	s.refreshTrack()
	return s.play()
}

// Previous retreats the cursor with wraparound and plays the new current track.
func (s *Session) Previous() error {
	if _, ok := s.list.Retreat(); !ok {
		return nil
	}
	s.refreshTrack()
	return s.play()
}

// Stop halts the engine and clears the entire playlist, not just the position.
func (s *Session) Stop() {
	s.engine.Stop()
	s.list.Clear()
	s.refreshTrack()
}

// OpenFile replaces the playlist with the single given file.
// An empty path means the user cancelled selection: nothing happens.
func (s *Session) OpenFile(path string) error {
	if path == "" {
		return nil
	}
	s.Stop()
	s.list.Replace(playlist.Track{Path: path})
	s.notifier.Clear()
	s.refreshTrack()
	return nil
}

// OpenFolder replaces the playlist with every playable file under the folder,
// in filesystem enumeration order. An empty path means cancelled selection.
// An empty result leaves the "no track" display state.
func (s *Session) OpenFolder(path string) error {
	if path == "" {
		return nil
	}
	s.Stop()

	tracks, err := playlist.CollectFolder(path)
	if err != nil {
		s.notifier.Show(errmsg.FormatWith(errmsg.OpOpenFolder, path, err))
		return err
	}

	s.list.Replace(tracks...)
	s.notifier.Clear()
	s.refreshTrack()
	return nil
}

// SeekTo moves the engine position and recomputes the elapsed indicator
// immediately, without waiting for the next tick.
func (s *Session) SeekTo(position time.Duration) {
	s.engine.SeekTo(position)
	s.elapsed = meta.Clock(s.engine.Position())
}

// Tick refreshes the elapsed-position indicator. Recurring once a second,
// effective only while Playing.
func (s *Session) Tick() {
	if s.engine.State() != player.Playing {
		return
	}
	s.elapsed = meta.Clock(s.engine.Position())
}

// HandleFinished reacts to the engine's end-of-output status event.
// The elapsed label matching the duration label is the sole "actually
// finished" signal; it is a coarse heuristic bounded by tick granularity.
// With more than one entry the session advances, otherwise it replays the
// single track from the start.
func (s *Session) HandleFinished() {
	if s.engine.State() != player.Stopped {
		return
	}
	if !labelsMatch(s.elapsed, s.durLabel) {
		return
	}
	if s.list.Len() > 1 {
		_ = s.Next()
		return
	}
	_ = s.play()
}

// SetVolume passes the level (0-100) through to the engine.
func (s *Session) SetVolume(level int) {
	s.engine.SetVolume(level)
}

// Volume returns the engine volume level.
func (s *Session) Volume() int {
	return s.engine.Volume()
}

// CurrentTrack returns the track under the cursor, if any.
func (s *Session) CurrentTrack() (playlist.Track, bool) {
	return s.list.Current()
}

// PlayPaths replaces the playlist with the given paths, positions the cursor
// on index and starts playback. Used by the favorites view to push a liked
// entry back into the session.
func (s *Session) PlayPaths(paths []string, index int) error {
	if len(paths) == 0 {
		s.notifier.Show(NoFileMessage)
		return ErrNoFileSelected
	}
	s.Stop()

	tracks := make([]playlist.Track, len(paths))
	for i, p := range paths {
		tracks[i] = playlist.Track{Path: p}
	}
	s.list.Replace(tracks...)
	for i := 0; i < index && i < len(paths)-1; i++ {
		s.list.Advance()
	}

	s.notifier.Clear()
	s.refreshTrack()
	return s.play()
}

// SetError surfaces a message on the session's notice channel.
func (s *Session) SetError(msg string) {
	s.notifier.Show(msg)
}

// play loads the current cursor's track into the engine and starts playback.
func (s *Session) play() error {
	track, ok := s.list.Current()
	if !ok {
		s.notifier.Show(NoFileMessage)
		return ErrNoFileSelected
	}

	if err := s.engine.Play(track.Path); err != nil {
		s.notifier.Show(errmsg.Format(errmsg.OpPlaybackStart, err))
		return err
	}

	s.elapsed = "0:00"
	return nil
}

// labelsMatch compares the elapsed and duration labels coarsely, ignoring
// the final digit: the duration label rounds its seconds up by one, so an
// exact string match would never occur.
func labelsMatch(elapsed, duration string) bool {
	if len(elapsed) < 2 || len(duration) < 2 {
		return false
	}
	return elapsed[:len(elapsed)-1] == duration[:len(duration)-1]
}
