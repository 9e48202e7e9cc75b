package player

import (
	"os"
	"path/filepath"
	"testing"
)

type stubStreamer struct {
	closed bool
}

func (s *stubStreamer) Stream(samples [][2]float64) (int, bool) { return 0, false }
func (s *stubStreamer) Err() error                              { return nil }
func (s *stubStreamer) Len() int                                { return 0 }
func (s *stubStreamer) Position() int                           { return 0 }
func (s *stubStreamer) Seek(p int) error                        { return nil }
func (s *stubStreamer) Close() error                            { s.closed = true; return nil }

func TestStop_ReleasesDrainedTrackResources(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "track.mp3"))
	if err != nil {
		t.Fatal(err)
	}

	p := New()
	st := &stubStreamer{}
	p.streamer = st
	p.file = f
	// A naturally drained track: the finish callback marks the player
	// stopped while the streamer and file stay attached.
	p.setState(Stopped)

	p.Stop()

	if !st.closed {
		t.Error("streamer not closed by Stop after natural finish")
	}
	if p.streamer != nil {
		t.Error("streamer still attached after Stop")
	}
	if p.file != nil {
		t.Error("file still attached after Stop")
	}
	if err := f.Close(); err == nil {
		t.Error("file still open after Stop")
	}
}

func TestStop_NothingAttachedIsNoOp(t *testing.T) {
	p := New()
	p.Stop()

	if p.State() != Stopped {
		t.Errorf("State() = %v after Stop, want Stopped", p.State())
	}
}
