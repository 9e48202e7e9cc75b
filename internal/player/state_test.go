package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_IsActive(t *testing.T) {
	if Stopped.IsActive() {
		t.Error("Stopped.IsActive() = true")
	}
	if !Playing.IsActive() {
		t.Error("Playing.IsActive() = false")
	}
	if !Paused.IsActive() {
		t.Error("Paused.IsActive() = false")
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/track.mp3", true},
		{"/music/track.wav", true},
		{"/music/track.ogg", true},
		{"/music/TRACK.MP3", true},
		{"/music/track.flac", false},
		{"/music/cover.jpg", false},
		{"/music/track", false},
	}

	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLevelToVolume(t *testing.T) {
	if got := levelToVolume(100); got != 0 {
		t.Errorf("levelToVolume(100) = %v, want 0 (unchanged)", got)
	}
	if got := levelToVolume(50); got != -1 {
		t.Errorf("levelToVolume(50) = %v, want -1 (half volume)", got)
	}
	if got := levelToVolume(0); got != -10 {
		t.Errorf("levelToVolume(0) = %v, want -10 (silent)", got)
	}
}

func TestMock_StateMachine(t *testing.T) {
	m := NewMock()

	if m.State() != Stopped {
		t.Fatalf("initial state = %v, want Stopped", m.State())
	}

	// Pause and Resume are no-ops outside their source states.
	m.Pause()
	if m.State() != Stopped {
		t.Errorf("Pause from Stopped moved state to %v", m.State())
	}

	if err := m.Play("/a.mp3"); err != nil {
		t.Fatal(err)
	}
	m.Resume()
	if m.State() != Playing {
		t.Errorf("Resume from Playing moved state to %v", m.State())
	}

	m.Pause()
	if m.State() != Paused {
		t.Errorf("state = %v after Pause, want Paused", m.State())
	}
	m.Resume()
	if m.State() != Playing {
		t.Errorf("state = %v after Resume, want Playing", m.State())
	}
	m.Stop()
	if m.State() != Stopped {
		t.Errorf("state = %v after Stop, want Stopped", m.State())
	}
}
