package session

import (
	"time"

	"github.com/mveldt/chime/internal/artwork"
	"github.com/mveldt/chime/internal/meta"
	"github.com/mveldt/chime/internal/player"
)

// Snapshot is the session's complete display state, handed to the UI layer.
type Snapshot struct {
	State    player.State
	HasTrack bool
	Path     string

	Title  string
	Author string
	Album  string
	Genre  string
	Year   string

	FileSize int64

	Background artwork.RGB

	Elapsed       string // "m:ss", zero-padded seconds
	DurationLabel string // total length, seconds rounded up by one
	Position      time.Duration
	Duration      time.Duration

	Volume     int
	QueueLen   int
	QueueIndex int
}

// Snapshot captures the current display state.
func (s *Session) Snapshot() Snapshot {
	track, ok := s.list.Current()

	snap := Snapshot{
		State:         s.engine.State(),
		HasTrack:      ok,
		Title:         s.title,
		Author:        s.author,
		Album:         s.album,
		Genre:         s.genre,
		Year:          s.year,
		FileSize:      s.fileSize,
		Background:    s.background,
		Elapsed:       s.elapsed,
		DurationLabel: s.durLabel,
		Position:      s.engine.Position(),
		Duration:      s.duration,
		Volume:        s.engine.Volume(),
		QueueLen:      s.list.Len(),
		QueueIndex:    s.list.CurrentIndex(),
	}
	if ok {
		snap.Path = track.Path
	}
	return snap
}

// refreshTrack recomputes display metadata and background color for the
// track under the cursor, or resets to the "no track" state.
func (s *Session) refreshTrack() {
	track, ok := s.list.Current()
	if !ok {
		s.title = ""
		s.author = ""
		s.album = ""
		s.genre = ""
		s.year = ""
		s.fileSize = 0
		s.background = artwork.Default()
		s.elapsed = "0:00"
		s.durLabel = ""
		s.duration = 0
		return
	}

	md, err := s.resolver.Resolve(track.Path)
	if err != nil {
		// Degrade to path-derived title, default artwork, unknown duration.
		s.title = meta.DisplayTitle(baseName(track.Path))
		s.author = meta.UnknownAuthor
		s.album = ""
		s.genre = ""
		s.year = ""
		s.fileSize = 0
		s.background = artwork.Default()
		s.elapsed = "0:00"
		s.durLabel = meta.DurationClock(0)
		s.duration = 0
		return
	}

	s.title = meta.DisplayTitle(md.Title)
	s.author = meta.DisplayAuthor(md.Author)
	s.album = md.Album
	s.genre = md.Genre
	s.year = md.Year
	s.fileSize = md.FileSize
	s.background = artwork.FromImageData(md.Artwork)
	s.elapsed = "0:00"
	s.durLabel = meta.DurationClock(md.Duration)
	s.duration = md.Duration
}

// baseName returns the substring after the last path separator.
func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}
