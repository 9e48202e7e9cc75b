// Package playlist holds the ordered track sequence and its cursor.
package playlist

// Track represents a single entry in the playlist.
// A track has no identity beyond its absolute file path.
type Track struct {
	Path string
}

// Playlist is an ordered sequence of tracks with a cursor addressing the
// current one. The cursor is always in [0, len) while the playlist is
// non-empty and has no meaning when it is empty.
type Playlist struct {
	tracks []Track
	cursor int
}

// New creates a new empty playlist.
func New() *Playlist {
	return &Playlist{tracks: make([]Track, 0)}
}

// Current returns the track under the cursor.
// The second return is false when the playlist is empty.
func (p *Playlist) Current() (Track, bool) {
	if len(p.tracks) == 0 {
		return Track{}, false
	}
	return p.tracks[p.cursor], true
}

// CurrentIndex returns the cursor position (0 when empty).
func (p *Playlist) CurrentIndex() int {
	return p.cursor
}

// Append adds tracks to the end without moving the cursor.
func (p *Playlist) Append(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Replace swaps the contents for the given tracks and resets the cursor to 0.
func (p *Playlist) Replace(tracks ...Track) {
	p.tracks = append(p.tracks[:0], tracks...)
	p.cursor = 0
}

// Clear removes all tracks and resets the cursor.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
	p.cursor = 0
}

// Advance moves the cursor forward one entry, wrapping past the end.
// On a single-entry playlist it re-selects the same track.
func (p *Playlist) Advance() (Track, bool) {
	if len(p.tracks) == 0 {
		return Track{}, false
	}
	p.cursor = (p.cursor + 1) % len(p.tracks)
	return p.tracks[p.cursor], true
}

// Retreat moves the cursor back one entry, wrapping before the start.
func (p *Playlist) Retreat() (Track, bool) {
	if len(p.tracks) == 0 {
		return Track{}, false
	}
	p.cursor = (p.cursor - 1 + len(p.tracks)) % len(p.tracks)
	return p.tracks[p.cursor], true
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}
