// Package meta resolves per-track display metadata: title, author, duration
// and embedded artwork. Results are cached per path for the process lifetime.
package meta

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/dhowden/tag"
)

// ErrUnavailable is returned when no metadata can be read from a file.
var ErrUnavailable = errors.New("metadata unavailable")

// Metadata holds the raw resolved values for one track.
// Display transforms (truncation, author joining) are applied separately.
type Metadata struct {
	Path     string
	Title    string
	Author   string // raw tag value, possibly "/"-delimited, empty if absent
	Album    string
	Genre    string
	Year     string
	Duration time.Duration
	Artwork  []byte // embedded picture bytes, nil if absent
	FileSize int64
}

// Resolver reads tags and audio properties from local files.
type Resolver struct {
	mu    sync.Mutex
	cache map[string]*Metadata
}

// NewResolver creates a resolver with an empty cache.
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[string]*Metadata)}
}

// Resolve returns metadata for the given path, from cache when possible.
// A file whose tags cannot be read still resolves: the title falls back to
// the final path segment, author stays empty and duration stays unknown.
func (r *Resolver) Resolve(path string) (*Metadata, error) {
	r.mu.Lock()
	if md, ok := r.cache[path]; ok {
		r.mu.Unlock()
		return md, nil
	}
	r.mu.Unlock()

	md, err := resolve(path)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[path] = md
	r.mu.Unlock()
	return md, nil
}

// Invalidate drops the cached entry for a path.
func (r *Resolver) Invalidate(path string) {
	r.mu.Lock()
	delete(r.cache, path)
	r.mu.Unlock()
}

func resolve(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	md := &Metadata{
		Path:  path,
		Title: filepath.Base(path),
	}

	if fi, err := f.Stat(); err == nil {
		md.FileSize = fi.Size()
	}

	m, err := tag.ReadFrom(f)
	if err == nil {
		if title := m.Title(); title != "" {
			md.Title = title
		}
		md.Author = m.Artist()
		md.Album = m.Album()
		md.Genre = m.Genre()
		if year := m.Year(); year != 0 {
			md.Year = strconv.Itoa(year)
		}
		if pic := m.Picture(); pic != nil {
			md.Artwork = pic.Data
		}
	}

	md.Duration = readDuration(path)

	return md, nil
}
