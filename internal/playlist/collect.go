package playlist

import (
	"os"
	"path/filepath"

	"github.com/mveldt/chime/internal/player"
)

// CollectFolder recursively gathers every playable audio file under root,
// in filesystem enumeration order. Entries that cannot be read are skipped
// rather than aborting the walk.
func CollectFolder(root string) ([]Track, error) {
	var tracks []Track
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip unreadable entries, continue walking
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() {
			return nil
		}
		if !player.IsAudioFile(path) {
			return nil
		}
		tracks = append(tracks, Track{Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tracks, nil
}
