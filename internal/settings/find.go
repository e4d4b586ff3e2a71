package settings

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileName is the name of the file generated by configure.
const FileName = "config.rust"

// Find looks for FileName in start and then in each parent directory in
// turn. It returns the path of the first match, or an error wrapping
// ErrNotFound once the filesystem root has been checked.
func Find(fs afero.Fs, start string) (string, error) {
	dir := filepath.Clean(start)
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := fs.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("searching from %s: %w", start, ErrNotFound)
		}
		dir = parent
	}
}
