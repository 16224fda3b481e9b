package audio

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Discover resolves path to the flat, ordered list of supported audio files
// beneath it. A supported single file yields a one-element list; a directory
// is walked recursively in lexical order. An empty result is not an error.
func Discover(path string) ([]File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	if !info.IsDir() {
		file := NewFile(abs)
		if file.Format == FormatUnsupported {
			return nil, nil
		}
		return []File{file}, nil
	}

	var files []File
	err = filepath.WalkDir(abs, func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if file := NewFile(p); file.Format != FormatUnsupported {
			files = append(files, file)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", abs, err)
	}
	return files, nil
}
