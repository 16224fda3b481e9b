// Package fileutil provides small filesystem and path display helpers.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ShortenPath trims a path for display to at most maxDirs directory
// components plus the file name, prefixing an ellipsis when anything was
// dropped.
func ShortenPath(path string, maxDirs int) string {
	if maxDirs <= 0 {
		return filepath.Base(path)
	}
	parts := strings.Split(filepath.Clean(path), string(filepath.Separator))
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) <= maxDirs+1 {
		return path
	}
	kept := parts[len(parts)-maxDirs-1:]
	return "..." + string(filepath.Separator) + filepath.Join(kept...)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
