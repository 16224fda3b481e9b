package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/digerati-red/dev-smoked-salmon/internal/config"
	"github.com/digerati-red/dev-smoked-salmon/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckTools evaluates the configured external binaries.
func CheckTools(tools config.Tools) []deps.Status {
	return deps.CheckBinaries(deps.Default(tools))
}

// FreeBytes returns the free space of the filesystem containing path. For a
// file path the containing directory is measured.
func FreeBytes(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		path = filepath.Dir(path)
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("statfs %s: %w", path, err)
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}

// CheckFreeSpace verifies that at least minBytes are free next to path.
// Full sanitization re-encodes alongside the original, so scratch space has
// to exist before any file is renamed aside.
func CheckFreeSpace(path string, minBytes uint64) Result {
	const name = "Free space"
	free, err := FreeBytes(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if free < minBytes {
		return Result{
			Name:   name,
			Detail: fmt.Sprintf("%d MiB free, %d MiB required", free/(1<<20), minBytes/(1<<20)),
		}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d MiB free", free/(1<<20))}
}
