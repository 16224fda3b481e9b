package preflight

import (
	"testing"

	"github.com/digerati-red/dev-smoked-salmon/internal/config"
)

func TestCheckToolsReportsMissingBinaries(t *testing.T) {
	tools := config.Tools{
		Flac:     "definitely-not-a-flac-binary",
		Metaflac: "definitely-not-a-metaflac-binary",
		MP3Val:   "definitely-not-a-mp3val-binary",
	}
	statuses := CheckTools(tools)
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	for _, status := range statuses {
		if status.Available {
			t.Fatalf("expected %s to be unavailable", status.Name)
		}
	}
}

func TestFreeBytesOnTempDir(t *testing.T) {
	free, err := FreeBytes(t.TempDir())
	if err != nil {
		t.Fatalf("FreeBytes returned error: %v", err)
	}
	if free == 0 {
		t.Fatal("expected nonzero free space in temp dir")
	}
}

func TestCheckFreeSpacePassesWithZeroMinimum(t *testing.T) {
	result := CheckFreeSpace(t.TempDir(), 0)
	if !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}
}

func TestCheckFreeSpaceFailsOnMissingPath(t *testing.T) {
	result := CheckFreeSpace("/definitely/not/a/path", 1)
	if result.Passed {
		t.Fatal("expected failure for missing path")
	}
}
