package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShortenPathKeepsShortPaths(t *testing.T) {
	path := "/music/album/track.flac"
	if got := ShortenPath(path, 4); got != path {
		t.Fatalf("expected %q unchanged, got %q", path, got)
	}
}

func TestShortenPathTrimsDeepPaths(t *testing.T) {
	path := "/srv/library/artist/year/album/cd1/track.flac"
	got := ShortenPath(path, 4)
	want := "..." + string(filepath.Separator) + filepath.Join("artist", "year", "album", "cd1", "track.flac")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestShortenPathZeroDirs(t *testing.T) {
	if got := ShortenPath("/a/b/c/track.flac", 0); got != "track.flac" {
		t.Fatalf("expected base name, got %q", got)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x")
	if FileExists(path) {
		t.Fatal("missing file reported as existing")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Fatal("existing file reported as missing")
	}
	if FileExists(dir) {
		t.Fatal("directory reported as regular file")
	}
}
