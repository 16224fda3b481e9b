package integrity

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/digerati-red/dev-smoked-salmon/internal/flacmeta"
	"github.com/digerati-red/dev-smoked-salmon/internal/services/mp3val"
)

// fakeFlac scripts the flac binary per path.
type fakeFlac struct {
	testStderr map[string]string
	testErr    map[string]error
	decoded    map[string][16]byte
	decodeErr  map[string]error
	encodeErr  error
	// encodeOutput, when true, creates the output file like the real
	// encoder would.
	encodeOutput bool
	encodeCalls  []string
}

func (f *fakeFlac) Test(_ context.Context, path string) (string, error) {
	return f.testStderr[path], f.testErr[path]
}

func (f *fakeFlac) DecodeMD5(_ context.Context, path string) ([16]byte, error) {
	if err := f.decodeErr[path]; err != nil {
		return [16]byte{}, err
	}
	return f.decoded[path], nil
}

func (f *fakeFlac) Encode(_ context.Context, inputPath, outputPath string) (string, error) {
	f.encodeCalls = append(f.encodeCalls, inputPath)
	if f.encodeErr != nil {
		return "encode output", f.encodeErr
	}
	if f.encodeOutput {
		if err := os.WriteFile(outputPath, []byte("reencoded"), 0o644); err != nil {
			return "", err
		}
	}
	return "", nil
}

// fakeMeta records metaflac operations.
type fakeMeta struct {
	stripErr   error
	padErr     error
	stripCalls []string
	padCalls   []string
}

func (m *fakeMeta) StripBlocks(_ context.Context, path string) error {
	m.stripCalls = append(m.stripCalls, path)
	return m.stripErr
}

func (m *fakeMeta) AddPadding(_ context.Context, path string, _ int) error {
	m.padCalls = append(m.padCalls, path)
	return m.padErr
}

// fakeMP3 scripts mp3val behavior per path.
type fakeMP3 struct {
	scan         map[string]mp3val.ScanResult
	scanErr      map[string]error
	rebuildErr   map[string]error
	rebuildCalls []string
}

func (m *fakeMP3) Scan(_ context.Context, path string) (mp3val.ScanResult, error) {
	return m.scan[path], m.scanErr[path]
}

func (m *fakeMP3) Rebuild(_ context.Context, path string) error {
	m.rebuildCalls = append(m.rebuildCalls, path)
	return m.rebuildErr[path]
}

// fakeSignatures is an in-memory SignatureStore.
type fakeSignatures struct {
	stored  map[string]flacmeta.Signature
	readErr map[string]error
	written map[string]flacmeta.Signature
}

func newFakeSignatures() *fakeSignatures {
	return &fakeSignatures{
		stored:  make(map[string]flacmeta.Signature),
		readErr: make(map[string]error),
		written: make(map[string]flacmeta.Signature),
	}
}

func (s *fakeSignatures) Read(path string) (flacmeta.Signature, error) {
	if err := s.readErr[path]; err != nil {
		return flacmeta.Signature{}, err
	}
	return s.stored[path], nil
}

func (s *fakeSignatures) Write(path string, sig flacmeta.Signature) error {
	s.written[path] = sig
	s.stored[path] = sig
	return nil
}

var errExit = errors.New("exit status 1")

func sig(b byte) flacmeta.Signature {
	var s flacmeta.Signature
	for i := range s {
		s[i] = b
	}
	return s
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
