package audio

import (
	"path/filepath"
	"strings"
)

// Format identifies the audio container of a discovered file.
type Format int

const (
	FormatUnsupported Format = iota
	FormatFLAC
	FormatMP3
)

// String returns a short display name for the format.
func (f Format) String() string {
	switch f {
	case FormatFLAC:
		return "FLAC"
	case FormatMP3:
		return "MP3"
	default:
		return "unsupported"
	}
}

// File is an immutable reference to a discovered audio file. The format is
// derived from the extension once, at discovery time.
type File struct {
	Path   string
	Format Format
}

// NewFile builds a File for path, detecting its format from the extension.
func NewFile(path string) File {
	return File{Path: path, Format: DetectFormat(path)}
}

// DetectFormat maps a file extension onto the closed set of supported
// formats. Matching is case-insensitive.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".flac":
		return FormatFLAC
	case ".mp3":
		return FormatMP3
	default:
		return FormatUnsupported
	}
}
