package integrity

import (
	"context"

	"github.com/digerati-red/dev-smoked-salmon/internal/flacmeta"
	"github.com/digerati-red/dev-smoked-salmon/internal/services/mp3val"
)

// FlacCodec is the capability surface of the flac binary that verification
// and sanitization consume. Satisfied by flaccli.Client.
type FlacCodec interface {
	Test(ctx context.Context, path string) (stderr string, err error)
	DecodeMD5(ctx context.Context, path string) ([16]byte, error)
	Encode(ctx context.Context, inputPath, outputPath string) (string, error)
}

// MetadataEditor is the capability surface of metaflac. Satisfied by
// metaflac.Client.
type MetadataEditor interface {
	StripBlocks(ctx context.Context, path string) error
	AddPadding(ctx context.Context, path string, bytes int) error
}

// MP3Validator is the capability surface of mp3val. Satisfied by
// mp3val.Client.
type MP3Validator interface {
	Scan(ctx context.Context, path string) (mp3val.ScanResult, error)
	Rebuild(ctx context.Context, path string) error
}

// SignatureStore reads and writes the MD5 signature stored in a FLAC
// header. The zero signature means absent.
type SignatureStore interface {
	Read(path string) (flacmeta.Signature, error)
	Write(path string, sig flacmeta.Signature) error
}

// HeaderSignatures is the default SignatureStore, backed by flacmeta.
type HeaderSignatures struct{}

func (HeaderSignatures) Read(path string) (flacmeta.Signature, error) {
	return flacmeta.ReadMD5Signature(path)
}

func (HeaderSignatures) Write(path string, sig flacmeta.Signature) error {
	return flacmeta.WriteMD5Signature(path, sig)
}
