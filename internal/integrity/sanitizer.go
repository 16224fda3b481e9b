package integrity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/digerati-red/dev-smoked-salmon/internal/audio"
	"github.com/digerati-red/dev-smoked-salmon/internal/flacmeta"
	"github.com/digerati-red/dev-smoked-salmon/internal/services/mp3val"
)

// BackupSuffix marks the renamed original during a full FLAC sanitization.
// The backup survives any failed repair step so the audio data is never
// silently destroyed.
const BackupSuffix = ".corrupted"

// Sanitizer applies format-specific repair procedures to files that failed
// verification.
type Sanitizer struct {
	flac         FlacCodec
	meta         MetadataEditor
	mp3          MP3Validator
	signatures   SignatureStore
	paddingBytes int
	logger       *slog.Logger
}

// NewSanitizer constructs a sanitizer over the given tool capabilities.
func NewSanitizer(flac FlacCodec, meta MetadataEditor, mp3 MP3Validator, signatures SignatureStore, paddingBytes int, logger *slog.Logger) *Sanitizer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if paddingBytes <= 0 {
		paddingBytes = 8192
	}
	return &Sanitizer{
		flac:         flac,
		meta:         meta,
		mp3:          mp3,
		signatures:   signatures,
		paddingBytes: paddingBytes,
		logger:       logger,
	}
}

// Sanitize repairs one file. Failures are contained at file granularity:
// the outcome reports success=false and the cause is logged, but nothing
// propagates to sibling files.
func (s *Sanitizer) Sanitize(ctx context.Context, file audio.File, md5Only bool) SanitizeOutcome {
	var err error
	switch file.Format {
	case audio.FormatFLAC:
		err = s.sanitizeFLAC(ctx, file.Path, md5Only)
	case audio.FormatMP3:
		err = s.sanitizeMP3(ctx, file.Path)
	default:
		err = fmt.Errorf("file type %s is not supported", file.Format)
	}
	if err != nil {
		s.logger.Error("failed to sanitize", "path", file.Path, "error", err)
		return SanitizeOutcome{Path: file.Path, Success: false}
	}
	return SanitizeOutcome{Path: file.Path, Success: true}
}

func (s *Sanitizer) sanitizeFLAC(ctx context.Context, path string, md5Only bool) error {
	if md5Only {
		return s.rewriteSignature(ctx, path)
	}

	backup := path + BackupSuffix
	if err := os.Rename(path, backup); err != nil {
		return fmt.Errorf("set aside original: %w", err)
	}

	// From here on the backup stays in place whenever a step fails, so a
	// botched repair is always recoverable by hand.
	output, err := s.flac.Encode(ctx, backup, path)
	if err != nil {
		return fmt.Errorf("FLAC encoding failed (original kept at %s): %w\n%s", backup, err, output)
	}
	if err := os.Remove(backup); err != nil {
		return fmt.Errorf("remove backup copy: %w", err)
	}
	if err := s.meta.StripBlocks(ctx, path); err != nil {
		return fmt.Errorf("failed to remove FLAC metadata blocks: %w", err)
	}
	if err := s.meta.AddPadding(ctx, path, s.paddingBytes); err != nil {
		return fmt.Errorf("failed to add FLAC padding: %w", err)
	}
	return nil
}

// rewriteSignature recomputes the audio MD5 and stores it when it differs.
// A signature that already matches is a no-op success: the file was flagged
// for some other reason and MD5-only mode intentionally does not fix that.
func (s *Sanitizer) rewriteSignature(ctx context.Context, path string) error {
	stored, err := s.signatures.Read(path)
	if err != nil {
		return fmt.Errorf("read stored MD5: %w", err)
	}
	sum, err := s.flac.DecodeMD5(ctx, path)
	if err != nil {
		return fmt.Errorf("compute MD5: %w", err)
	}
	calculated := flacmeta.Signature(sum)
	if calculated == stored {
		return nil
	}
	if err := s.signatures.Write(path, calculated); err != nil {
		return fmt.Errorf("write MD5 signature: %w", err)
	}
	s.logger.Info("updated MD5 signature", "path", path, "md5", calculated.Hex())
	return nil
}

func (s *Sanitizer) sanitizeMP3(ctx context.Context, path string) error {
	if err := s.mp3.Rebuild(ctx, path); err != nil {
		if errors.Is(err, mp3val.ErrCannotSync) {
			return fmt.Errorf("can't sync to MPEG frame, the MP3 file appears to be corrupted: %w", err)
		}
		return err
	}
	return nil
}
