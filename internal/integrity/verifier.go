package integrity

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/digerati-red/dev-smoked-salmon/internal/audio"
	"github.com/digerati-red/dev-smoked-salmon/internal/flacmeta"
	"github.com/digerati-red/dev-smoked-salmon/internal/textutil"
)

// Verifier runs format-specific integrity checks over single files.
type Verifier struct {
	flac       FlacCodec
	mp3        MP3Validator
	signatures SignatureStore
	logger     *slog.Logger
}

// NewVerifier constructs a verifier over the given tool capabilities.
func NewVerifier(flac FlacCodec, mp3 MP3Validator, signatures SignatureStore, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Verifier{flac: flac, mp3: mp3, signatures: signatures, logger: logger}
}

// Verify checks one file and returns its outcome. Tool failures never
// escape; they are folded into the outcome as messages.
func (v *Verifier) Verify(ctx context.Context, file audio.File) CheckOutcome {
	switch file.Format {
	case audio.FormatFLAC:
		return v.verifyFLAC(ctx, file.Path)
	case audio.FormatMP3:
		return v.verifyMP3(ctx, file.Path)
	default:
		v.logger.Debug("skipping unsupported format", "path", file.Path)
		return CheckOutcome{Path: file.Path, OK: true, Skipped: true}
	}
}

// verifyFLAC runs the bitstream test, the warning scan, and the MD5
// cross-check. The steps are independent: a failed step contributes its
// message and the remaining steps still run.
func (v *Verifier) verifyFLAC(ctx context.Context, path string) CheckOutcome {
	outcome := CheckOutcome{Path: path, OK: true}

	stderr, err := v.flac.Test(ctx, path)
	if err != nil {
		outcome.OK = false
		if stderr != "" {
			outcome.Messages = append(outcome.Messages,
				"FLAC integrity check failed:\n"+bullet(textutil.ImportantLines(stderr)))
		} else {
			outcome.Messages = append(outcome.Messages,
				fmt.Sprintf("Error running FLAC integrity check: %v", err))
		}
	}

	// Some defects only surface as warnings on a zero exit.
	if strings.Contains(stderr, "WARNING") {
		outcome.OK = false
		message := "FLAC integrity check warnings:\n" + bullet(textutil.ImportantLines(stderr))
		// Near-duplicate suppression affects display only; the verdict
		// above already stands.
		if !textutil.SimilarToAny(message, outcome.Messages, textutil.DefaultSimilarityThreshold) {
			outcome.Messages = append(outcome.Messages, message)
		}
	}

	v.verifyFLACSignature(ctx, path, &outcome)

	outcome.Repairable = !outcome.OK
	return outcome
}

func (v *Verifier) verifyFLACSignature(ctx context.Context, path string, outcome *CheckOutcome) {
	stored, err := v.signatures.Read(path)
	if err != nil {
		outcome.OK = false
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("Error checking MD5: %v", err))
		return
	}
	if stored.IsZero() {
		outcome.OK = false
		outcome.Messages = append(outcome.Messages, "No MD5 signature present")
		return
	}

	sum, err := v.flac.DecodeMD5(ctx, path)
	if err != nil {
		outcome.OK = false
		outcome.Messages = append(outcome.Messages, fmt.Sprintf("Error checking MD5: %v", err))
		return
	}
	if calculated := flacmeta.Signature(sum); calculated != stored {
		outcome.OK = false
		outcome.Messages = append(outcome.Messages,
			fmt.Sprintf("MD5 mismatch - Stored: %s, Calculated: %s", stored.Hex(), calculated.Hex()))
	}
}

func (v *Verifier) verifyMP3(ctx context.Context, path string) CheckOutcome {
	outcome := CheckOutcome{Path: path, OK: true}

	result, err := v.mp3.Scan(ctx, path)
	if err != nil {
		outcome.OK = false
		if text := strings.TrimSpace(result.Stderr); text != "" {
			outcome.Messages = append(outcome.Messages, text)
		} else {
			outcome.Messages = append(outcome.Messages, fmt.Sprintf("Error running MP3 integrity check: %v", err))
		}
	}

	for _, line := range strings.Split(result.Stdout, "\n") {
		if !containsAny(line, "WARNING", "ERROR", "INFO") {
			continue
		}
		outcome.OK = false
		outcome.Messages = append(outcome.Messages, strings.TrimSpace(line))
	}

	outcome.Repairable = !outcome.OK
	return outcome
}

func bullet(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(" - ")
		b.WriteString(line)
	}
	return b.String()
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
