package integrity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/digerati-red/dev-smoked-salmon/internal/audio"
	"github.com/digerati-red/dev-smoked-salmon/internal/dispatch"
	"github.com/digerati-red/dev-smoked-salmon/internal/fileutil"
	"github.com/digerati-red/dev-smoked-salmon/internal/history"
	"github.com/digerati-red/dev-smoked-salmon/internal/preflight"
)

// Confirmer collects a yes/no decision from the user. Declining is a clean
// abort, never an internal error.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// ProgressReporter receives coarse completion updates. Fire-and-forget.
type ProgressReporter interface {
	OnProgress(completed, total int, label string)
}

// ErrUserAbort reports that the user declined sanitization.
var ErrUserAbort = errors.New("sanitization cancelled")

// ErrLocked reports that another process is already sanitizing this tree.
var ErrLocked = errors.New("another sanitization is already running for this path")

// Report is the combined result of one run.
type Report struct {
	RunID      string
	Path       string
	MD5Only    bool
	StartedAt  time.Time
	FinishedAt time.Time
	Check      CheckSummary
	// Sanitize is nil when no sanitization phase ran (all files passed,
	// nothing repairable, or the user declined).
	Sanitize *SanitizeSummary
}

// Options configures a Checker.
type Options struct {
	Confirmer Confirmer
	Progress  ProgressReporter
	// History records completed runs when non-nil.
	History *history.Store
	// Workers bounds both dispatch phases; 0 selects the available
	// parallelism.
	Workers int
	// MinFreeBytes gates full sanitization.
	MinFreeBytes uint64
	Logger       *slog.Logger
}

// Checker drives the check, confirm, and sanitize phases of a run.
type Checker struct {
	verifier  *Verifier
	sanitizer *Sanitizer
	opts      Options
	logger    *slog.Logger
}

// NewChecker constructs the orchestrator.
func NewChecker(verifier *Verifier, sanitizer *Sanitizer, opts Options) *Checker {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Checker{verifier: verifier, sanitizer: sanitizer, opts: opts, logger: logger}
}

// Run checks every audio file under path and, on confirmation, sanitizes
// the failed repairable ones. Per-file failures never abort the run; only
// an invalid path or a declined confirmation surface as errors, the latter
// as ErrUserAbort with the partial report still populated.
func (c *Checker) Run(ctx context.Context, path string, md5Only bool) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Path:      path,
		MD5Only:   md5Only,
		StartedAt: time.Now(),
	}
	logger := c.logger.With("run_id", report.RunID, "path", path)

	files, err := audio.Discover(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Info("no audio files found")
		report.FinishedAt = time.Now()
		c.record(ctx, report)
		return report, nil
	}

	logger.Info("checking integrity", "files", len(files))
	report.Check = c.checkPhase(ctx, files)
	logger.Info("integrity check complete",
		"checked", report.Check.Checked, "ok", report.Check.OK, "failed", report.Check.Failed)

	if report.Check.Failed == 0 || len(report.Check.NeedsSanitization) == 0 {
		report.FinishedAt = time.Now()
		c.record(ctx, report)
		return report, nil
	}

	confirmed, err := c.confirm(report.Check)
	if err != nil {
		return report, fmt.Errorf("collect confirmation: %w", err)
	}
	if !confirmed {
		logger.Info("sanitization declined")
		report.FinishedAt = time.Now()
		c.record(ctx, report)
		return report, ErrUserAbort
	}

	summary, err := c.sanitizePhase(ctx, path, report.Check.NeedsSanitization, md5Only)
	if err != nil {
		return report, err
	}
	report.Sanitize = &summary
	logger.Info("sanitization complete", "sanitized", summary.Sanitized, "failed", summary.Failed)

	report.FinishedAt = time.Now()
	c.record(ctx, report)
	return report, nil
}

func (c *Checker) checkPhase(ctx context.Context, files []audio.File) CheckSummary {
	results := dispatch.Run(ctx, files, dispatch.Options{
		Workers:    c.opts.Workers,
		Label:      "Checking audio files",
		OnProgress: c.progressFunc(),
	}, func(ctx context.Context, file audio.File) (CheckOutcome, error) {
		return c.verifier.Verify(ctx, file), nil
	})

	outcomes := make([]CheckOutcome, len(results))
	for i, res := range results {
		if res.Err != nil {
			// A crashed task still yields a failed, repairable outcome so
			// the file can be retried through sanitization.
			outcomes[i] = CheckOutcome{
				Path:       files[i].Path,
				Repairable: files[i].Format != audio.FormatUnsupported,
				Messages:   []string{fmt.Sprintf("Integrity check crashed: %v", res.Err)},
			}
			continue
		}
		outcomes[i] = res.Value
	}
	return FoldCheckOutcomes(files, outcomes)
}

func (c *Checker) sanitizePhase(ctx context.Context, root string, files []audio.File, md5Only bool) (SanitizeSummary, error) {
	lock := flock.New(lockPath(root))
	locked, err := lock.TryLock()
	if err != nil {
		return SanitizeSummary{}, fmt.Errorf("acquire sanitize lock: %w", err)
	}
	if !locked {
		return SanitizeSummary{}, ErrLocked
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	if !md5Only && c.opts.MinFreeBytes > 0 {
		if result := preflight.CheckFreeSpace(root, c.opts.MinFreeBytes); !result.Passed {
			return SanitizeSummary{}, fmt.Errorf("insufficient space for re-encoding: %s", result.Detail)
		}
	}

	results := dispatch.Run(ctx, files, dispatch.Options{
		Workers:    c.opts.Workers,
		Label:      "Sanitizing files",
		OnProgress: c.progressFunc(),
	}, func(ctx context.Context, file audio.File) (SanitizeOutcome, error) {
		return c.sanitizer.Sanitize(ctx, file, md5Only), nil
	})

	outcomes := make([]SanitizeOutcome, len(results))
	for i, res := range results {
		if res.Err != nil {
			c.logger.Error("sanitize task crashed", "path", files[i].Path, "error", res.Err)
			outcomes[i] = SanitizeOutcome{Path: files[i].Path, Success: false}
			continue
		}
		outcomes[i] = res.Value
	}
	return FoldSanitizeOutcomes(outcomes), nil
}

func (c *Checker) confirm(summary CheckSummary) (bool, error) {
	if c.opts.Confirmer == nil {
		return false, errors.New("no confirmer configured")
	}
	return c.opts.Confirmer.Confirm(FormatConfirmation(summary))
}

// FormatConfirmation renders the repairable files and their diagnostics as
// the prompt shown before sanitization.
func FormatConfirmation(summary CheckSummary) string {
	var b strings.Builder
	b.WriteString("Files that need sanitization:\n")
	for i, file := range summary.NeedsSanitization {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, fileutil.ShortenPath(file.Path, 4))
		for _, message := range summary.MessagesByFile[file.Path] {
			fmt.Fprintf(&b, "   - %s\n", message)
		}
	}
	b.WriteString("\nDo you want to sanitize these files?")
	return b.String()
}

func (c *Checker) progressFunc() dispatch.ProgressFunc {
	if c.opts.Progress == nil {
		return nil
	}
	return c.opts.Progress.OnProgress
}

func (c *Checker) record(ctx context.Context, report *Report) {
	if c.opts.History == nil {
		return
	}
	run := history.Run{
		ID:         report.RunID,
		Path:       report.Path,
		MD5Only:    report.MD5Only,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Checked:    report.Check.Checked,
		OK:         report.Check.OK,
		Failed:     report.Check.Failed,
	}
	if report.Sanitize != nil {
		run.Sanitized = report.Sanitize.Sanitized
		run.SanitizeFailed = report.Sanitize.Failed
	} else if report.Check.Failed > 0 {
		run.Aborted = true
	}

	failures := make([]history.FileFailure, 0, len(report.Check.NeedsSanitization))
	for _, file := range report.Check.NeedsSanitization {
		failures = append(failures, history.FileFailure{
			Path:     file.Path,
			Messages: report.Check.MessagesByFile[file.Path],
		})
	}

	if err := c.opts.History.RecordRun(ctx, run, failures); err != nil {
		c.logger.Warn("failed to record run history", "error", err)
	}
}

func lockPath(root string) string {
	info, err := os.Stat(root)
	if err == nil && info.IsDir() {
		return root + string(os.PathSeparator) + ".salmon-sanitize.lock"
	}
	return root + ".lock"
}
