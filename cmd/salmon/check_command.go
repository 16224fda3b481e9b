package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/digerati-red/dev-smoked-salmon/internal/history"
	"github.com/digerati-red/dev-smoked-salmon/internal/integrity"
	"github.com/digerati-red/dev-smoked-salmon/internal/services/flaccli"
	"github.com/digerati-red/dev-smoked-salmon/internal/services/metaflac"
	"github.com/digerati-red/dev-smoked-salmon/internal/services/mp3val"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var md5Only bool

	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Check audio files for integrity problems and optionally sanitize them",
		Long: "Check runs the FLAC bitstream test, warning scan, and MD5 cross-check " +
			"(or the MP3 stream scan) over every audio file under the given path. " +
			"Files that fail are listed; on confirmation they are sanitized in place.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			flac := flaccli.New(
				flaccli.WithBinary(cfg.Tools.Flac),
				flaccli.WithCompressionLevel(cfg.Check.FlacCompressionLevel),
			)
			meta := metaflac.New(metaflac.WithBinary(cfg.Tools.Metaflac))
			mp3 := mp3val.New(mp3val.WithBinary(cfg.Tools.MP3Val))
			signatures := integrity.HeaderSignatures{}

			verifier := integrity.NewVerifier(flac, mp3, signatures, logger)
			sanitizer := integrity.NewSanitizer(flac, meta, mp3, signatures, cfg.Check.PaddingBytes, logger)

			opts := integrity.Options{
				Confirmer:    newStdinConfirmer(cmd.InOrStdin(), cmd.OutOrStdout()),
				Workers:      cfg.Check.Concurrency,
				MinFreeBytes: uint64(cfg.Check.MinFreeMiB) << 20,
				Logger:       logger,
			}
			if isTerminal(os.Stderr) {
				opts.Progress = &barReporter{}
			}
			if cfg.History.Enabled {
				store, err := history.Open(cfg.History.Path)
				if err != nil {
					return fmt.Errorf("open history database: %w", err)
				}
				defer store.Close()
				opts.History = store
			}

			checker := integrity.NewChecker(verifier, sanitizer, opts)
			report, err := checker.Run(cmd.Context(), args[0], md5Only)
			if errors.Is(err, integrity.ErrUserAbort) {
				fmt.Fprintln(cmd.OutOrStdout(), "Sanitization cancelled.")
				return nil
			}
			if err != nil {
				return err
			}

			renderReport(cmd.OutOrStdout(), report)
			if report.Sanitize != nil && report.Sanitize.Failed > 0 {
				return fmt.Errorf("%d file(s) could not be sanitized", report.Sanitize.Failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&md5Only, "md5only", false, "Only recompute and rewrite FLAC MD5 signatures, skip re-encoding")
	return cmd
}

func renderReport(out io.Writer, report *integrity.Report) {
	if report.Check.Checked == 0 {
		fmt.Fprintln(out, "No audio files found.")
		return
	}

	rows := [][]string{
		{"Checked", strconv.Itoa(report.Check.Checked)},
		{"Passed", strconv.Itoa(report.Check.OK)},
		{"Failed", strconv.Itoa(report.Check.Failed)},
	}
	if report.Sanitize != nil {
		rows = append(rows,
			[]string{"Sanitized", strconv.Itoa(report.Sanitize.Sanitized)},
			[]string{"Sanitize failures", strconv.Itoa(report.Sanitize.Failed)},
		)
	}
	fmt.Fprintln(out, renderTable([]string{"Result", "Files"}, rows,
		[]columnAlignment{alignLeft, alignRight}))

	switch {
	case report.Check.Failed == 0:
		fmt.Fprintln(out, "All files passed integrity checks.")
	case report.Sanitize != nil && report.Sanitize.Failed == 0:
		fmt.Fprintln(out, "All failed files were sanitized. Re-run the check to verify.")
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
