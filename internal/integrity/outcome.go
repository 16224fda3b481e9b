package integrity

import (
	"github.com/digerati-red/dev-smoked-salmon/internal/audio"
)

// CheckOutcome is the per-file verdict of a verifier. Immutable once
// produced.
type CheckOutcome struct {
	Path string
	OK   bool
	// Skipped marks files whose format has no verifier; they count as
	// checked but neither fail nor carry messages.
	Skipped bool
	// Repairable is true only for failed files whose format has a
	// sanitizer.
	Repairable bool
	// Messages holds diagnostics in detection order.
	Messages []string
}

// CheckSummary aggregates the outcomes of one checking phase.
type CheckSummary struct {
	Checked int
	OK      int
	Failed  int
	// NeedsSanitization preserves dispatcher output order for stable
	// reporting.
	NeedsSanitization []audio.File
	MessagesByFile    map[string][]string
}

// FoldCheckOutcomes builds a summary from per-file outcomes. files and
// outcomes are aligned by index, in dispatcher order.
func FoldCheckOutcomes(files []audio.File, outcomes []CheckOutcome) CheckSummary {
	summary := CheckSummary{
		Checked:        len(outcomes),
		MessagesByFile: make(map[string][]string),
	}
	for i, outcome := range outcomes {
		if outcome.OK || outcome.Skipped {
			summary.OK++
			continue
		}
		summary.Failed++
		if outcome.Repairable {
			summary.NeedsSanitization = append(summary.NeedsSanitization, files[i])
			summary.MessagesByFile[outcome.Path] = outcome.Messages
		}
	}
	return summary
}

// SanitizeOutcome is the per-file verdict of a sanitizer.
type SanitizeOutcome struct {
	Path    string
	Success bool
}

// SanitizeSummary aggregates the outcomes of one sanitizing phase.
type SanitizeSummary struct {
	Total     int
	Sanitized int
	Failed    int
}

// FoldSanitizeOutcomes builds a summary from per-file sanitize outcomes.
func FoldSanitizeOutcomes(outcomes []SanitizeOutcome) SanitizeSummary {
	summary := SanitizeSummary{Total: len(outcomes)}
	for _, outcome := range outcomes {
		if outcome.Success {
			summary.Sanitized++
		} else {
			summary.Failed++
		}
	}
	return summary
}
