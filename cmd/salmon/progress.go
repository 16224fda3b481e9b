package main

import (
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// barReporter renders dispatcher progress on stderr. Each phase carries its
// own label; a label change starts a fresh bar.
type barReporter struct {
	mu    sync.Mutex
	label string
	bar   *progressbar.ProgressBar
}

func (r *barReporter) OnProgress(completed, total int, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil || r.label != label {
		r.label = label
		r.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription(label),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = r.bar.Set(completed)
}
