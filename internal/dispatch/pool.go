package dispatch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// ProgressFunc receives coarse completion updates. Calls are serialized.
type ProgressFunc func(completed, total int, label string)

// Result carries the outcome of one item. Err is non-nil when the item
// function returned an error or panicked.
type Result[R any] struct {
	Value R
	Err   error
}

// Options configures a Run call.
type Options struct {
	// Workers bounds the pool; 0 selects runtime.GOMAXPROCS(0). The pool
	// never exceeds the item count.
	Workers    int
	Label      string
	OnProgress ProgressFunc
}

// Run fans fn out over items across a bounded worker pool and returns one
// result per item, in input order regardless of completion order. A panic
// inside fn is confined to that item's result; sibling items are never
// cancelled or affected.
func Run[T, R any](ctx context.Context, items []T, opts Options, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(items) {
		workers = len(items)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	var progressMu sync.Mutex
	completed := 0

	report := func() {
		if opts.OnProgress == nil {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		completed++
		opts.OnProgress(completed, len(items), opts.Label)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				results[idx] = runOne(ctx, items[idx], fn)
				report()
			}
		}()
	}

	for idx := range items {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()

	return results
}

func runOne[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (result Result[R]) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result.Err = fmt.Errorf("task panicked: %v", recovered)
		}
	}()
	result.Value, result.Err = fn(ctx, item)
	return result
}
