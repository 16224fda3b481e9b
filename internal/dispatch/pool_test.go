package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunPreservesInputOrder(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}

	results := Run(context.Background(), items, Options{Workers: 4}, func(_ context.Context, n int) (string, error) {
		// Stagger completion so later items finish first.
		time.Sleep(time.Duration(len(items)-n) * time.Millisecond)
		return fmt.Sprintf("item-%d", n), nil
	})

	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("item %d: unexpected error %v", i, res.Err)
		}
		if want := fmt.Sprintf("item-%d", i); res.Value != want {
			t.Fatalf("item %d: expected %q, got %q", i, want, res.Value)
		}
	}
}

func TestRunIsolatesPanics(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	results := Run(context.Background(), items, Options{Workers: 2}, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			panic("boom")
		}
		return n * 10, nil
	})

	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}
	failures := 0
	for i, res := range results {
		if i == 2 {
			if res.Err == nil {
				t.Fatal("expected error result for panicking item")
			}
			failures++
			continue
		}
		if res.Err != nil {
			t.Fatalf("item %d: unexpected error %v", i, res.Err)
		}
		if res.Value != i*10 {
			t.Fatalf("item %d: expected %d, got %d", i, i*10, res.Value)
		}
	}
	if failures != 1 {
		t.Fatalf("expected exactly one failure, got %d", failures)
	}
}

func TestRunPropagatesItemErrors(t *testing.T) {
	wantErr := errors.New("tool missing")
	results := Run(context.Background(), []string{"a", "b"}, Options{}, func(_ context.Context, s string) (string, error) {
		if s == "b" {
			return "", wantErr
		}
		return s, nil
	})
	if results[0].Err != nil || results[0].Value != "a" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if !errors.Is(results[1].Err, wantErr) {
		t.Fatalf("expected wrapped error, got %v", results[1].Err)
	}
}

func TestRunReportsProgress(t *testing.T) {
	var calls atomic.Int32
	var lastCompleted atomic.Int32
	var sawTotal atomic.Int32

	items := []int{1, 2, 3}
	Run(context.Background(), items, Options{
		Workers: 2,
		Label:   "Checking audio files",
		OnProgress: func(completed, total int, label string) {
			calls.Add(1)
			lastCompleted.Store(int32(completed))
			sawTotal.Store(int32(total))
			if label != "Checking audio files" {
				t.Errorf("unexpected label %q", label)
			}
		},
	}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})

	if calls.Load() != 3 {
		t.Fatalf("expected 3 progress calls, got %d", calls.Load())
	}
	if lastCompleted.Load() != 3 || sawTotal.Load() != 3 {
		t.Fatalf("expected final progress 3/3, got %d/%d", lastCompleted.Load(), sawTotal.Load())
	}
}

func TestRunEmptyInput(t *testing.T) {
	results := Run(context.Background(), nil, Options{}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
