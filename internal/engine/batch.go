package engine

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lumenhl/rosettes/internal/log"
	"github.com/lumenhl/rosettes/internal/tracing"
)

// sequentialThreshold is the batch size below which spinning up a
// worker pool costs more than it saves; small batches just run inline.
const sequentialThreshold = 8

// defaultMaxWorkers caps concurrency at 4 workers even on larger machines,
// since each worker does CPU-bound scanning/rendering rather than I/O — more
// workers than that mostly adds scheduling overhead for typical batch sizes.
func defaultMaxWorkers() int {
	if n := runtime.NumCPU(); n < 4 {
		return n
	}
	return 4
}

// Item is one unit of work in a batch call: an input paired with whatever
// Options should apply to it. Results preserve input order regardless of
// completion order.
type Item struct {
	Input string
	Opts  []Option
}

// Result pairs an Item's output with an error, since one bad language name
// in a large batch shouldn't fail the whole call.
type Result struct {
	Output string
	Err    error
}

// HighlightMany runs Highlight over every item, using up to
// defaultMaxWorkers() goroutines for batches at or above
// sequentialThreshold, or a plain sequential loop below it. The returned
// slice is in the same order as items regardless of which goroutine
// finished first, satisfying the batch ordering contract.
func HighlightMany(ctx context.Context, provider *tracing.Provider, items []Item) []Result {
	ctx, span := startBatchSpan(ctx, provider, "rosettes.highlight_many", len(items))
	defer span.End()

	if len(items) < sequentialThreshold {
		out := make([]Result, len(items))
		for i, it := range items {
			out[i] = runHighlight(it)
		}
		return out
	}

	p := pool.NewWithResults[Result]().WithMaxGoroutines(defaultMaxWorkers())
	for _, it := range items {
		it := it
		p.Go(func() Result { return runHighlight(it) })
	}
	results := p.Wait()

	log.Debug(log.CatBatch, "highlight_many complete", "count", len(items))
	_ = ctx
	return results
}

// TokenizeMany is HighlightMany's counterpart that drains each item's token
// stream and returns one error per item (nil on success) instead of
// rendered output, useful for callers that just want to validate a batch of
// inputs tokenize without error.
func TokenizeMany(ctx context.Context, provider *tracing.Provider, items []Item) []error {
	ctx, span := startBatchSpan(ctx, provider, "rosettes.tokenize_many", len(items))
	defer span.End()

	run := func(it Item) error {
		seq, err := Tokenize(it.Input, it.Opts...)
		if err != nil {
			return err
		}
		for range seq {
		}
		return nil
	}

	if len(items) < sequentialThreshold {
		out := make([]error, len(items))
		for i, it := range items {
			out[i] = run(it)
		}
		return out
	}

	p := pool.NewWithResults[error]().WithMaxGoroutines(defaultMaxWorkers())
	for _, it := range items {
		it := it
		p.Go(func() error { return run(it) })
	}
	errs := p.Wait()
	_ = ctx
	return errs
}

func runHighlight(it Item) Result {
	out, err := Highlight(it.Input, it.Opts...)
	return Result{Output: out, Err: err}
}

func startBatchSpan(ctx context.Context, provider *tracing.Provider, name string, count int) (context.Context, trace.Span) {
	// A fresh ID per batch run, set on both the span and the log line
	// below, lets a caller correlate the two even when several batches run
	// concurrently against the same tracer. Returned results carry no ID.
	runID := uuid.NewString()
	log.Debug(log.CatBatch, "batch run starting", "run_id", runID, "count", count)

	if provider == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	ctx, span := provider.Tracer().Start(ctx, name)
	span.SetAttributes(
		attribute.Int("rosettes.batch.count", count),
		attribute.String("rosettes.batch.run_id", runID),
	)
	return ctx, span
}
