// Package batch drives the resumable, rate-limited enrichment run.
package batch

import (
	"context"
	"fmt"

	"github.com/jonathan/college-enricher/internal/observability"
	"github.com/jonathan/college-enricher/internal/ratelimit"
	"github.com/jonathan/college-enricher/internal/types"
)

// progressEvery controls the cadence of progress snapshots.
const progressEvery = 10

// Enricher fetches the record for one entity. Satisfied by
// enrichment.Enricher.
type Enricher interface {
	Fetch(ctx context.Context, entity types.Entity) (*types.CollegeRecord, error)
}

// RecordWriter durably appends one record. Satisfied by output.Writer.
type RecordWriter interface {
	Append(record *types.CollegeRecord) error
}

// Counters reports the outcome of a run. Reset per process.
type Counters struct {
	Success int
	Error   int
	Skipped int
}

// Runner iterates entities in input order, skipping completed ones and
// writing each success before the next request starts.
type Runner struct {
	enricher  Enricher
	writer    RecordWriter
	limiter   ratelimit.Waiter
	printer   *observability.Printer
	processed map[string]bool
}

// NewRunner composes a run. processed is the key set reconstructed from
// prior output; the runner extends it in memory as records are written.
func NewRunner(enricher Enricher, writer RecordWriter, limiter ratelimit.Waiter, processed map[string]bool, printer *observability.Printer) *Runner {
	if processed == nil {
		processed = make(map[string]bool)
	}
	return &Runner{
		enricher:  enricher,
		writer:    writer,
		limiter:   limiter,
		printer:   printer,
		processed: processed,
	}
}

// Run processes every entity once. Per-entity failures are counted and
// logged but never stop the loop; only a write failure or cancellation
// aborts the run, since at that point durable output can no longer be
// guaranteed.
func (r *Runner) Run(ctx context.Context, entities []types.Entity) (Counters, error) {
	var counters Counters
	total := len(entities)

	for i, entity := range entities {
		key := entity.Key()
		if r.processed[key] {
			counters.Skipped++
			continue
		}

		r.printer.Processing(i+1, total, entity.Name)

		record, err := r.enricher.Fetch(ctx, entity)
		if err != nil {
			// Not marked processed: a subsequent run retries this entity.
			counters.Error++
			r.printer.Failure(entity.Name, err)
		} else {
			if err := r.writer.Append(record); err != nil {
				return counters, fmt.Errorf("failed to persist record for %q: %w", entity.Name, err)
			}
			counters.Success++
			r.processed[key] = true
			r.printer.Success(entity.Name)
		}

		// Pace the next request. No wait after the final entity.
		if i+1 < total {
			if err := r.limiter.Wait(ctx); err != nil {
				return counters, fmt.Errorf("rate limit wait interrupted: %w", err)
			}
		}

		if (i+1)%progressEvery == 0 {
			r.printer.Progress(i+1, total, counters.Success, counters.Error, counters.Skipped)
		}
	}

	return counters, nil
}
