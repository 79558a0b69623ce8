// Package sink persists materialized record batches. The pipeline calls
// InsertBatch once per entity type, strictly in dependency order, so a
// foreign-key-enforcing store accepts every batch.
package sink

import "context"

// Batch is one entity type's worth of records, flattened into rows ready
// for bulk insertion.
type Batch struct {
	Table   string
	Columns []string
	Rows    [][]any
}

// Empty reports whether the batch carries no rows. Inserting an empty
// batch is a legal no-op.
func (b Batch) Empty() bool {
	return len(b.Rows) == 0
}

// Sink persists batches. Implementations must tolerate empty batches and
// must not reorder rows within a batch.
type Sink interface {
	InsertBatch(ctx context.Context, batch Batch) error
}
