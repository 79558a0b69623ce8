package sink

import "context"

// MemorySink collects batches in memory in call order. Used by tests and
// dry runs.
type MemorySink struct {
	Batches []Batch
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) InsertBatch(_ context.Context, batch Batch) error {
	s.Batches = append(s.Batches, batch)
	return nil
}

// Batch returns the recorded batch for a table, or an empty batch when
// the table was never inserted.
func (s *MemorySink) Batch(table string) Batch {
	for _, b := range s.Batches {
		if b.Table == table {
			return b
		}
	}
	return Batch{Table: table}
}

// Tables returns the tables in insertion order.
func (s *MemorySink) Tables() []string {
	tables := make([]string, 0, len(s.Batches))
	for _, b := range s.Batches {
		tables = append(tables, b.Table)
	}
	return tables
}
