package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SQLiteSink writes batches into a SQLite database opened by the db
// package. Each batch is inserted in a single transaction through a
// prepared statement, so a failed batch leaves the table untouched.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLiteSink creates a SQLiteSink over an open database.
func NewSQLiteSink(db *sql.DB) *SQLiteSink {
	return &SQLiteSink{db: db}
}

func (s *SQLiteSink) InsertBatch(ctx context.Context, batch Batch) error {
	if batch.Empty() {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(batch.Columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		batch.Table, strings.Join(batch.Columns, ", "), placeholders)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting %s batch: %w", batch.Table, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing %s insert: %w", batch.Table, err)
	}
	defer stmt.Close()

	for i, row := range batch.Rows {
		if len(row) != len(batch.Columns) {
			return fmt.Errorf("inserting %s row %d: got %d values for %d columns",
				batch.Table, i, len(row), len(batch.Columns))
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("inserting %s row %d: %w", batch.Table, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s batch: %w", batch.Table, err)
	}
	committed = true
	return nil
}
