package seed

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// BatchInserter buffers rows for one table and flushes them as
// multi-row INSERTs, one transaction per batch. Capping the batch size
// bounds lock duration and memory when loading millions of rows while
// keeping each committed batch atomic. A failed batch is rolled back
// and the error propagates to the caller; nothing is retried.
type BatchInserter struct {
	db        *sql.DB
	table     string
	columns   []string
	batchSize int

	placeholder string // "(?, ?, ...)" for one row
	args        []any
	buffered    int
	total       int

	// Progress, when set, is called with the running row total after
	// every committed batch.
	Progress func(total int)
}

// NewBatchInserter prepares an inserter for the given table and fixed
// column list.
func NewBatchInserter(db *sql.DB, table string, columns []string, batchSize int) *BatchInserter {
	marks := make([]string, len(columns))
	for i := range marks {
		marks[i] = "?"
	}
	return &BatchInserter{
		db:          db,
		table:       table,
		columns:     columns,
		batchSize:   batchSize,
		placeholder: "(" + strings.Join(marks, ", ") + ")",
		args:        make([]any, 0, batchSize*len(columns)),
	}
}

// Add buffers one row and flushes automatically when the batch is full.
// The argument count must match the column list.
func (b *BatchInserter) Add(ctx context.Context, row ...any) error {
	if len(row) != len(b.columns) {
		return fmt.Errorf("batch insert %s: got %d values for %d columns",
			b.table, len(row), len(b.columns))
	}
	b.args = append(b.args, row...)
	b.buffered++
	if b.buffered >= b.batchSize {
		return b.Flush(ctx)
	}
	return nil
}

// Flush writes any buffered rows in a single transactional multi-row
// INSERT. Calling it with an empty buffer is a no-op; callers flush
// once more after their loop to drain the final partial batch.
func (b *BatchInserter) Flush(ctx context.Context) error {
	if b.buffered == 0 {
		return nil
	}

	var query strings.Builder
	query.WriteString("INSERT INTO ")
	query.WriteString(b.table)
	query.WriteString(" (")
	query.WriteString(strings.Join(b.columns, ", "))
	query.WriteString(") VALUES ")
	for i := 0; i < b.buffered; i++ {
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString(b.placeholder)
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("batch insert %s: begin: %w", b.table, err)
	}
	if _, err := tx.ExecContext(ctx, query.String(), b.args...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("batch insert %s: %w", b.table, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("batch insert %s: commit: %w", b.table, err)
	}

	b.total += b.buffered
	b.buffered = 0
	b.args = b.args[:0]

	if b.Progress != nil {
		b.Progress(b.total)
	}
	return nil
}

// Total returns the number of rows committed so far.
func (b *BatchInserter) Total() int { return b.total }
