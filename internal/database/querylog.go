package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// QueryLog is one recorded statement execution.
type QueryLog struct {
	SQL      string
	Params   []any
	Elapsed  time.Duration
	RowCount int64 // affected rows for Exec, -1 for Query
	Err      error
	At       time.Time
}

// Logger wraps a database handle and records every statement routed
// through it: SQL text, parameters, elapsed time and affected rows.
// It is purely observational and never changes query results or
// transaction boundaries. The zero value is not usable; construct with
// NewLogger and pass it explicitly to whoever needs instrumentation.
type Logger struct {
	db      *sql.DB
	enabled bool
	entries []QueryLog
}

// NewLogger builds an enabled logger around db.
func NewLogger(db *sql.DB) *Logger {
	return &Logger{db: db, enabled: true}
}

// Enable toggles recording. Execution always proceeds either way.
func (l *Logger) Enable(on bool) { l.enabled = on }

// DB exposes the underlying handle for callers that need it raw.
func (l *Logger) DB() *sql.DB { return l.db }

// Exec runs a statement through the handle and records it.
func (l *Logger) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := l.db.ExecContext(ctx, query, args...)
	rows := int64(-1)
	if err == nil {
		if n, raErr := res.RowsAffected(); raErr == nil {
			rows = n
		}
	}
	l.record(query, args, time.Since(start), rows, err)
	return res, err
}

// Query runs a row-returning statement through the handle and records
// it. The row count is not known until the caller iterates, so it is
// logged as -1.
func (l *Logger) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := l.db.QueryContext(ctx, query, args...)
	l.record(query, args, time.Since(start), -1, err)
	return rows, err
}

func (l *Logger) record(query string, args []any, elapsed time.Duration, rows int64, err error) {
	if !l.enabled {
		return
	}
	l.entries = append(l.entries, QueryLog{
		SQL:      query,
		Params:   args,
		Elapsed:  elapsed,
		RowCount: rows,
		Err:      err,
		At:       time.Now(),
	})
}

// Entries returns the recorded log in execution order.
func (l *Logger) Entries() []QueryLog { return l.entries }

// Clear drops all recorded entries.
func (l *Logger) Clear() { l.entries = nil }

// PrintStats writes a summary of all recorded queries.
func (l *Logger) PrintStats(w io.Writer) {
	total := time.Duration(0)
	failed := 0
	for _, e := range l.entries {
		total += e.Elapsed
		if e.Err != nil {
			failed++
		}
	}
	avg := time.Duration(0)
	if len(l.entries) > 0 {
		avg = total / time.Duration(len(l.entries))
	}
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "QUERY STATISTICS")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "Total queries: %d\n", len(l.entries))
	fmt.Fprintf(w, "Failed: %d\n", failed)
	fmt.Fprintf(w, "Total time: %.2f ms\n", float64(total.Microseconds())/1000)
	fmt.Fprintf(w, "Average time: %.2f ms\n", float64(avg.Microseconds())/1000)
	fmt.Fprintln(w, strings.Repeat("=", 80))
}

// PrintDetailed writes every recorded query with its parameters and
// timing.
func (l *Logger) PrintDetailed(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "DETAILED QUERY LOG")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	for i, e := range l.entries {
		fmt.Fprintf(w, "[%d] %s\n", i+1, e.At.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "SQL: %s\n", compactSQL(e.SQL))
		if len(e.Params) > 0 {
			fmt.Fprintf(w, "Params: %v\n", e.Params)
		}
		fmt.Fprintf(w, "Time: %.2f ms\n", float64(e.Elapsed.Microseconds())/1000)
		if e.RowCount >= 0 {
			fmt.Fprintf(w, "Rows: %d\n", e.RowCount)
		}
		if e.Err != nil {
			fmt.Fprintf(w, "Error: %v\n", e.Err)
		}
		fmt.Fprintln(w)
	}
}

// SaveToFile writes the detailed log to the given path.
func (l *Logger) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create query log file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "QUERY LOG - %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(f, strings.Repeat("=", 80))
	l.PrintDetailed(f)
	return nil
}

// compactSQL collapses whitespace and truncates long statements for
// single-line display.
func compactSQL(q string) string {
	q = strings.Join(strings.Fields(q), " ")
	if len(q) > 200 {
		q = q[:197] + "..."
	}
	return q
}
