// Package migrate applies versioned SQL schema scripts exactly once
// each. Applied scripts are tracked in a ledger table; ordering comes
// from the lexicographic sort of the filenames, so scripts carry a
// numeric prefix (001_..., 002_...).
package migrate

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Runner discovers migration scripts in a directory and applies the
// pending ones in order. It owns no global state: the database handle
// and the directory are injected, In/Out exist so tests can script the
// reset confirmation.
type Runner struct {
	db  *sql.DB
	dir string

	In  io.Reader // confirmation input, defaults to os.Stdin
	Out io.Writer // progress output, defaults to os.Stdout
}

// NewRunner constructs a Runner over the given handle and script dir.
func NewRunner(db *sql.DB, dir string) *Runner {
	return &Runner{db: db, dir: dir, In: os.Stdin, Out: os.Stdout}
}

// Run applies every pending script in filename order. The first failing
// statement aborts the rest of its script and the whole run; already
// applied scripts are skipped via the ledger, so reruns resume where
// the previous run stopped.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.Out, strings.Repeat("=", 80))
	fmt.Fprintln(r.Out, "DATABASE MIGRATION")
	fmt.Fprintln(r.Out, strings.Repeat("=", 80))

	if err := r.ensureLedger(ctx); err != nil {
		return err
	}

	scripts, err := r.discover()
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		fmt.Fprintf(r.Out, "No migration files found in: %s\n", r.dir)
		return nil
	}

	fmt.Fprintf(r.Out, "Found %d migration file(s)\n\n", len(scripts))

	executed, skipped := 0, 0
	var runErr error
	start := time.Now()

	for _, script := range scripts {
		applied, err := r.isApplied(ctx, script)
		if err != nil {
			runErr = err
			break
		}
		if applied {
			fmt.Fprintf(r.Out, "Skipping: %s (already executed)\n", script)
			skipped++
			continue
		}

		fmt.Fprintf(r.Out, "Executing: %s\n", script)
		if err := r.apply(ctx, script); err != nil {
			fmt.Fprintf(r.Out, "Failed: %v\n", err)
			runErr = err
			break
		}
		fmt.Fprintln(r.Out, "Success")
		executed++
	}

	fmt.Fprintln(r.Out, strings.Repeat("=", 80))
	fmt.Fprintln(r.Out, "SUMMARY")
	fmt.Fprintln(r.Out, strings.Repeat("=", 80))
	fmt.Fprintf(r.Out, "Executed: %d\n", executed)
	fmt.Fprintf(r.Out, "Skipped: %d\n", skipped)
	fmt.Fprintf(r.Out, "Total: %d\n", len(scripts))
	fmt.Fprintf(r.Out, "Elapsed: %s\n", time.Since(start).Round(time.Millisecond))

	return runErr
}

// Status lists every discovered script as executed (with timestamp) or
// pending, without applying anything.
func (r *Runner) Status(ctx context.Context) error {
	fmt.Fprintln(r.Out, strings.Repeat("=", 80))
	fmt.Fprintln(r.Out, "MIGRATION STATUS")
	fmt.Fprintln(r.Out, strings.Repeat("=", 80))

	if err := r.ensureLedger(ctx); err != nil {
		return err
	}

	scripts, err := r.discover()
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		fmt.Fprintln(r.Out, "No migration files found.")
		return nil
	}

	applied, err := r.appliedAt(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.Out, "%-50s %s\n", "Migration", "Status")
	fmt.Fprintln(r.Out, strings.Repeat("-", 80))
	for _, script := range scripts {
		if at, ok := applied[script]; ok {
			fmt.Fprintf(r.Out, "%-50s Executed (%s)\n", script, at.Format("2006-01-02 15:04:05"))
		} else {
			fmt.Fprintf(r.Out, "%-50s Pending\n", script)
		}
	}
	return nil
}

// Reset drops every table in the schema after an explicit interactive
// confirmation. Foreign key checks are disabled for the duration so
// drop order does not matter. There is no undo.
func (r *Runner) Reset(ctx context.Context) error {
	fmt.Fprintln(r.Out, strings.Repeat("=", 80))
	fmt.Fprintln(r.Out, "RESET DATABASE")
	fmt.Fprintln(r.Out, strings.Repeat("=", 80))
	fmt.Fprintln(r.Out, "WARNING: This will drop ALL tables!")
	fmt.Fprint(r.Out, "Are you sure? Type 'yes' to continue: ")

	line, err := bufio.NewReader(r.In).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if strings.TrimSpace(line) != "yes" {
		fmt.Fprintln(r.Out, "Aborted.")
		return nil
	}

	if _, err := r.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return fmt.Errorf("disable foreign key checks: %w", err)
	}
	defer func() {
		_, _ = r.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
	}()

	tables, err := r.listTables(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.Out, "Dropping tables...")
	for _, table := range tables {
		fmt.Fprintf(r.Out, "  Dropping: %s\n", table)
		if _, err := r.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}

	fmt.Fprintln(r.Out, "Database reset complete!")
	return nil
}

// Fresh resets the database and applies all migrations from scratch.
func (r *Runner) Fresh(ctx context.Context) error {
	fmt.Fprintln(r.Out, "Running fresh migration (reset + run)...")
	if err := r.Reset(ctx); err != nil {
		return err
	}
	return r.Run(ctx)
}

// ensureLedger creates the migrations ledger table if it is missing.
func (r *Runner) ensureLedger(ctx context.Context) error {
	const q = `CREATE TABLE IF NOT EXISTS migrations (
		id INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		migration VARCHAR(255) UNIQUE NOT NULL,
		executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}
	return nil
}

// discover returns the sorted basenames of all *.sql files in the dir.
func (r *Runner) discover() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir %s: %w", r.dir, err)
	}
	var scripts []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		scripts = append(scripts, e.Name())
	}
	sort.Strings(scripts)
	return scripts, nil
}

func (r *Runner) isApplied(ctx context.Context, script string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM migrations WHERE migration = ?", script).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check migration %s: %w", script, err)
	}
	return count > 0, nil
}

func (r *Runner) appliedAt(ctx context.Context) (map[string]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT migration, executed_at FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]time.Time)
	for rows.Next() {
		var name string
		var at time.Time
		if err := rows.Scan(&name, &at); err != nil {
			return nil, err
		}
		applied[name] = at
	}
	return applied, rows.Err()
}

// apply executes every statement of one script and records it in the
// ledger on full success.
func (r *Runner) apply(ctx context.Context, script string) error {
	raw, err := os.ReadFile(filepath.Join(r.dir, script))
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}

	for _, statement := range SplitStatements(string(raw)) {
		if _, err := r.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("execute statement in %s: %w", script, err)
		}
	}

	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO migrations (migration) VALUES (?)", script); err != nil {
		return fmt.Errorf("record migration %s: %w", script, err)
	}
	return nil
}

func (r *Runner) listTables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SHOW TABLES")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}
