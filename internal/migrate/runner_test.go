package migrate

import (
	"bytes"
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// ledgerDB is an in-memory stand-in for the database: it records every
// executed statement and implements just enough of the migrations
// ledger for the runner's bookkeeping queries to work.
type ledgerDB struct {
	mu      sync.Mutex
	execs   []string
	applied []string
	failOn  string // statements containing this substring fail
}

func (f *ledgerDB) setFailOn(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn = s
}

func (f *ledgerDB) execCount(statement string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.execs {
		if e == statement {
			n++
		}
	}
	return n
}

func (f *ledgerDB) ledger() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.applied...)
}

var (
	ledgerMu  sync.Mutex
	ledgerDBs = map[string]*ledgerDB{}
)

func init() { sql.Register("ledgertest", ledgerDriver{}) }

// openLedgerDB registers the fake under a unique DSN and opens a
// database/sql handle over it.
func openLedgerDB(t *testing.T, f *ledgerDB) *sql.DB {
	t.Helper()
	ledgerMu.Lock()
	name := fmt.Sprintf("ledger-%d", len(ledgerDBs))
	ledgerDBs[name] = f
	ledgerMu.Unlock()

	db, err := sql.Open("ledgertest", name)
	if err != nil {
		t.Fatalf("open fake database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

type ledgerDriver struct{}

func (ledgerDriver) Open(name string) (driver.Conn, error) {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	f, ok := ledgerDBs[name]
	if !ok {
		return nil, fmt.Errorf("unknown fake database %q", name)
	}
	return &ledgerConn{db: f}, nil
}

type ledgerConn struct{ db *ledgerDB }

func (c *ledgerConn) Prepare(string) (driver.Stmt, error) {
	return nil, fmt.Errorf("prepare not supported")
}
func (c *ledgerConn) Close() error { return nil }
func (c *ledgerConn) Begin() (driver.Tx, error) {
	return nil, fmt.Errorf("transactions not supported")
}

func (c *ledgerConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	if c.db.failOn != "" && strings.Contains(query, c.db.failOn) {
		return nil, fmt.Errorf("forced failure on %q", c.db.failOn)
	}
	if strings.HasPrefix(query, "INSERT INTO migrations") {
		c.db.applied = append(c.db.applied, args[0].Value.(string))
	}
	c.db.execs = append(c.db.execs, query)
	return driver.RowsAffected(1), nil
}

func (c *ledgerConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	switch {
	case strings.HasPrefix(query, "SELECT COUNT(*) FROM migrations"):
		var count int64
		for _, m := range c.db.applied {
			if m == args[0].Value.(string) {
				count++
			}
		}
		return &ledgerRows{columns: []string{"count"}, rows: [][]driver.Value{{count}}}, nil
	case strings.HasPrefix(query, "SELECT migration, executed_at"):
		at := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
		var rows [][]driver.Value
		for _, m := range c.db.applied {
			rows = append(rows, []driver.Value{m, at})
		}
		return &ledgerRows{columns: []string{"migration", "executed_at"}, rows: rows}, nil
	case query == "SHOW TABLES":
		return &ledgerRows{columns: []string{"tables"},
			rows: [][]driver.Value{{"countries"}, {"migrations"}}}, nil
	}
	return nil, fmt.Errorf("unexpected query %q", query)
}

type ledgerRows struct {
	columns []string
	rows    [][]driver.Value
	pos     int
}

func (r *ledgerRows) Columns() []string { return r.columns }
func (r *ledgerRows) Close() error      { return nil }
func (r *ledgerRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

func writeMigrations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func testRunner(db *sql.DB, dir string) (*Runner, *bytes.Buffer) {
	out := &bytes.Buffer{}
	r := NewRunner(db, dir)
	r.Out = out
	return r, out
}

func TestRunAppliesEachScriptOnce(t *testing.T) {
	f := &ledgerDB{}
	db := openLedgerDB(t, f)
	dir := writeMigrations(t, map[string]string{
		"001_first.sql":  "CREATE TABLE a (id INT);",
		"002_second.sql": "CREATE TABLE b (id INT);\nCREATE TABLE c (id INT);",
	})
	r, _ := testRunner(db, dir)
	ctx := context.Background()

	if err := r.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	wantLedger := []string{"001_first.sql", "002_second.sql"}
	if got := f.ledger(); len(got) != 2 || got[0] != wantLedger[0] || got[1] != wantLedger[1] {
		t.Fatalf("ledger after first run = %v, want %v", got, wantLedger)
	}
	for _, stmt := range []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (id INT)", "CREATE TABLE c (id INT)"} {
		if n := f.execCount(stmt); n != 1 {
			t.Fatalf("%q executed %d times, want 1", stmt, n)
		}
	}

	// Second run must skip both scripts and leave the ledger unchanged.
	r2, out := testRunner(db, dir)
	if err := r2.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got := f.ledger(); len(got) != 2 {
		t.Fatalf("ledger grew on rerun: %v", got)
	}
	if n := f.execCount("CREATE TABLE a (id INT)"); n != 1 {
		t.Fatalf("script statement re-executed on rerun (%d times)", n)
	}
	if !strings.Contains(out.String(), "Skipping: 001_first.sql") ||
		!strings.Contains(out.String(), "Skipping: 002_second.sql") {
		t.Fatalf("rerun output missing skip lines:\n%s", out.String())
	}
}

func TestRunFailFastThenResume(t *testing.T) {
	f := &ledgerDB{failOn: "CREATE TABLE broken"}
	db := openLedgerDB(t, f)
	dir := writeMigrations(t, map[string]string{
		"001_first.sql":  "CREATE TABLE a (id INT);",
		"002_second.sql": "CREATE TABLE broken (id INT);\nCREATE TABLE after (id INT);",
		"003_third.sql":  "CREATE TABLE later (id INT);",
	})
	r, _ := testRunner(db, dir)
	ctx := context.Background()

	if err := r.Run(ctx); err == nil {
		t.Fatal("expected error from failing statement")
	}
	if got := f.ledger(); len(got) != 1 || got[0] != "001_first.sql" {
		t.Fatalf("ledger after failure = %v, want only 001_first.sql", got)
	}
	// The failing script's remaining statements and all later scripts
	// must not run.
	if n := f.execCount("CREATE TABLE after (id INT)"); n != 0 {
		t.Fatalf("statement after the failure executed %d times", n)
	}
	if n := f.execCount("CREATE TABLE later (id INT)"); n != 0 {
		t.Fatalf("later script executed %d times", n)
	}

	// With the failure cleared, a rerun resumes: skips 001, applies the
	// rest exactly once.
	f.setFailOn("")
	r2, _ := testRunner(db, dir)
	if err := r2.Run(ctx); err != nil {
		t.Fatalf("resume run: %v", err)
	}
	wantLedger := []string{"001_first.sql", "002_second.sql", "003_third.sql"}
	got := f.ledger()
	if len(got) != len(wantLedger) {
		t.Fatalf("ledger after resume = %v, want %v", got, wantLedger)
	}
	for i := range wantLedger {
		if got[i] != wantLedger[i] {
			t.Fatalf("ledger after resume = %v, want %v", got, wantLedger)
		}
	}
	if n := f.execCount("CREATE TABLE a (id INT)"); n != 1 {
		t.Fatalf("already applied script re-executed (%d times)", n)
	}
}

func TestRunWithoutMigrationFiles(t *testing.T) {
	f := &ledgerDB{}
	db := openLedgerDB(t, f)
	r, out := testRunner(db, t.TempDir())

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run over empty dir: %v", err)
	}
	if !strings.Contains(out.String(), "No migration files found") {
		t.Fatalf("missing empty-dir notice:\n%s", out.String())
	}
}

func TestStatusListsExecutedAndPending(t *testing.T) {
	f := &ledgerDB{applied: []string{"001_first.sql"}}
	db := openLedgerDB(t, f)
	dir := writeMigrations(t, map[string]string{
		"001_first.sql":  "CREATE TABLE a (id INT);",
		"002_second.sql": "CREATE TABLE b (id INT);",
	})
	r, out := testRunner(db, dir)

	if err := r.Status(context.Background()); err != nil {
		t.Fatalf("status: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Executed (2026-09-01 12:00:00)") {
		t.Fatalf("applied script not reported as executed:\n%s", text)
	}
	if !strings.Contains(text, "Pending") {
		t.Fatalf("pending script not reported:\n%s", text)
	}
	// Status must not apply anything.
	if n := f.execCount("CREATE TABLE b (id INT)"); n != 0 {
		t.Fatalf("status executed a script statement (%d times)", n)
	}
}

func TestResetConfirmation(t *testing.T) {
	f := &ledgerDB{}
	db := openLedgerDB(t, f)
	r, _ := testRunner(db, t.TempDir())
	ctx := context.Background()

	// Anything but "yes" aborts without touching the database.
	r.In = strings.NewReader("no\n")
	if err := r.Reset(ctx); err != nil {
		t.Fatalf("aborted reset: %v", err)
	}
	if len(f.execs) != 0 {
		t.Fatalf("aborted reset executed statements: %v", f.execs)
	}

	r.In = strings.NewReader("yes\n")
	if err := r.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for _, stmt := range []string{
		"SET FOREIGN_KEY_CHECKS = 0",
		"DROP TABLE IF EXISTS `countries`",
		"DROP TABLE IF EXISTS `migrations`",
		"SET FOREIGN_KEY_CHECKS = 1",
	} {
		if n := f.execCount(stmt); n != 1 {
			t.Fatalf("%q executed %d times, want 1", stmt, n)
		}
	}
}
