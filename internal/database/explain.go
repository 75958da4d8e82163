package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Explain runs `EXPLAIN <query>` and writes the plan followed by a
// short analysis that flags full table scans, filesorts and temporary
// tables. Columns are read generically because MySQL's EXPLAIN output
// differs between versions.
func Explain(ctx context.Context, w io.Writer, db *sql.DB, query string, args ...any) error {
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "EXPLAIN ANALYSIS")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "SQL: %s\n", compactSQL(query))
	if len(args) > 0 {
		fmt.Fprintf(w, "Params: %v\n", args)
	}
	fmt.Fprintln(w, strings.Repeat("-", 80))

	rows, err := db.QueryContext(ctx, "EXPLAIN "+query, args...)
	if err != nil {
		return fmt.Errorf("explain: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("explain columns: %w", err)
	}

	var plan []map[string]string
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("explain scan: %w", err)
		}
		entry := make(map[string]string, len(cols))
		for i, c := range cols {
			if raw[i].Valid {
				entry[c] = raw[i].String
			} else {
				entry[c] = "NULL"
			}
		}
		plan = append(plan, entry)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, c := range cols {
		fmt.Fprintf(w, "%-15s | ", c)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, entry := range plan {
		for _, c := range cols {
			fmt.Fprintf(w, "%-15s | ", entry[c])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	analyzePlan(w, plan)
	return nil
}

func analyzePlan(w io.Writer, plan []map[string]string) {
	fmt.Fprintln(w, "ANALYSIS:")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, row := range plan {
		switch row["type"] {
		case "ALL", "index":
			fmt.Fprintf(w, "Type %q means full table scan, consider adding indexes\n", row["type"])
		case "ref", "eq_ref", "const":
			fmt.Fprintf(w, "Good access type: %s\n", row["type"])
		}

		if n, err := strconv.ParseInt(row["rows"], 10, 64); err == nil && n > 10000 {
			fmt.Fprintf(w, "Scanning %d rows - might be slow\n", n)
		}

		extra := row["Extra"]
		if strings.Contains(extra, "Using filesort") {
			fmt.Fprintln(w, "Using filesort - consider adding index for ORDER BY")
		}
		if strings.Contains(extra, "Using temporary") {
			fmt.Fprintln(w, "Using temporary table - might be slow")
		}
		if strings.Contains(extra, "Using index") {
			fmt.Fprintln(w, "Using covering index")
		}
	}
	fmt.Fprintln(w)
}
