package migrate

import (
	"reflect"
	"testing"
)

func TestSplitStatementsStripsLineComments(t *testing.T) {
	script := "-- create the table\nCREATE TABLE a (id INT); -- trailing\nDROP TABLE b;"
	got := SplitStatements(script)
	want := []string{"CREATE TABLE a (id INT)", "DROP TABLE b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSplitStatementsStripsBlockComments(t *testing.T) {
	script := "/* header\nspanning lines */\nCREATE TABLE a (id INT);\n/* inline */ INSERT INTO a VALUES (1);"
	got := SplitStatements(script)
	want := []string{"CREATE TABLE a (id INT)", "INSERT INTO a VALUES (1)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSplitStatementsDropsEmptyFragments(t *testing.T) {
	script := ";;\n  ;\nSELECT 1;\n;"
	got := SplitStatements(script)
	want := []string{"SELECT 1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSplitStatementsCommentOnlyScript(t *testing.T) {
	script := "-- nothing here\n/* or here */"
	if got := SplitStatements(script); len(got) != 0 {
		t.Fatalf("got %q, want no statements", got)
	}
}

func TestSplitStatementsKeepsMultilineStatement(t *testing.T) {
	script := "CREATE TABLE a (\n  id INT,\n  name VARCHAR(10)\n);"
	got := SplitStatements(script)
	if len(got) != 1 {
		t.Fatalf("got %d statements, want 1", len(got))
	}
}
