package seed

import (
	"context"
	"testing"
)

func TestBatchInserterRejectsColumnMismatch(t *testing.T) {
	ins := NewBatchInserter(nil, "t", []string{"a", "b"}, 10)
	if err := ins.Add(context.Background(), 1); err == nil {
		t.Fatal("expected error for wrong value count")
	}
	if err := ins.Add(context.Background(), 1, 2, 3); err == nil {
		t.Fatal("expected error for wrong value count")
	}
}

func TestBatchInserterBuffersUntilBatchFull(t *testing.T) {
	// batchSize larger than the adds: nothing must hit the database.
	ins := NewBatchInserter(nil, "t", []string{"a"}, 100)
	for i := 0; i < 50; i++ {
		if err := ins.Add(context.Background(), i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ins.Total() != 0 {
		t.Fatalf("Total() = %d before any flush, want 0", ins.Total())
	}
}

func TestBatchInserterFlushEmptyIsNoop(t *testing.T) {
	ins := NewBatchInserter(nil, "t", []string{"a"}, 10)
	if err := ins.Flush(context.Background()); err != nil {
		t.Fatalf("empty flush: %v", err)
	}
}
