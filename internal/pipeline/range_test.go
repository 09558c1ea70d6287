package pipeline

import "testing"

func TestNewLedgerRange(t *testing.T) {
	r, err := NewLedgerRange(100, 105)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Count() != 6 {
		t.Fatalf("count mismatch: %d", r.Count())
	}
}

func TestNewLedgerRangeSingle(t *testing.T) {
	r, err := NewLedgerRange(5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Count() != 1 {
		t.Fatalf("count mismatch: %d", r.Count())
	}
}

func TestNewLedgerRangeInvalid(t *testing.T) {
	if _, err := NewLedgerRange(10, 9); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}
