package enum

import (
	"errors"
	"testing"
)

func TestNewSortsAscendingByDefault(t *testing.T) {
	e, err := New(map[string]int{"red": 2, "green": 1, "blue": 3})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	e.Iterate(func(key string, value int) bool {
		got = append(got, key)
		return true
	})
	want := []string{"green", "red", "blue"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDescendingOrdersHighestFirst(t *testing.T) {
	e, err := New(map[string]int{"a": 1, "b": 2, "c": 3}, Descending())
	if err != nil {
		t.Fatal(err)
	}
	entries := e.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i].Value > entries[i-1].Value {
			t.Fatalf("not descending: %v", entries)
		}
	}
}

func TestByKeyByValue(t *testing.T) {
	e, err := New(map[string]int{"ready": 0, "running": 1, "done": 2})
	if err != nil {
		t.Fatal(err)
	}
	v, err := e.ByKey("running")
	if err != nil || v != 1 {
		t.Fatalf("ByKey(running) = %d, %v", v, err)
	}
	k, err := e.ByValue(2)
	if err != nil || k != "done" {
		t.Fatalf("ByValue(2) = %q, %v", k, err)
	}
	if _, err := e.ByKey("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := e.ByValue(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewRejectsNumericKey(t *testing.T) {
	if _, err := New(map[string]int{"123": 1}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewRejectsDuplicateValue(t *testing.T) {
	if _, err := New(map[string]int{"a": 1, "b": 1}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestWithRangeRejectsOutOfBounds(t *testing.T) {
	if _, err := New(map[string]int{"a": 5}, WithRange(0, 4)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := New(map[string]int{"a": 4}, WithRange(0, 4)); err != nil {
		t.Fatalf("value at the boundary should be accepted: %v", err)
	}
}

func TestIsIn(t *testing.T) {
	e, err := New(map[string]int{"a": 1, "b": 2, "c": 5})
	if err != nil {
		t.Fatal(err)
	}
	if !e.IsIn(1, 5) {
		t.Fatal("expected IsIn(1, 5) to hold for the exact min/max bounds")
	}
	if !e.IsIn(1, 10) {
		t.Fatal("expected IsIn to accept a max looser than the actual largest value")
	}
	if e.IsIn(0, 5) {
		t.Fatal("expected IsIn to reject a min that doesn't match the smallest value")
	}
	if e.IsIn(1, 4) {
		t.Fatal("expected IsIn to reject a max smaller than the largest value")
	}
}

func TestSetAlwaysFails(t *testing.T) {
	e, err := New(map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Set("a", 2); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
}

func TestLenAndEntriesAreIndependentCopies(t *testing.T) {
	e, err := New(map[string]int{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}
	entries := e.Entries()
	entries[0].Key = "mutated"
	if e.Entries()[0].Key == "mutated" {
		t.Fatal("Entries() leaked internal storage")
	}
}
