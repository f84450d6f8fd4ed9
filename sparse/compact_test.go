package sparse

import "testing"

func TestArray_Compact(t *testing.T) {
	a := New[int](100, 0)
	for i := 0; i < 20; i++ {
		a.Set(i, i)
	}
	// Write half the entries back to the default; Set keeps them stored.
	for i := 0; i < 20; i += 2 {
		a.Set(i, 0)
	}
	if a.Used() != 20 {
		t.Fatalf("Used() before Compact = %d, want 20", a.Used())
	}

	// Reads must be unchanged by compaction.
	before := make([]int, 100)
	for i := range before {
		before[i] = a.At(i)
	}

	a.Compact()

	if a.Used() != 10 {
		t.Errorf("Used() after Compact = %d, want 10", a.Used())
	}
	if a.Cap() != 10 {
		t.Errorf("Cap() after Compact = %d, want exactly-sized 10", a.Cap())
	}
	for i := range before {
		if got := a.At(i); got != before[i] {
			t.Errorf("At(%d) changed across Compact: %d -> %d", i, before[i], got)
		}
	}
	for v := range a.EntryValues() {
		if v == 0 {
			t.Error("Compact left a default-valued entry stored")
		}
	}

	// Entry at index 0 was written to the default and compacted away.
	if a.Contains(0) {
		t.Error("Contains(0) after Compact, want the entry dropped")
	}
}

func TestArray_CompactEmpty(t *testing.T) {
	a := New[int](10, 0)
	a.Compact()
	if a.Used() != 0 || a.Cap() != 0 {
		t.Errorf("Compact on empty array: Used()=%d Cap()=%d, want 0 and 0", a.Used(), a.Cap())
	}
	a.Set(5, 1)
	if v := a.At(5); v != 1 {
		t.Errorf("At(5) after Compact+Set = %d, want 1", v)
	}
}

func TestArray_TransformValues(t *testing.T) {
	a := New[int](10, 1)
	a.Set(2, 3)
	a.Set(5, 4)
	a.Set(8, 1) // stored copy of the default

	a.TransformValues(func(v int) int { return v * v })

	if v := a.At(2); v != 9 {
		t.Errorf("At(2) = %d, want 9", v)
	}
	if v := a.At(5); v != 16 {
		t.Errorf("At(5) = %d, want 16", v)
	}
	// Stored entries are transformed even when the result (or input) equals
	// the default, and none are dropped.
	if v, ok := a.Get(8); !ok || v != 1 {
		t.Errorf("Get(8) = (%d, %v), want (1, true)", v, ok)
	}
	if a.Used() != 3 {
		t.Errorf("Used() = %d, want 3", a.Used())
	}
	// Unstored indices still read the untransformed default.
	if v := a.At(0); v != 1 {
		t.Errorf("At(0) = %d, want default 1", v)
	}
}
