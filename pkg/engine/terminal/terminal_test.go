package terminal

import (
	"testing"
)

func TestSizeOf_FallsBackForNonTerminal(t *testing.T) {
	// -1 is never a valid descriptor
	w, h := sizeOf(-1)
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("sizeOf(-1) = (%d,%d), want (%d,%d)", w, h, DefaultWidth, DefaultHeight)
	}
}

func TestRestore_NilSafe(t *testing.T) {
	var r *RawMode
	if err := r.Restore(); err != nil {
		t.Errorf("nil Restore() = %v, want nil", err)
	}
	if err := (&RawMode{}).Restore(); err != nil {
		t.Errorf("zero Restore() = %v, want nil", err)
	}
}
