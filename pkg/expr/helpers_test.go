package expr

import (
	"math/big"
	"testing"
)

func intLit(t *testing.T, val int64, width uint64) *IntLiteral {
	t.Helper()
	return NewIntLiteral(SourceLocation{File: "test"}, big.NewInt(val), width)
}

func strLit(val string) *StringLiteral {
	return NewStringLiteral(SourceLocation{File: "test"}, val)
}

func loc() SourceLocation {
	return SourceLocation{File: "test"}
}

func mustInt(t *testing.T, v Value, err error) *big.Int {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	iv, ok := v.(IntValue)
	if !ok {
		t.Fatalf("expected integer value, got %s value %s", v.Kind(), v)
	}
	return iv.Val
}

func mustBool(t *testing.T, v Value, err error) bool {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bv, ok := v.(BoolValue)
	if !ok {
		t.Fatalf("expected boolean value, got %s value %s", v.Kind(), v)
	}
	return bv.Val
}

func wantInt(t *testing.T, v Value, err error, want int64) {
	t.Helper()
	got := mustInt(t, v, err)
	if got.Cmp(big.NewInt(want)) != 0 {
		t.Fatalf("expected %d, got %v", want, got)
	}
}
