package expr

import (
	"errors"
	"math/big"
	"testing"
)

func TestAddResolvesContextWidth(t *testing.T) {
	e := NewAdd(loc(), intLit(t, 5, 8), intLit(t, 3, 8))
	v, err := Evaluate(e)
	wantInt(t, v, err, 8)
	if e.EvalWidth() != 8 {
		t.Fatalf("expected context width 8, got %d", e.EvalWidth())
	}
}

func TestArithmeticWrapsAtWidth(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		want int64
	}{
		{"add_wraps", NewAdd(loc(), intLit(t, 250, 8), intLit(t, 10, 8)), 4},
		{"sub_wraps", NewSub(loc(), intLit(t, 3, 8), intLit(t, 5, 8)), 254},
		{"mult_wraps", NewMult(loc(), intLit(t, 16, 8), intLit(t, 16, 8)), 0},
		{"minus_wraps", NewUnaryMinus(loc(), intLit(t, 1, 4)), 15},
		{"plus_passthrough", NewUnaryPlus(loc(), intLit(t, 9, 4)), 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Evaluate(tc.expr)
			wantInt(t, v, err, tc.want)
		})
	}
}

func TestBitwiseInvertAllOnes(t *testing.T) {
	e := NewBitwiseInvert(loc(), intLit(t, 0, 4))
	v, err := Evaluate(e)
	wantInt(t, v, err, 15)
}

func TestBitwiseOperators(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		want int64
	}{
		{"and", NewBitwiseAnd(loc(), intLit(t, 0b1100, 4), intLit(t, 0b1010, 4)), 0b1000},
		{"or", NewBitwiseOr(loc(), intLit(t, 0b1100, 4), intLit(t, 0b1010, 4)), 0b1110},
		{"xor", NewBitwiseXor(loc(), intLit(t, 0b1100, 4), intLit(t, 0b1010, 4)), 0b0110},
		{"xnor", NewBitwiseXnor(loc(), intLit(t, 0b1100, 4), intLit(t, 0b1010, 4)), 0b1001},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Evaluate(tc.expr)
			wantInt(t, v, err, tc.want)
		})
	}
}

func TestDivModTruncateTowardZero(t *testing.T) {
	v, err := Evaluate(NewDiv(loc(), intLit(t, 7, 8), intLit(t, 2, 8)))
	wantInt(t, v, err, 3)

	v, err = Evaluate(NewMod(loc(), intLit(t, 7, 8), intLit(t, 3, 8)))
	wantInt(t, v, err, 1)
}

func TestDivisionByZeroIsDiagnosed(t *testing.T) {
	_, err := Evaluate(NewDiv(loc(), intLit(t, 7, 8), intLit(t, 0, 8)))
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a compile error, got %v", err)
	}
	if cerr.Src.File != "test" {
		t.Fatalf("expected diagnostic to carry the source handle, got %+v", cerr.Src)
	}

	_, err = Evaluate(NewMod(loc(), intLit(t, 7, 8), intLit(t, 0, 8)))
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a compile error, got %v", err)
	}
}

func TestRelationalOperators(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		want bool
	}{
		{"eq_true", NewEq(loc(), intLit(t, 5, 64), intLit(t, 5, 3)), true},
		{"eq_false", NewEq(loc(), intLit(t, 5, 8), intLit(t, 6, 8)), false},
		{"neq", NewNeq(loc(), intLit(t, 5, 8), intLit(t, 6, 8)), true},
		{"lt", NewLt(loc(), intLit(t, 3, 8), intLit(t, 5, 8)), true},
		{"gt", NewGt(loc(), intLit(t, 3, 8), intLit(t, 5, 8)), false},
		{"leq", NewLeq(loc(), intLit(t, 5, 8), intLit(t, 5, 8)), true},
		{"geq", NewGeq(loc(), intLit(t, 4, 8), intLit(t, 5, 8)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Evaluate(tc.expr)
			got := mustBool(t, v, err)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestReductionOperators(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		want int64
	}{
		{"and_all_ones", NewAndReduce(loc(), intLit(t, 0b11, 2)), 1},
		{"and_with_zero_bit", NewAndReduce(loc(), intLit(t, 0b10, 2)), 0},
		{"nand_all_ones", NewNandReduce(loc(), intLit(t, 0b11, 2)), 0},
		{"nand_with_zero_bit", NewNandReduce(loc(), intLit(t, 0b10, 2)), 1},
		{"or_nonzero", NewOrReduce(loc(), intLit(t, 0b0100, 4)), 1},
		{"or_zero", NewOrReduce(loc(), intLit(t, 0, 4)), 0},
		{"nor_zero", NewNorReduce(loc(), intLit(t, 0, 4)), 1},
		{"xor_odd_parity", NewXorReduce(loc(), intLit(t, 0b1011, 4)), 1},
		{"xor_even_parity", NewXorReduce(loc(), intLit(t, 0b1001, 4)), 0},
		{"xnor_odd_parity", NewXnorReduce(loc(), intLit(t, 0b1011, 4)), 0},
		{"xnor_even_parity", NewXnorReduce(loc(), intLit(t, 0b1001, 4)), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Evaluate(tc.expr)
			wantInt(t, v, err, tc.want)
		})
	}
}

func TestBoolNotNegatesEvaluatedOperand(t *testing.T) {
	v, err := Evaluate(NewBoolNot(loc(), intLit(t, 0, 4)))
	got := mustBool(t, v, err)
	if !got {
		t.Fatalf("expected !0 to be true")
	}
	v, err = Evaluate(NewBoolNot(loc(), intLit(t, 7, 4)))
	got = mustBool(t, v, err)
	if got {
		t.Fatalf("expected !7 to be false")
	}
}

func TestLogicalBooleanOperators(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		want bool
	}{
		{"and_true", NewBoolAnd(loc(), intLit(t, 2, 4), intLit(t, 1, 4)), true},
		{"and_false", NewBoolAnd(loc(), intLit(t, 2, 4), intLit(t, 0, 4)), false},
		{"or_true", NewBoolOr(loc(), intLit(t, 0, 4), intLit(t, 7, 4)), true},
		{"or_false", NewBoolOr(loc(), intLit(t, 0, 4), intLit(t, 0, 4)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Evaluate(tc.expr)
			got := mustBool(t, v, err)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLogicalBooleanEvaluatesBothOperands(t *testing.T) {
	// Constant evaluation has no short circuit: a failure in the right
	// operand surfaces even when the left already decides the result.
	inner := NewBoolAnd(loc(), intLit(t, 0, 4), NewDiv(loc(), intLit(t, 1, 8), intLit(t, 0, 8)))
	_, err := Evaluate(NewBoolCast(loc(), inner))
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected the dead operand's error to surface, got %v", err)
	}
}

func TestExponent(t *testing.T) {
	v, err := Evaluate(NewExponent(loc(), intLit(t, 2, 64), intLit(t, 10, 8)))
	wantInt(t, v, err, 1024)

	// Truncate-after-compute: the power wraps at the context width.
	v, err = Evaluate(NewExponent(loc(), intLit(t, 3, 4), intLit(t, 4, 4)))
	wantInt(t, v, err, 81%16)
}

func TestShiftOperators(t *testing.T) {
	v, err := Evaluate(NewLShift(loc(), intLit(t, 0b0011, 4), intLit(t, 2, 2)))
	wantInt(t, v, err, 0b1100)

	v, err = Evaluate(NewRShift(loc(), intLit(t, 0b1100, 4), intLit(t, 2, 2)))
	wantInt(t, v, err, 0b0011)

	// Shifting everything out leaves zero.
	v, err = Evaluate(NewLShift(loc(), intLit(t, 3, 4), intLit(t, 64, 8)))
	wantInt(t, v, err, 0)
	v, err = Evaluate(NewRShift(loc(), intLit(t, 3, 4), intLit(t, 64, 8)))
	wantInt(t, v, err, 0)
}

func TestWidthCastTruncatesToCastWidth(t *testing.T) {
	e := NewWidthCast(loc(), intLit(t, 300, 64), 8)
	v, err := Evaluate(e)
	wantInt(t, v, err, 44)
	if e.EvalWidth() != 8 {
		t.Fatalf("expected final cast width 8, got %d", e.EvalWidth())
	}
}

func TestBoolCast(t *testing.T) {
	v, err := Evaluate(NewBoolCast(loc(), intLit(t, 5, 8)))
	if !mustBool(t, v, err) {
		t.Fatalf("expected bool(5) to be true")
	}
	v, err = Evaluate(NewBoolCast(loc(), intLit(t, 0, 8)))
	if mustBool(t, v, err) {
		t.Fatalf("expected bool(0) to be false")
	}
}

func TestTernarySelectsBranch(t *testing.T) {
	v, err := Evaluate(NewTernary(loc(), intLit(t, 1, 1), intLit(t, 3, 8), intLit(t, 5, 8)))
	wantInt(t, v, err, 3)

	v, err = Evaluate(NewTernary(loc(), intLit(t, 0, 1), intLit(t, 3, 8), intLit(t, 5, 8)))
	wantInt(t, v, err, 5)
}

func TestTernaryStringBranches(t *testing.T) {
	v, err := Evaluate(NewTernary(loc(), intLit(t, 0, 1), strLit("a"), strLit("b")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sv, ok := v.(StringValue)
	if !ok || sv.Val != "b" {
		t.Fatalf("expected \"b\", got %s", v)
	}
}

func TestEvaluationRequiresResolvedWidth(t *testing.T) {
	e := NewAdd(loc(), intLit(t, 1, 8), intLit(t, 2, 8))
	_, err := e.Value()
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a loud failure when evaluating before width resolution, got %v", err)
	}
}

func TestIntValueFormatting(t *testing.T) {
	v := IntValue{Val: big.NewInt(44), Width: 8}
	if v.String() != "8'd44" {
		t.Fatalf("unexpected formatting %q", v.String())
	}
}
