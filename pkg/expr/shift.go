package expr

import (
	"math/big"

	"rdl/compiler-go/pkg/rdltypes"
)

// shiftCap bounds right-shift distances fed to big.Int. Any distance past
// the operand's bit length already yields the same result.
const shiftCap = 1 << 24

// expShiftExpr is the shared behavior of ** << >>. The left operand is
// context-determined as usual; the right operand never influences the
// context and resolves its own width instead.
type expShiftExpr struct {
	exprBase
	left  Expr
	right Expr
}

func (e *expShiftExpr) PredictType() (rdltypes.Type, error) {
	if err := predictNumericOperand(e.left, e.src, "Left operand of expression is not a compatible numeric type"); err != nil {
		return nil, err
	}
	if err := predictNumericOperand(e.right, e.src, "Right operand of expression is not a compatible numeric type"); err != nil {
		return nil, err
	}
	return rdltypes.LongintType, nil
}

// ResolveExprWidth sizes the context from the left operand only.
func (e *expShiftExpr) ResolveExprWidth() error {
	lw, err := e.left.MinEvalWidth()
	if err != nil {
		return err
	}
	e.evalWidth = lw
	if err := e.left.PropagateEvalWidth(lw); err != nil {
		return err
	}
	return e.right.ResolveExprWidth()
}

func (e *expShiftExpr) MinEvalWidth() (uint64, error) {
	return e.left.MinEvalWidth()
}

// PropagateEvalWidth forwards the context width to the left operand and
// triggers self-determined resolution of the right operand.
func (e *expShiftExpr) PropagateEvalWidth(w uint64) error {
	e.evalWidth = w
	if err := e.left.PropagateEvalWidth(w); err != nil {
		return err
	}
	return e.right.ResolveExprWidth()
}

func (e *expShiftExpr) operands() (l, r *big.Int, err error) {
	lv, err := e.left.Value()
	if err != nil {
		return nil, nil, err
	}
	rv, err := e.right.Value()
	if err != nil {
		return nil, nil, err
	}
	if l, err = intOf(lv); err != nil {
		return nil, nil, err
	}
	if r, err = intOf(rv); err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (e *expShiftExpr) result(v *big.Int, w uint64) Value {
	return IntValue{Val: trunc(v, w), Width: w}
}

// Exponent computes l**r truncated to the context width. The power is taken
// modulo 2^width, which matches truncate-after-compute without materializing
// huge intermediates. A negative raw exponent degenerates to 1, the big.Int
// convention.
type Exponent struct{ expShiftExpr }

func NewExponent(src SourceLocation, l, r Expr) *Exponent {
	return &Exponent{expShiftExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Exponent) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	w, err := e.resolvedWidth()
	if err != nil {
		return nil, err
	}
	if r.Sign() < 0 {
		return e.result(big.NewInt(1), w), nil
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(w))
	v := new(big.Int).Exp(l, r, mod)
	return e.result(v, w), nil
}

type LShift struct{ expShiftExpr }

func NewLShift(src SourceLocation, l, r Expr) *LShift {
	return &LShift{expShiftExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *LShift) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	w, err := e.resolvedWidth()
	if err != nil {
		return nil, err
	}
	// Shifting past the context width leaves no bits behind.
	if !r.IsUint64() || r.Uint64() >= w {
		return e.result(big.NewInt(0), w), nil
	}
	return e.result(new(big.Int).Lsh(l, uint(r.Uint64())), w), nil
}

type RShift struct{ expShiftExpr }

func NewRShift(src SourceLocation, l, r Expr) *RShift {
	return &RShift{expShiftExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *RShift) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	w, err := e.resolvedWidth()
	if err != nil {
		return nil, err
	}
	shift := uint64(shiftCap)
	if r.IsUint64() && r.Uint64() < shiftCap {
		shift = r.Uint64()
	}
	return e.result(new(big.Int).Rsh(l, uint(shift)), w), nil
}
