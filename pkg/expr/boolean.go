package expr

import (
	"rdl/compiler-go/pkg/rdltypes"
)

// boolExpr is the shared behavior of && and ||. Both operands are
// self-determined: each one resolves its own width context and neither
// inherits nor contributes to the parent's. Constant evaluation computes
// both operands; there is no short circuit.
type boolExpr struct {
	exprBase
	left  Expr
	right Expr
}

func (e *boolExpr) PredictType() (rdltypes.Type, error) {
	if err := predictNumericOperand(e.left, e.src, "Left operand of expression is not a compatible boolean type"); err != nil {
		return nil, err
	}
	if err := predictNumericOperand(e.right, e.src, "Right operand of expression is not a compatible boolean type"); err != nil {
		return nil, err
	}
	return rdltypes.BooleanType, nil
}

// ResolveExprWidth does nothing: every operand is self-determined, so there
// is no context to size here.
func (e *boolExpr) ResolveExprWidth() error {
	return nil
}

func (e *boolExpr) MinEvalWidth() (uint64, error) {
	return 1, nil
}

// PropagateEvalWidth ignores the parent's width and triggers width
// resolution on each operand individually.
func (e *boolExpr) PropagateEvalWidth(uint64) error {
	if err := e.left.ResolveExprWidth(); err != nil {
		return err
	}
	return e.right.ResolveExprWidth()
}

func (e *boolExpr) operands() (l, r bool, err error) {
	lv, err := e.left.Value()
	if err != nil {
		return false, false, err
	}
	rv, err := e.right.Value()
	if err != nil {
		return false, false, err
	}
	if l, err = boolOf(lv); err != nil {
		return false, false, err
	}
	if r, err = boolOf(rv); err != nil {
		return false, false, err
	}
	return l, r, nil
}

type BoolAnd struct{ boolExpr }

func NewBoolAnd(src SourceLocation, l, r Expr) *BoolAnd {
	return &BoolAnd{boolExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *BoolAnd) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	return BoolValue{Val: l && r}, nil
}

type BoolOr struct{ boolExpr }

func NewBoolOr(src SourceLocation, l, r Expr) *BoolOr {
	return &BoolOr{boolExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *BoolOr) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	return BoolValue{Val: l || r}, nil
}
