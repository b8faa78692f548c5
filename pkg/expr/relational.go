package expr

import (
	"rdl/compiler-go/pkg/rdltypes"
)

// relationalExpr is the shared behavior of == != < > <= >=. The result is
// always a single-bit boolean, so the node severs the enclosing width
// context: both operands are sized against each other, independent of the
// parent expression.
//
// TODO: support non-numeric comparisons (string and enum equality).
type relationalExpr struct {
	exprBase
	left  Expr
	right Expr
}

func (e *relationalExpr) PredictType() (rdltypes.Type, error) {
	if err := predictNumericOperand(e.left, e.src, "Left operand of expression is not a compatible numeric type"); err != nil {
		return nil, err
	}
	if err := predictNumericOperand(e.right, e.src, "Right operand of expression is not a compatible numeric type"); err != nil {
		return nil, err
	}
	return rdltypes.BooleanType, nil
}

func (e *relationalExpr) ResolveExprWidth() error {
	return resolveContextWidth(&e.exprBase, e.left, e.right)
}

func (e *relationalExpr) MinEvalWidth() (uint64, error) {
	return 1, nil
}

// PropagateEvalWidth ignores the parent's width and starts a new expression
// context.
func (e *relationalExpr) PropagateEvalWidth(uint64) error {
	return e.ResolveExprWidth()
}

func (e *relationalExpr) compare() (int, error) {
	lv, err := e.left.Value()
	if err != nil {
		return 0, err
	}
	rv, err := e.right.Value()
	if err != nil {
		return 0, err
	}
	l, err := intOf(lv)
	if err != nil {
		return 0, err
	}
	r, err := intOf(rv)
	if err != nil {
		return 0, err
	}
	return l.Cmp(r), nil
}

type Eq struct{ relationalExpr }

func NewEq(src SourceLocation, l, r Expr) *Eq {
	return &Eq{relationalExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Eq) Value() (Value, error) {
	c, err := e.compare()
	if err != nil {
		return nil, err
	}
	return BoolValue{Val: c == 0}, nil
}

type Neq struct{ relationalExpr }

func NewNeq(src SourceLocation, l, r Expr) *Neq {
	return &Neq{relationalExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Neq) Value() (Value, error) {
	c, err := e.compare()
	if err != nil {
		return nil, err
	}
	return BoolValue{Val: c != 0}, nil
}

type Lt struct{ relationalExpr }

func NewLt(src SourceLocation, l, r Expr) *Lt {
	return &Lt{relationalExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Lt) Value() (Value, error) {
	c, err := e.compare()
	if err != nil {
		return nil, err
	}
	return BoolValue{Val: c < 0}, nil
}

type Gt struct{ relationalExpr }

func NewGt(src SourceLocation, l, r Expr) *Gt {
	return &Gt{relationalExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Gt) Value() (Value, error) {
	c, err := e.compare()
	if err != nil {
		return nil, err
	}
	return BoolValue{Val: c > 0}, nil
}

type Leq struct{ relationalExpr }

func NewLeq(src SourceLocation, l, r Expr) *Leq {
	return &Leq{relationalExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Leq) Value() (Value, error) {
	c, err := e.compare()
	if err != nil {
		return nil, err
	}
	return BoolValue{Val: c <= 0}, nil
}

type Geq struct{ relationalExpr }

func NewGeq(src SourceLocation, l, r Expr) *Geq {
	return &Geq{relationalExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Geq) Value() (Value, error) {
	c, err := e.compare()
	if err != nil {
		return nil, err
	}
	return BoolValue{Val: c >= 0}, nil
}
