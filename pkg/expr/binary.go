package expr

import (
	"math/big"

	"rdl/compiler-go/pkg/rdltypes"
)

// binaryIntExpr is the shared behavior of the two-operand integer operators
// (+ - * / % & | ^ ^~). Both operands share the node's width context.
type binaryIntExpr struct {
	exprBase
	left  Expr
	right Expr
}

func (e *binaryIntExpr) PredictType() (rdltypes.Type, error) {
	if err := predictNumericOperand(e.left, e.src, "Left operand of expression is not a compatible numeric type"); err != nil {
		return nil, err
	}
	if err := predictNumericOperand(e.right, e.src, "Right operand of expression is not a compatible numeric type"); err != nil {
		return nil, err
	}
	return rdltypes.LongintType, nil
}

func (e *binaryIntExpr) ResolveExprWidth() error {
	return resolveContextWidth(&e.exprBase, e.left, e.right)
}

func (e *binaryIntExpr) MinEvalWidth() (uint64, error) {
	lw, err := e.left.MinEvalWidth()
	if err != nil {
		return 0, err
	}
	rw, err := e.right.MinEvalWidth()
	if err != nil {
		return 0, err
	}
	if rw > lw {
		return rw, nil
	}
	return lw, nil
}

func (e *binaryIntExpr) PropagateEvalWidth(w uint64) error {
	return propagateContextWidth(&e.exprBase, w, e.left, e.right)
}

func (e *binaryIntExpr) operands() (l, r *big.Int, err error) {
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

// result truncates an arithmetic result to the resolved width.
func (e *binaryIntExpr) result(v *big.Int) (Value, error) {
	w, err := e.resolvedWidth()
	if err != nil {
		return nil, err
	}
	return IntValue{Val: trunc(v, w), Width: w}, nil
}

type Add struct{ binaryIntExpr }

func NewAdd(src SourceLocation, l, r Expr) *Add {
	return &Add{binaryIntExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Add) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	return e.result(new(big.Int).Add(l, r))
}

type Sub struct{ binaryIntExpr }

func NewSub(src SourceLocation, l, r Expr) *Sub {
	return &Sub{binaryIntExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Sub) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	return e.result(new(big.Int).Sub(l, r))
}

type Mult struct{ binaryIntExpr }

func NewMult(src SourceLocation, l, r Expr) *Mult {
	return &Mult{binaryIntExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Mult) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	return e.result(new(big.Int).Mul(l, r))
}

type Div struct{ binaryIntExpr }

func NewDiv(src SourceLocation, l, r Expr) *Div {
	return &Div{binaryIntExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Div) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	if r.Sign() == 0 {
		return nil, compileErrorf(e.src, "division by zero in constant expression")
	}
	return e.result(new(big.Int).Quo(l, r))
}

type Mod struct{ binaryIntExpr }

func NewMod(src SourceLocation, l, r Expr) *Mod {
	return &Mod{binaryIntExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *Mod) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	if r.Sign() == 0 {
		return nil, compileErrorf(e.src, "modulo by zero in constant expression")
	}
	return e.result(new(big.Int).Rem(l, r))
}

type BitwiseAnd struct{ binaryIntExpr }

func NewBitwiseAnd(src SourceLocation, l, r Expr) *BitwiseAnd {
	return &BitwiseAnd{binaryIntExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *BitwiseAnd) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	return e.result(new(big.Int).And(l, r))
}

type BitwiseOr struct{ binaryIntExpr }

func NewBitwiseOr(src SourceLocation, l, r Expr) *BitwiseOr {
	return &BitwiseOr{binaryIntExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *BitwiseOr) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	return e.result(new(big.Int).Or(l, r))
}

type BitwiseXor struct{ binaryIntExpr }

func NewBitwiseXor(src SourceLocation, l, r Expr) *BitwiseXor {
	return &BitwiseXor{binaryIntExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *BitwiseXor) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	return e.result(new(big.Int).Xor(l, r))
}

// BitwiseXnor is bitwise XOR followed by bitwise NOT; truncation restores
// the unsigned pattern.
type BitwiseXnor struct{ binaryIntExpr }

func NewBitwiseXnor(src SourceLocation, l, r Expr) *BitwiseXnor {
	return &BitwiseXnor{binaryIntExpr{exprBase: exprBase{src: src}, left: l, right: r}}
}

func (e *BitwiseXnor) Value() (Value, error) {
	l, r, err := e.operands()
	if err != nil {
		return nil, err
	}
	v := new(big.Int).Xor(l, r)
	return e.result(v.Not(v))
}

//-----------------------------------------------------------------------------
// Unary integer operators: + - ~
//-----------------------------------------------------------------------------

type unaryIntExpr struct {
	exprBase
	operand Expr
}

func (e *unaryIntExpr) PredictType() (rdltypes.Type, error) {
	if err := predictNumericOperand(e.operand, e.src, "Operand of expression is not a compatible numeric type"); err != nil {
		return nil, err
	}
	return rdltypes.LongintType, nil
}

func (e *unaryIntExpr) ResolveExprWidth() error {
	return resolveContextWidth(&e.exprBase, e.operand)
}

func (e *unaryIntExpr) MinEvalWidth() (uint64, error) {
	return e.operand.MinEvalWidth()
}

func (e *unaryIntExpr) PropagateEvalWidth(w uint64) error {
	return propagateContextWidth(&e.exprBase, w, e.operand)
}

func (e *unaryIntExpr) operandInt() (*big.Int, error) {
	v, err := e.operand.Value()
	if err != nil {
		return nil, err
	}
	return intOf(v)
}

func (e *unaryIntExpr) result(v *big.Int) (Value, error) {
	w, err := e.resolvedWidth()
	if err != nil {
		return nil, err
	}
	return IntValue{Val: trunc(v, w), Width: w}, nil
}

type UnaryPlus struct{ unaryIntExpr }

func NewUnaryPlus(src SourceLocation, n Expr) *UnaryPlus {
	return &UnaryPlus{unaryIntExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *UnaryPlus) Value() (Value, error) {
	n, err := e.operandInt()
	if err != nil {
		return nil, err
	}
	return e.result(n)
}

type UnaryMinus struct{ unaryIntExpr }

func NewUnaryMinus(src SourceLocation, n Expr) *UnaryMinus {
	return &UnaryMinus{unaryIntExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *UnaryMinus) Value() (Value, error) {
	n, err := e.operandInt()
	if err != nil {
		return nil, err
	}
	return e.result(new(big.Int).Neg(n))
}

type BitwiseInvert struct{ unaryIntExpr }

func NewBitwiseInvert(src SourceLocation, n Expr) *BitwiseInvert {
	return &BitwiseInvert{unaryIntExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *BitwiseInvert) Value() (Value, error) {
	n, err := e.operandInt()
	if err != nil {
		return nil, err
	}
	return e.result(new(big.Int).Not(n))
}
