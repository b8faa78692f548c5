package expr

import (
	"math/big"

	"rdl/compiler-go/pkg/rdltypes"
)

// reductionExpr is the shared behavior of the unary reduction operators
// & ~& | ~| ^ ^~ and logical !. The result is a single bit, so the node
// severs the enclosing width context and sizes its operand independently.
type reductionExpr struct {
	exprBase
	operand Expr
}

func (e *reductionExpr) PredictType() (rdltypes.Type, error) {
	if err := predictNumericOperand(e.operand, e.src, "Operand of expression is not a compatible numeric type"); err != nil {
		return nil, err
	}
	return rdltypes.LongintType, nil
}

func (e *reductionExpr) ResolveExprWidth() error {
	return resolveContextWidth(&e.exprBase, e.operand)
}

func (e *reductionExpr) MinEvalWidth() (uint64, error) {
	return 1, nil
}

// PropagateEvalWidth ignores the parent's width and starts a new expression
// context.
func (e *reductionExpr) PropagateEvalWidth(uint64) error {
	return e.ResolveExprWidth()
}

func (e *reductionExpr) operandInt() (*big.Int, error) {
	v, err := e.operand.Value()
	if err != nil {
		return nil, err
	}
	return intOf(v)
}

// reduceBit packages a reduction result as a 1-bit integer.
func reduceBit(b bool) Value {
	v := big.NewInt(0)
	if b {
		v.SetInt64(1)
	}
	return IntValue{Val: v, Width: 1}
}

// andReduce is true iff no zero bit exists within the operand's context
// width: invert, truncate, and test for all-zero.
func (e *reductionExpr) andReduce() (bool, error) {
	n, err := e.operandInt()
	if err != nil {
		return false, err
	}
	w, err := e.resolvedWidth()
	if err != nil {
		return false, err
	}
	inv := trunc(new(big.Int).Not(n), w)
	return inv.Sign() == 0, nil
}

func (e *reductionExpr) orReduce() (bool, error) {
	n, err := e.operandInt()
	if err != nil {
		return false, err
	}
	return n.Sign() != 0, nil
}

// xorReduce is the parity of the set bits within the context width.
func (e *reductionExpr) xorReduce() (bool, error) {
	n, err := e.operandInt()
	if err != nil {
		return false, err
	}
	w, err := e.resolvedWidth()
	if err != nil {
		return false, err
	}
	n = trunc(n, w)
	parity := uint(0)
	for i := 0; i < n.BitLen(); i++ {
		parity ^= n.Bit(i)
	}
	return parity == 1, nil
}

type AndReduce struct{ reductionExpr }

func NewAndReduce(src SourceLocation, n Expr) *AndReduce {
	return &AndReduce{reductionExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *AndReduce) Value() (Value, error) {
	b, err := e.andReduce()
	if err != nil {
		return nil, err
	}
	return reduceBit(b), nil
}

type NandReduce struct{ reductionExpr }

func NewNandReduce(src SourceLocation, n Expr) *NandReduce {
	return &NandReduce{reductionExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *NandReduce) Value() (Value, error) {
	b, err := e.andReduce()
	if err != nil {
		return nil, err
	}
	return reduceBit(!b), nil
}

type OrReduce struct{ reductionExpr }

func NewOrReduce(src SourceLocation, n Expr) *OrReduce {
	return &OrReduce{reductionExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *OrReduce) Value() (Value, error) {
	b, err := e.orReduce()
	if err != nil {
		return nil, err
	}
	return reduceBit(b), nil
}

type NorReduce struct{ reductionExpr }

func NewNorReduce(src SourceLocation, n Expr) *NorReduce {
	return &NorReduce{reductionExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *NorReduce) Value() (Value, error) {
	b, err := e.orReduce()
	if err != nil {
		return nil, err
	}
	return reduceBit(!b), nil
}

type XorReduce struct{ reductionExpr }

func NewXorReduce(src SourceLocation, n Expr) *XorReduce {
	return &XorReduce{reductionExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *XorReduce) Value() (Value, error) {
	b, err := e.xorReduce()
	if err != nil {
		return nil, err
	}
	return reduceBit(b), nil
}

type XnorReduce struct{ reductionExpr }

func NewXnorReduce(src SourceLocation, n Expr) *XnorReduce {
	return &XnorReduce{reductionExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *XnorReduce) Value() (Value, error) {
	b, err := e.xorReduce()
	if err != nil {
		return nil, err
	}
	return reduceBit(!b), nil
}

// BoolNot evaluates its operand in a self-determined context and logically
// negates the result.
type BoolNot struct{ reductionExpr }

func NewBoolNot(src SourceLocation, n Expr) *BoolNot {
	return &BoolNot{reductionExpr{exprBase: exprBase{src: src}, operand: n}}
}

func (e *BoolNot) Value() (Value, error) {
	v, err := e.operand.Value()
	if err != nil {
		return nil, err
	}
	b, err := boolOf(v)
	if err != nil {
		return nil, err
	}
	return BoolValue{Val: !b}, nil
}
