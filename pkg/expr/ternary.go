package expr

import (
	"rdl/compiler-go/pkg/rdltypes"
)

// Ternary is the conditional operator i ? j : k. The condition is
// self-determined and does not contribute to the surrounding context; the
// two result branches are context-determined with each other.
type Ternary struct {
	exprBase
	cond    Expr
	ifTrue  Expr
	ifFalse Expr
}

func NewTernary(src SourceLocation, cond, ifTrue, ifFalse Expr) *Ternary {
	return &Ternary{exprBase: exprBase{src: src}, cond: cond, ifTrue: ifTrue, ifFalse: ifFalse}
}

// PredictType validates all three operands. Branches must either both be
// numeric-like (the result is an integer) or have identical types. Both
// branches are checked regardless of which one the condition will select.
func (e *Ternary) PredictType() (rdltypes.Type, error) {
	if err := predictNumericOperand(e.cond, e.src, "Conditional operand of expression is not a compatible boolean type"); err != nil {
		return nil, err
	}

	tj, err := e.ifTrue.PredictType()
	if err != nil {
		return nil, err
	}
	tk, err := e.ifFalse.PredictType()
	if err != nil {
		return nil, err
	}

	if isNumericLike(tj) && isNumericLike(tk) {
		return rdltypes.LongintType, nil
	}
	if !rdltypes.SameType(tj, tk) {
		return nil, compileErrorf(e.src, "True/False results of ternary conditional are not compatible types")
	}
	return tj, nil
}

// ResolveExprWidth sizes the context from the two result branches only.
func (e *Ternary) ResolveExprWidth() error {
	wj, err := e.ifTrue.MinEvalWidth()
	if err != nil {
		return err
	}
	wk, err := e.ifFalse.MinEvalWidth()
	if err != nil {
		return err
	}
	w := uint64(1)
	if wj > w {
		w = wj
	}
	if wk > w {
		w = wk
	}
	e.evalWidth = w
	if err := e.ifTrue.PropagateEvalWidth(w); err != nil {
		return err
	}
	if err := e.ifFalse.PropagateEvalWidth(w); err != nil {
		return err
	}
	return e.cond.ResolveExprWidth()
}

// MinEvalWidth excludes the condition: it has no influence on the
// surrounding evaluation context.
func (e *Ternary) MinEvalWidth() (uint64, error) {
	wj, err := e.ifTrue.MinEvalWidth()
	if err != nil {
		return 0, err
	}
	wk, err := e.ifFalse.MinEvalWidth()
	if err != nil {
		return 0, err
	}
	if wk > wj {
		return wk, nil
	}
	return wj, nil
}

// PropagateEvalWidth forwards the context width to both branches and
// triggers self-determined resolution of the condition.
func (e *Ternary) PropagateEvalWidth(w uint64) error {
	e.evalWidth = w
	if err := e.ifTrue.PropagateEvalWidth(w); err != nil {
		return err
	}
	if err := e.ifFalse.PropagateEvalWidth(w); err != nil {
		return err
	}
	return e.cond.ResolveExprWidth()
}

// Value evaluates all three operands and returns the selected branch.
func (e *Ternary) Value() (Value, error) {
	cv, err := e.cond.Value()
	if err != nil {
		return nil, err
	}
	cond, err := boolOf(cv)
	if err != nil {
		return nil, err
	}
	jv, err := e.ifTrue.Value()
	if err != nil {
		return nil, err
	}
	kv, err := e.ifFalse.Value()
	if err != nil {
		return nil, err
	}
	if cond {
		return jv, nil
	}
	return kv, nil
}
