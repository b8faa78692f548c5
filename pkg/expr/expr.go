package expr

import (
	"fmt"
	"math/big"

	"rdl/compiler-go/pkg/rdltypes"
)

// DefaultIntWidth is the evaluation width of an integer literal whose source
// form does not specify one.
const DefaultIntWidth = 64

// Expr is one node of a constant expression tree. Trees are built once by
// the parser/elaborator and are immutable except for the cached evaluation
// width, which the two resolution operations update. A tree belongs to a
// single expression and must not be shared across goroutines.
//
// The intended calling sequence for a top-level expression is PredictType
// (full-tree validation), ResolveExprWidth (once, at the context root), then
// Value. Width resolution and evaluation may be repeated; a failed phase
// must prevent Value from being invoked on that subtree.
type Expr interface {
	// Src returns the node's source handle for diagnostics.
	Src() SourceLocation

	// PredictType returns the static type the expression will produce. It
	// recursively validates every operand, including operands whose type does
	// not contribute to the result, so errors in dead branches still surface.
	PredictType() (rdltypes.Type, error)

	// ResolveExprWidth determines this context's evaluation width from every
	// operand that does not define its own context, and propagates the
	// result back to those operands. It is called once per width context, at
	// the context's root node.
	ResolveExprWidth() error

	// MinEvalWidth returns the node's self-determined minimum evaluation
	// width without mutating resolution state.
	MinEvalWidth() (uint64, error)

	// PropagateEvalWidth receives the enclosing context's width. Nodes that
	// begin a new self-determined context ignore w and instead trigger their
	// own ResolveExprWidth to continue resolution below themselves.
	PropagateEvalWidth(w uint64) error

	// EvalWidth returns the currently resolved evaluation width, or 0 if no
	// resolution pass has reached the node yet.
	EvalWidth() uint64

	// Value computes the expression result. Integer-producing nodes truncate
	// to the resolved evaluation width.
	Value() (Value, error)
}

// Evaluate runs the full constant-evaluation sequence on the root of an
// expression: type prediction, width resolution, then value computation.
// Value is never computed once an earlier phase has failed.
func Evaluate(root Expr) (Value, error) {
	if root == nil {
		return nil, fmt.Errorf("expr: nil expression")
	}
	if _, err := root.PredictType(); err != nil {
		return nil, err
	}
	if err := root.ResolveExprWidth(); err != nil {
		return nil, err
	}
	return root.Value()
}

//-----------------------------------------------------------------------------
// Shared node state and width plumbing
//-----------------------------------------------------------------------------

// exprBase carries the state common to every node: the source handle and the
// mutable evaluation-width cache. A width of 0 means "not yet resolved";
// every resolved width is >= 1.
type exprBase struct {
	src       SourceLocation
	evalWidth uint64
}

func (b *exprBase) Src() SourceLocation { return b.src }

func (b *exprBase) EvalWidth() uint64 { return b.evalWidth }

// resolvedWidth returns the cached width, failing if resolution has not
// reached this node. Evaluating an integer node before its width is known
// would silently produce a wrong register value, so this fails loudly.
func (b *exprBase) resolvedWidth() (uint64, error) {
	if b.evalWidth == 0 {
		return 0, compileErrorf(b.src, "expression width was not resolved before evaluation")
	}
	return b.evalWidth, nil
}

// resolveContextWidth implements the default context-root behavior: size the
// context to the largest operand minimum (at least 1 bit) and propagate the
// result to every operand.
func resolveContextWidth(b *exprBase, ops ...Expr) error {
	w := uint64(1)
	for _, op := range ops {
		mw, err := op.MinEvalWidth()
		if err != nil {
			return err
		}
		if mw > w {
			w = mw
		}
	}
	b.evalWidth = w
	for _, op := range ops {
		if err := op.PropagateEvalWidth(w); err != nil {
			return err
		}
	}
	return nil
}

// propagateContextWidth implements the default propagation behavior: adopt
// the enclosing context's width and forward it unchanged.
func propagateContextWidth(b *exprBase, w uint64, ops ...Expr) error {
	b.evalWidth = w
	for _, op := range ops {
		if err := op.PropagateEvalWidth(w); err != nil {
			return err
		}
	}
	return nil
}

// trunc reduces v to its low-order width bits: the unsigned two's-complement
// pattern of v mod 2^width. big.Int bitwise AND already treats negative
// values as infinite two's complement, so a mask is all that is needed.
func trunc(v *big.Int, width uint64) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(width))
	mask.Sub(mask, big.NewInt(1))
	return mask.And(v, mask)
}

//-----------------------------------------------------------------------------
// Type prediction helpers
//-----------------------------------------------------------------------------

// isNumericLike reports membership in the numeric-compatible type set.
// Integer, boolean, and bit operands may mix freely in integer operators.
func isNumericLike(t rdltypes.Type) bool {
	return t == rdltypes.LongintType || t == rdltypes.BooleanType || t == rdltypes.BitType
}

// predictNumericOperand type-checks one operand of a numeric operator. The
// message names which operand failed; operand errors take precedence.
func predictNumericOperand(op Expr, src SourceLocation, msg string) error {
	t, err := op.PredictType()
	if err != nil {
		return err
	}
	if !isNumericLike(t) {
		return compileErrorf(src, "%s", msg)
	}
	return nil
}
