package expr

import (
	"math/big"

	"rdl/compiler-go/pkg/rdltypes"
)

// IntLiteral is a sized integer literal. The parser supplies the value and,
// for sized verilog-style literals, the width; unsized literals default to
// DefaultIntWidth bits.
type IntLiteral struct {
	exprBase
	val   *big.Int
	width uint64
}

// NewIntLiteral builds a literal with an explicit width.
func NewIntLiteral(src SourceLocation, val *big.Int, width uint64) *IntLiteral {
	return &IntLiteral{exprBase: exprBase{src: src}, val: val, width: width}
}

// NewUnsizedIntLiteral builds a literal with the default width.
func NewUnsizedIntLiteral(src SourceLocation, val *big.Int) *IntLiteral {
	return NewIntLiteral(src, val, DefaultIntWidth)
}

func (e *IntLiteral) PredictType() (rdltypes.Type, error) {
	return rdltypes.LongintType, nil
}

func (e *IntLiteral) ResolveExprWidth() error {
	return resolveContextWidth(&e.exprBase)
}

func (e *IntLiteral) MinEvalWidth() (uint64, error) {
	return e.width, nil
}

func (e *IntLiteral) PropagateEvalWidth(w uint64) error {
	return propagateContextWidth(&e.exprBase, w)
}

func (e *IntLiteral) Value() (Value, error) {
	return IntValue{Val: e.val, Width: e.width}, nil
}

// EnumLiteral wraps a member of a builtin or user-defined enumerated domain.
type EnumLiteral struct {
	exprBase
	val rdltypes.EnumMember
}

func NewEnumLiteral(src SourceLocation, val rdltypes.EnumMember) *EnumLiteral {
	return &EnumLiteral{exprBase: exprBase{src: src}, val: val}
}

func (e *EnumLiteral) PredictType() (rdltypes.Type, error) {
	return e.val.EnumType(), nil
}

func (e *EnumLiteral) ResolveExprWidth() error {
	return resolveContextWidth(&e.exprBase)
}

func (e *EnumLiteral) MinEvalWidth() (uint64, error) {
	// Width is a don't-care for non-integer leaves.
	return 1, nil
}

func (e *EnumLiteral) PropagateEvalWidth(w uint64) error {
	return propagateContextWidth(&e.exprBase, w)
}

func (e *EnumLiteral) Value() (Value, error) {
	return EnumValue{Member: e.val}, nil
}

// StringLiteral is a string constant.
type StringLiteral struct {
	exprBase
	val string
}

func NewStringLiteral(src SourceLocation, val string) *StringLiteral {
	return &StringLiteral{exprBase: exprBase{src: src}, val: val}
}

func (e *StringLiteral) PredictType() (rdltypes.Type, error) {
	return rdltypes.StringType, nil
}

func (e *StringLiteral) ResolveExprWidth() error {
	return resolveContextWidth(&e.exprBase)
}

func (e *StringLiteral) MinEvalWidth() (uint64, error) {
	// Width is a don't-care for non-integer leaves.
	return 1, nil
}

func (e *StringLiteral) PropagateEvalWidth(w uint64) error {
	return propagateContextWidth(&e.exprBase, w)
}

func (e *StringLiteral) Value() (Value, error) {
	return StringValue{Val: e.val}, nil
}
