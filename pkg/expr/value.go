package expr

import (
	"fmt"
	"math/big"

	"rdl/compiler-go/pkg/rdltypes"
)

// Kind identifies the runtime category of an evaluated constant.
type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindString
	KindEnum
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the result of evaluating a constant expression.
type Value interface {
	Kind() Kind
	String() string
}

// IntValue holds an integer as its truncated unsigned bit pattern, together
// with the width it was evaluated at.
type IntValue struct {
	Val   *big.Int
	Width uint64
}

func (v IntValue) Kind() Kind     { return KindInt }
func (v IntValue) String() string { return fmt.Sprintf("%d'd%v", v.Width, v.Val) }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }
func (v BoolValue) String() string {
	if v.Val {
		return "true"
	}
	return "false"
}

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind     { return KindString }
func (v StringValue) String() string { return fmt.Sprintf("%q", v.Val) }

// EnumValue wraps a member of a builtin or user-defined enumerated domain.
type EnumValue struct {
	Member rdltypes.EnumMember
}

func (v EnumValue) Kind() Kind     { return KindEnum }
func (v EnumValue) String() string { return v.Member.String() }

// ArrayValue is the placeholder for array-typed results. Array semantics are
// not elaborated by this package.
type ArrayValue struct {
	ElementType rdltypes.Type
	Elements    []Value
}

func (v ArrayValue) Kind() Kind { return KindArray }
func (v ArrayValue) String() string {
	return fmt.Sprintf("array[%d]", len(v.Elements))
}

//-----------------------------------------------------------------------------
// Numeric coercion
//-----------------------------------------------------------------------------

// intOf coerces a numeric-like value to an integer. Type prediction
// guarantees operands of integer operators are int, bool, or bit valued.
func intOf(v Value) (*big.Int, error) {
	switch v := v.(type) {
	case IntValue:
		return v.Val, nil
	case BoolValue:
		if v.Val {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	default:
		return nil, fmt.Errorf("expr: %s value is not an integer", v.Kind())
	}
}

// boolOf coerces a numeric-like value to a boolean; any non-zero integer is
// true.
func boolOf(v Value) (bool, error) {
	switch v := v.(type) {
	case BoolValue:
		return v.Val, nil
	case IntValue:
		return v.Val.Sign() != 0, nil
	default:
		return false, fmt.Errorf("expr: %s value is not a boolean", v.Kind())
	}
}
