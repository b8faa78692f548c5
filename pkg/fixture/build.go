package fixture

import (
	"fmt"
	"math/big"

	"rdl/compiler-go/pkg/expr"
	"rdl/compiler-go/pkg/rdltypes"
)

// Build constructs an expression tree from a structural node spec. Fixture
// nodes carry no real source positions, so every node gets a synthetic
// location usable in diagnostics.
func Build(spec *NodeSpec) (expr.Expr, error) {
	if spec == nil {
		return nil, fmt.Errorf("fixture: nil node spec")
	}
	src := expr.SourceLocation{File: "fixture"}

	switch spec.Op {
	case "int":
		val, err := parseInt(spec.Val)
		if err != nil {
			return nil, err
		}
		if spec.Width == 0 {
			return expr.NewUnsizedIntLiteral(src, val), nil
		}
		return expr.NewIntLiteral(src, val, spec.Width), nil
	case "string":
		return expr.NewStringLiteral(src, spec.Val), nil
	case "enum":
		member, ok := rdltypes.LookupBuiltinMember(spec.Val)
		if !ok {
			return nil, fmt.Errorf("fixture: unknown enum member %q", spec.Val)
		}
		return expr.NewEnumLiteral(src, member), nil
	}

	args, err := buildArgs(spec.Args)
	if err != nil {
		return nil, err
	}

	switch spec.Op {
	case "+":
		if len(args) == 1 {
			return expr.NewUnaryPlus(src, args[0]), nil
		}
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewAdd(src, l, r) })
	case "-":
		if len(args) == 1 {
			return expr.NewUnaryMinus(src, args[0]), nil
		}
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewSub(src, l, r) })
	case "*":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewMult(src, l, r) })
	case "/":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewDiv(src, l, r) })
	case "%":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewMod(src, l, r) })
	case "&":
		if len(args) == 1 {
			return expr.NewAndReduce(src, args[0]), nil
		}
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewBitwiseAnd(src, l, r) })
	case "|":
		if len(args) == 1 {
			return expr.NewOrReduce(src, args[0]), nil
		}
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewBitwiseOr(src, l, r) })
	case "^":
		if len(args) == 1 {
			return expr.NewXorReduce(src, args[0]), nil
		}
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewBitwiseXor(src, l, r) })
	case "^~", "~^":
		if len(args) == 1 {
			return expr.NewXnorReduce(src, args[0]), nil
		}
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewBitwiseXnor(src, l, r) })
	case "~":
		return unary(spec.Op, args, func(n expr.Expr) expr.Expr { return expr.NewBitwiseInvert(src, n) })
	case "~&":
		return unary(spec.Op, args, func(n expr.Expr) expr.Expr { return expr.NewNandReduce(src, n) })
	case "~|":
		return unary(spec.Op, args, func(n expr.Expr) expr.Expr { return expr.NewNorReduce(src, n) })
	case "!":
		return unary(spec.Op, args, func(n expr.Expr) expr.Expr { return expr.NewBoolNot(src, n) })
	case "==":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewEq(src, l, r) })
	case "!=":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewNeq(src, l, r) })
	case "<":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewLt(src, l, r) })
	case ">":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewGt(src, l, r) })
	case "<=":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewLeq(src, l, r) })
	case ">=":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewGeq(src, l, r) })
	case "&&":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewBoolAnd(src, l, r) })
	case "||":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewBoolOr(src, l, r) })
	case "**":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewExponent(src, l, r) })
	case "<<":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewLShift(src, l, r) })
	case ">>":
		return binary(spec.Op, args, func(l, r expr.Expr) expr.Expr { return expr.NewRShift(src, l, r) })
	case "?:":
		if len(args) != 3 {
			return nil, fmt.Errorf("fixture: ?: expects 3 operands, got %d", len(args))
		}
		return expr.NewTernary(src, args[0], args[1], args[2]), nil
	case "cast":
		switch {
		case spec.Width != 0 && len(args) == 1:
			return expr.NewWidthCast(src, args[0], spec.Width), nil
		case spec.Width == 0 && len(args) == 2:
			return expr.NewDynamicWidthCast(src, args[0], args[1]), nil
		default:
			return nil, fmt.Errorf("fixture: cast expects a width and one operand, or two operands")
		}
	case "bool":
		return unary(spec.Op, args, func(n expr.Expr) expr.Expr { return expr.NewBoolCast(src, n) })
	case "assign":
		dest, err := parseType(spec.Dest)
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, fmt.Errorf("fixture: assign expects 1 operand, got %d", len(args))
		}
		return expr.NewAssignmentCast(src, args[0], dest), nil
	default:
		return nil, fmt.Errorf("fixture: unknown operator %q", spec.Op)
	}
}

func buildArgs(specs []*NodeSpec) ([]expr.Expr, error) {
	args := make([]expr.Expr, 0, len(specs))
	for _, s := range specs {
		e, err := Build(s)
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	return args, nil
}

func unary(op string, args []expr.Expr, build func(expr.Expr) expr.Expr) (expr.Expr, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("fixture: %s expects 1 operand, got %d", op, len(args))
	}
	return build(args[0]), nil
}

func binary(op string, args []expr.Expr, build func(l, r expr.Expr) expr.Expr) (expr.Expr, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("fixture: %s expects 2 operands, got %d", op, len(args))
	}
	return build(args[0], args[1]), nil
}

// parseInt accepts decimal plus the usual prefixed bases (0x, 0o, 0b).
func parseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("fixture: invalid integer %q", s)
	}
	return v, nil
}

// parseType resolves a destination type name for assignment casts.
func parseType(name string) (rdltypes.Type, error) {
	switch name {
	case "longint":
		return rdltypes.LongintType, nil
	case "boolean":
		return rdltypes.BooleanType, nil
	case "bit":
		return rdltypes.BitType, nil
	case "string":
		return rdltypes.StringType, nil
	case "accesstype":
		return rdltypes.AccessTypeTag, nil
	case "onreadtype":
		return rdltypes.OnReadTypeTag, nil
	case "onwritetype":
		return rdltypes.OnWriteTypeTag, nil
	case "addressingtype":
		return rdltypes.AddressingTypeTag, nil
	case "precedencetype":
		return rdltypes.PrecedenceTypeTag, nil
	case "intrtype":
		return rdltypes.InterruptTypeTag, nil
	case "array":
		return &rdltypes.ArrayType{Element: rdltypes.LongintType}, nil
	default:
		return nil, fmt.Errorf("fixture: unknown destination type %q", name)
	}
}
