package rdltypes

// Type is an opaque static type tag used during compile-time type checking.
// Two tags denote the same type exactly when SameType reports true; for
// everything except arrays this is plain interface equality.
type Type interface {
	TypeName() string
}

// PrimitiveType tags the scalar types of the property value system.
type PrimitiveType int

const (
	// LongintType is the 64-bit-default unsigned integer type.
	LongintType PrimitiveType = iota
	// BooleanType is the true/false type.
	BooleanType
	// BitType is the single-bit vector type.
	BitType
	// StringType is the string type.
	StringType
)

func (t PrimitiveType) TypeName() string {
	switch t {
	case LongintType:
		return "longint unsigned"
	case BooleanType:
		return "boolean"
	case BitType:
		return "bit"
	case StringType:
		return "string"
	default:
		return "unknown"
	}
}

// enumTag is the tag for one builtin enumerated domain. Each domain has a
// single canonical instance, so interface equality identifies the type.
type enumTag struct {
	name string
}

func (t *enumTag) TypeName() string { return t.name }

var (
	// AccessTypeTag is the static type of AccessType members.
	AccessTypeTag Type = &enumTag{name: "accesstype"}
	// OnReadTypeTag is the static type of OnReadType members.
	OnReadTypeTag Type = &enumTag{name: "onreadtype"}
	// OnWriteTypeTag is the static type of OnWriteType members.
	OnWriteTypeTag Type = &enumTag{name: "onwritetype"}
	// AddressingTypeTag is the static type of AddressingType members.
	AddressingTypeTag Type = &enumTag{name: "addressingtype"}
	// PrecedenceTypeTag is the static type of PrecedenceType members.
	PrecedenceTypeTag Type = &enumTag{name: "precedencetype"}
	// InterruptTypeTag is the static type of InterruptType members.
	InterruptTypeTag Type = &enumTag{name: "intrtype"}
)

// ArrayType is the placeholder tag for array-typed properties. Arrays carry
// their expected element type so assignment checks can compare structurally.
type ArrayType struct {
	Element Type
}

func (t *ArrayType) TypeName() string {
	if t.Element == nil {
		return "array"
	}
	return t.Element.TypeName() + "[]"
}

// SameType reports whether two type tags denote the same static type.
// Array placeholders compare by element type; all other tags are canonical
// values compared directly.
func SameType(a, b Type) bool {
	arrA, okA := a.(*ArrayType)
	arrB, okB := b.(*ArrayType)
	if okA || okB {
		if !okA || !okB {
			return false
		}
		if arrA.Element == nil || arrB.Element == nil {
			return arrA.Element == arrB.Element
		}
		return SameType(arrA.Element, arrB.Element)
	}
	return a == b
}
