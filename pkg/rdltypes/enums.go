package rdltypes

// EnumMember is implemented by every enumerated-domain member, builtin or
// user-defined. The expression core treats members as opaque values tagged
// with their owning enum type.
type EnumMember interface {
	EnumType() Type
	String() string
}

//-----------------------------------------------------------------------------
// Builtin enumerated property types
//-----------------------------------------------------------------------------

// AccessType describes software access to a field.
type AccessType int

const (
	// AccessNA marks a field as not accessible.
	AccessNA AccessType = iota
	// AccessRW marks a field readable and writable.
	AccessRW
	// AccessR marks a field read-only.
	AccessR
	// AccessW marks a field write-only.
	AccessW
	// AccessRW1 is readable, and writable only once after reset.
	AccessRW1
	// AccessW1 is writable only once after reset.
	AccessW1
)

func (t AccessType) EnumType() Type { return AccessTypeTag }

func (t AccessType) String() string {
	switch t {
	case AccessNA:
		return "na"
	case AccessRW:
		return "rw"
	case AccessR:
		return "r"
	case AccessW:
		return "w"
	case AccessRW1:
		return "rw1"
	case AccessW1:
		return "w1"
	default:
		return "accesstype(?)"
	}
}

// OnReadType describes a field's read side-effect.
type OnReadType int

const (
	// OnReadClear clears the field on read.
	OnReadClear OnReadType = iota
	// OnReadSet sets the field on read.
	OnReadSet
	// OnReadUser marks a user-defined read side-effect.
	OnReadUser
)

func (t OnReadType) EnumType() Type { return OnReadTypeTag }

func (t OnReadType) String() string {
	switch t {
	case OnReadClear:
		return "rclr"
	case OnReadSet:
		return "rset"
	case OnReadUser:
		return "ruser"
	default:
		return "onreadtype(?)"
	}
}

// OnWriteType describes how a software write modifies a field.
type OnWriteType int

const (
	// OnWriteOneSet: write one to set.
	OnWriteOneSet OnWriteType = iota
	// OnWriteOneClear: write one to clear.
	OnWriteOneClear
	// OnWriteOneToggle: write one to toggle.
	OnWriteOneToggle
	// OnWriteZeroSet: write zero to set.
	OnWriteZeroSet
	// OnWriteZeroClear: write zero to clear.
	OnWriteZeroClear
	// OnWriteZeroToggle: write zero to toggle.
	OnWriteZeroToggle
	// OnWriteClear: all bits cleared on write.
	OnWriteClear
	// OnWriteSet: all bits set on write.
	OnWriteSet
	// OnWriteUser: user-defined write modification.
	OnWriteUser
)

func (t OnWriteType) EnumType() Type { return OnWriteTypeTag }

func (t OnWriteType) String() string {
	switch t {
	case OnWriteOneSet:
		return "woset"
	case OnWriteOneClear:
		return "woclr"
	case OnWriteOneToggle:
		return "wot"
	case OnWriteZeroSet:
		return "wzs"
	case OnWriteZeroClear:
		return "wzc"
	case OnWriteZeroToggle:
		return "wzt"
	case OnWriteClear:
		return "wclr"
	case OnWriteSet:
		return "wset"
	case OnWriteUser:
		return "wuser"
	default:
		return "onwritetype(?)"
	}
}

// AddressingType describes how child components are packed.
type AddressingType int

const (
	// AddressingCompact packs components tightly together.
	AddressingCompact AddressingType = iota
	// AddressingRegalign aligns each component's start to a multiple of its size.
	AddressingRegalign
	// AddressingFullalign aligns arrays to their entire size.
	AddressingFullalign
)

func (t AddressingType) EnumType() Type { return AddressingTypeTag }

func (t AddressingType) String() string {
	switch t {
	case AddressingCompact:
		return "compact"
	case AddressingRegalign:
		return "regalign"
	case AddressingFullalign:
		return "fullalign"
	default:
		return "addressingtype(?)"
	}
}

// PrecedenceType describes whether hardware or software writes win.
type PrecedenceType int

const (
	// PrecedenceHW: hardware writes take precedence.
	PrecedenceHW PrecedenceType = iota
	// PrecedenceSW: software writes take precedence.
	PrecedenceSW
)

func (t PrecedenceType) EnumType() Type { return PrecedenceTypeTag }

func (t PrecedenceType) String() string {
	switch t {
	case PrecedenceHW:
		return "hw"
	case PrecedenceSW:
		return "sw"
	default:
		return "precedencetype(?)"
	}
}

// InterruptType describes the edge/level sensitivity of an interrupt field.
type InterruptType int

const (
	// InterruptLevel interrupts while asserted and maintained.
	InterruptLevel InterruptType = iota
	// InterruptPosedge interrupts on a low-to-high transition.
	InterruptPosedge
	// InterruptNegedge interrupts on a high-to-low transition.
	InterruptNegedge
	// InterruptBothedge interrupts on any transition.
	InterruptBothedge
)

func (t InterruptType) EnumType() Type { return InterruptTypeTag }

func (t InterruptType) String() string {
	switch t {
	case InterruptLevel:
		return "level"
	case InterruptPosedge:
		return "posedge"
	case InterruptNegedge:
		return "negedge"
	case InterruptBothedge:
		return "bothedge"
	default:
		return "intrtype(?)"
	}
}

//-----------------------------------------------------------------------------
// Member lookup
//-----------------------------------------------------------------------------

var builtinMembers = map[string]EnumMember{
	"na": AccessNA, "rw": AccessRW, "r": AccessR, "w": AccessW,
	"rw1": AccessRW1, "w1": AccessW1,

	"rclr": OnReadClear, "rset": OnReadSet, "ruser": OnReadUser,

	"woset": OnWriteOneSet, "woclr": OnWriteOneClear, "wot": OnWriteOneToggle,
	"wzs": OnWriteZeroSet, "wzc": OnWriteZeroClear, "wzt": OnWriteZeroToggle,
	"wclr": OnWriteClear, "wset": OnWriteSet, "wuser": OnWriteUser,

	"compact": AddressingCompact, "regalign": AddressingRegalign,
	"fullalign": AddressingFullalign,

	"hw": PrecedenceHW, "sw": PrecedenceSW,

	"level": InterruptLevel, "posedge": InterruptPosedge,
	"negedge": InterruptNegedge, "bothedge": InterruptBothedge,
}

// LookupBuiltinMember resolves a builtin enum member by its keyword. Keywords
// are unique across the builtin domains.
func LookupBuiltinMember(name string) (EnumMember, bool) {
	m, ok := builtinMembers[name]
	return m, ok
}
