package rdltypes

import "fmt"

// UserEnumDef is a user-defined enumeration declared in source. The
// definition itself is the static type tag for its members, so two members
// are type-compatible only when they come from the same definition.
type UserEnumDef struct {
	Name    string
	Members []*UserEnumMember
}

// UserEnumMember is one entry of a user-defined enumeration. DisplayName and
// Desc carry the entry's name/desc properties, if assigned.
type UserEnumMember struct {
	Def         *UserEnumDef
	Name        string
	Value       int64
	DisplayName string
	Desc        string
}

// NewUserEnumDef builds a definition and links every member back to it.
// Member names must be unique within the definition.
func NewUserEnumDef(name string, members []*UserEnumMember) (*UserEnumDef, error) {
	def := &UserEnumDef{Name: name, Members: members}
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m == nil || m.Name == "" {
			return nil, fmt.Errorf("rdltypes: enum %s: empty member", name)
		}
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("rdltypes: enum %s: duplicate member %s", name, m.Name)
		}
		seen[m.Name] = struct{}{}
		m.Def = def
	}
	return def, nil
}

func (d *UserEnumDef) TypeName() string { return d.Name }

// Member resolves a member by name.
func (d *UserEnumDef) Member(name string) (*UserEnumMember, bool) {
	for _, m := range d.Members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

func (m *UserEnumMember) EnumType() Type { return m.Def }

func (m *UserEnumMember) String() string {
	if m.Def != nil {
		return m.Def.Name + "::" + m.Name
	}
	return m.Name
}
