package rdltypes

import "testing"

func TestSameType(t *testing.T) {
	intArray := &ArrayType{Element: LongintType}
	cases := []struct {
		name string
		a, b Type
		want bool
	}{
		{"primitive_equal", LongintType, LongintType, true},
		{"primitive_distinct", LongintType, BitType, false},
		{"enum_tag_equal", AccessTypeTag, AccessTypeTag, true},
		{"enum_tag_distinct", AccessTypeTag, OnReadTypeTag, false},
		{"array_structural", intArray, &ArrayType{Element: LongintType}, true},
		{"array_element_mismatch", intArray, &ArrayType{Element: StringType}, false},
		{"array_vs_scalar", intArray, LongintType, false},
		{"scalar_vs_array", StringType, &ArrayType{Element: StringType}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameType(tc.a, tc.b); got != tc.want {
				t.Fatalf("SameType(%s, %s) = %v, expected %v", tc.a.TypeName(), tc.b.TypeName(), got, tc.want)
			}
		})
	}
}

func TestBuiltinMemberTyping(t *testing.T) {
	cases := []struct {
		member EnumMember
		tag    Type
		text   string
	}{
		{AccessRW, AccessTypeTag, "rw"},
		{OnReadClear, OnReadTypeTag, "rclr"},
		{OnWriteOneSet, OnWriteTypeTag, "woset"},
		{AddressingRegalign, AddressingTypeTag, "regalign"},
		{PrecedenceSW, PrecedenceTypeTag, "sw"},
		{InterruptPosedge, InterruptTypeTag, "posedge"},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			if tc.member.EnumType() != tc.tag {
				t.Fatalf("expected %s to be tagged %s", tc.member, tc.tag.TypeName())
			}
			if tc.member.String() != tc.text {
				t.Fatalf("expected keyword %q, got %q", tc.text, tc.member.String())
			}
		})
	}
}

func TestLookupBuiltinMember(t *testing.T) {
	m, ok := LookupBuiltinMember("wuser")
	if !ok || m != OnWriteUser {
		t.Fatalf("expected wuser to resolve, got %v (%v)", m, ok)
	}
	if _, ok := LookupBuiltinMember("nonesuch"); ok {
		t.Fatalf("expected unknown keyword to miss")
	}
}

func TestUserEnumDef(t *testing.T) {
	def, err := NewUserEnumDef("color_e", []*UserEnumMember{
		{Name: "red", Value: 1, DisplayName: "Red"},
		{Name: "green", Value: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	red, ok := def.Member("red")
	if !ok {
		t.Fatalf("expected member lookup to succeed")
	}
	if red.EnumType() != Type(def) {
		t.Fatalf("expected the definition to be the member's type tag")
	}
	if red.String() != "color_e::red" {
		t.Fatalf("unexpected member formatting %q", red.String())
	}

	other, err := NewUserEnumDef("color_e", []*UserEnumMember{{Name: "red", Value: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if SameType(def, other) {
		t.Fatalf("distinct definitions must be distinct types even with equal names")
	}
}

func TestUserEnumDefRejectsDuplicates(t *testing.T) {
	_, err := NewUserEnumDef("dup_e", []*UserEnumMember{
		{Name: "a", Value: 0},
		{Name: "a", Value: 1},
	})
	if err == nil {
		t.Fatalf("expected duplicate members to be rejected")
	}
}
