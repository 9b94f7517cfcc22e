package qbgen

import "testing"

func TestParseFieldType(t *testing.T) {
	tests := []struct {
		name string
		want FieldType
		ok   bool
	}{
		{"string", TypeString, true},
		{"int", TypeInt, true},
		{"integer", TypeInt, true},
		{"int64", TypeInt, true},
		{"double", TypeFloat, true},
		{"boolean", TypeBool, true},
		{"datetime", TypeTime, true},
		{"bytes", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFieldType(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFieldType(%q) = %v, %v", tt.name, got, ok)
		}
	}
}

func TestFieldTypeGoType(t *testing.T) {
	if got := TypeTime.GoType(); got != "time.Time" {
		t.Errorf("TypeTime.GoType() = %q", got)
	}
	if got := TypeInt.GoType(); got != "int64" {
		t.Errorf("TypeInt.GoType() = %q", got)
	}
}

func TestFieldTypeConstraints(t *testing.T) {
	if TypeBool.Ordered() {
		t.Error("bool must not be ordered")
	}
	if !TypeTime.Ordered() {
		t.Error("time must be ordered")
	}
	if TypeInt.Text() || !TypeString.Text() {
		t.Error("only string is a text type")
	}
}
