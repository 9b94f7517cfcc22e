package qbgen

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/guardql/guardql/guard"
)

type taggedUser struct {
	ID       int64     `qb:"select(eq,in);update(eq);delete(eq,in)"`
	Name     string    `qb:"select(eq,like);update(eq);set"`
	Age      int64     `qb:"update(between);set;name=age_years"`
	JoinedAt time.Time `qb:"select(between)"`
	internal string
	Plain    string
}

func TestFromStruct(t *testing.T) {
	spec, err := FromStruct(taggedUser{})
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}
	if spec.Name != "tagged_user" || spec.Table != "tagged_user" {
		t.Errorf("entity header = %q table %q", spec.Name, spec.Table)
	}
	if len(spec.Fields) != 4 {
		t.Fatalf("parsed %d fields, want 4 (untagged skipped)", len(spec.Fields))
	}

	id := spec.Fields[0]
	if id.Name != "id" || id.Type != TypeInt {
		t.Errorf("id = %q %v", id.Name, id.Type)
	}
	if !reflect.DeepEqual(id.SelectWhere, []guard.Op{guard.OpEq, guard.OpIn}) {
		t.Errorf("id select ops = %v", id.SelectWhere)
	}

	name := spec.Fields[1]
	if !name.Settable || name.Type != TypeString {
		t.Errorf("name = %+v", name)
	}

	age := spec.Fields[2]
	if age.Name != "age_years" {
		t.Errorf("age name = %q, want override age_years", age.Name)
	}
	if !reflect.DeepEqual(age.UpdateWhere, []guard.Op{guard.OpBetween}) {
		t.Errorf("age update ops = %v", age.UpdateWhere)
	}

	joined := spec.Fields[3]
	if joined.Name != "joined_at" || joined.Type != TypeTime {
		t.Errorf("joined = %q %v", joined.Name, joined.Type)
	}
}

func TestFromStructPointer(t *testing.T) {
	spec, err := FromStruct(&taggedUser{})
	if err != nil {
		t.Fatalf("FromStruct(ptr): %v", err)
	}
	if spec.Name != "tagged_user" {
		t.Errorf("entity name = %q", spec.Name)
	}
}

func TestFromStructMatchesSchema(t *testing.T) {
	fromTags, err := FromStruct(struct {
		ID   int64  `qb:"select(eq,in)"`
		Name string `qb:"update(eq);set"`
	}{})
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}

	fromSchema, err := ParseSchema(`
entity probe {
  field id: int64 {
    select: where(eq, in)
  }
  field name: string {
    update: where(eq), set
  }
}
`)
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}

	// Entity names differ; the resolved field shapes must not.
	if !reflect.DeepEqual(fromTags.Fields, fromSchema[0].Fields) {
		t.Errorf("tag fields %+v != schema fields %+v", fromTags.Fields, fromSchema[0].Fields)
	}
}

type renamedModel struct {
	ID int64 `qb:"select(eq)"`
}

func (renamedModel) TableName() string { return "legacy_models" }

func TestFromStructTableNameOverride(t *testing.T) {
	spec, err := FromStruct(renamedModel{})
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}
	if spec.Name != "renamed_model" {
		t.Errorf("entity name = %q", spec.Name)
	}
	if spec.Table != "legacy_models" {
		t.Errorf("table = %q, want legacy_models", spec.Table)
	}
}

func TestFromStructRejectsNonStruct(t *testing.T) {
	if _, err := FromStruct(42); err == nil {
		t.Fatal("expected error for non-struct input")
	}
}

func TestFromStructUnsupportedFieldType(t *testing.T) {
	_, err := FromStruct(struct {
		Blob []byte `qb:"select(eq)"`
	}{})
	if err == nil {
		t.Fatal("expected error for []byte field")
	}
}

func TestFromStructBadTag(t *testing.T) {
	_, err := FromStruct(struct {
		ID int64 `qb:"select(eq"`
	}{})
	if err == nil {
		t.Fatal("expected error for malformed tag")
	}
}

func TestFromStructUnknownOp(t *testing.T) {
	_, err := FromStruct(struct {
		ID int64 `qb:"select(regex)"`
	}{})
	var opErr *UnknownOpError
	if !errors.As(err, &opErr) {
		t.Fatalf("err = %v, want UnknownOpError", err)
	}
}
