// Package qbgen generates guarded query builders from declarative entity
// metadata. Metadata arrives either as a DSL file or as qb struct tags on
// Go model types; both front ends resolve into the same EntitySpec shape
// consumed by Render.
package qbgen

import "github.com/guardql/guardql/guard"

// FieldType is the value type of an entity field.
type FieldType string

const (
	// TypeString is a text field.
	TypeString FieldType = "string"
	// TypeInt is a 64-bit integer field.
	TypeInt FieldType = "int64"
	// TypeFloat is a 64-bit float field.
	TypeFloat FieldType = "float64"
	// TypeBool is a boolean field.
	TypeBool FieldType = "bool"
	// TypeTime is a timestamp field.
	TypeTime FieldType = "time"
)

// GoType returns the Go type generated storage and methods use.
func (t FieldType) GoType() string {
	if t == TypeTime {
		return "time.Time"
	}
	return string(t)
}

// Ordered reports whether the type carries a total order, as required by
// lt/lte/gt/gte/between.
func (t FieldType) Ordered() bool {
	return t != TypeBool
}

// Text reports whether the type is text-like, as required by like/ilike.
func (t FieldType) Text() bool {
	return t == TypeString
}

// fieldTypes resolves declaration type names, including common aliases.
var fieldTypes = map[string]FieldType{
	"string":   TypeString,
	"int":      TypeInt,
	"int64":    TypeInt,
	"integer":  TypeInt,
	"float64":  TypeFloat,
	"double":   TypeFloat,
	"bool":     TypeBool,
	"boolean":  TypeBool,
	"time":     TypeTime,
	"datetime": TypeTime,
}

// ParseFieldType resolves a declared type name to a FieldType.
func ParseFieldType(name string) (FieldType, bool) {
	t, ok := fieldTypes[name]
	return t, ok
}

// FieldSpec describes one entity field: its value type, the operations it
// permits per builder context, and whether updates may assign to it.
// Operation slices hold canonical catalog operations in declaration order.
type FieldSpec struct {
	// Name is the field's storage column name.
	Name string
	// Type is the field's value type.
	Type FieldType
	// SelectWhere lists operations permitted in selection filters.
	SelectWhere []guard.Op
	// UpdateWhere lists operations permitted in update filters.
	UpdateWhere []guard.Op
	// DeleteWhere lists operations permitted in deletion filters.
	DeleteWhere []guard.Op
	// Settable marks the field as a SET target in updates.
	Settable bool
}

// EntitySpec describes one entity: its name, storage table, and fields.
type EntitySpec struct {
	// Name is the entity name as declared (snake or kebab case).
	Name string
	// Table is the storage table name; defaults to Name.
	Table string
	// Fields lists the entity's fields in declaration order.
	Fields []FieldSpec
}

// resolveOps resolves raw operation names against the catalog for one
// field and context. Synonyms collapse to their canonical operation and
// duplicates are dropped, keeping first-occurrence order, so `in` and
// `isin` on the same field yield a single generated method. Unknown
// names, ordering operations on unordered types, and pattern operations
// on non-text types are generation-time errors that fail the entity.
func resolveOps(entity, field string, ft FieldType, names []string) ([]guard.Op, error) {
	var ops []guard.Op
	seen := make(map[guard.Op]bool)
	for _, name := range names {
		op, ok := guard.ParseOp(name)
		if !ok {
			return nil, &UnknownOpError{Entity: entity, Field: field, Name: name}
		}
		info, _ := op.Info()
		if info.NeedsOrdered && !ft.Ordered() {
			return nil, &UnorderedTypeError{Entity: entity, Field: field, Op: op, Type: ft}
		}
		if info.NeedsText && !ft.Text() {
			return nil, &TextOpError{Entity: entity, Field: field, Op: op, Type: ft}
		}
		if seen[op] {
			continue
		}
		seen[op] = true
		ops = append(ops, op)
	}
	return ops, nil
}
