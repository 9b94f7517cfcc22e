package qbgen

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// FromStruct builds an EntitySpec from a Go model type annotated with qb
// struct tags. It is the second metadata front end, for projects that keep
// entity definitions next to their model structs instead of a schema file:
//
//	type User struct {
//		ID   int64  `qb:"select(eq,in);update(eq);delete(eq,in)"`
//		Name string `qb:"select(eq,like);update(eq);set"`
//		Age  int64  `qb:"update(between);set;name=age_years"`
//	}
//
// Untagged fields are skipped. Field names default to the snake_case of
// the Go field name; the name= option overrides that. The table name
// defaults to the snake_case of the struct name; a model with a
// TableName() string method overrides it.
func FromStruct(model any) (*EntitySpec, error) {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("qb metadata requires a struct type, got %v", reflect.TypeOf(model))
	}

	spec := &EntitySpec{
		Name:  ToSnakeCase(t.Name()),
		Table: ToSnakeCase(t.Name()),
	}
	if tn, ok := model.(interface{ TableName() string }); ok {
		spec.Table = tn.TableName()
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("qb")
		if !ok || tag == "" || tag == "-" {
			continue
		}
		fs, err := fieldFromTag(spec.Name, sf, tag)
		if err != nil {
			return nil, err
		}
		spec.Fields = append(spec.Fields, *fs)
	}
	return spec, nil
}

// fieldFromTag parses one qb tag into a resolved FieldSpec. Tag segments
// are semicolon separated: select(...), update(...), delete(...) list
// filter operations per context, set marks the field assignable, and
// name= overrides the storage column name.
func fieldFromTag(entity string, sf reflect.StructField, tag string) (*FieldSpec, error) {
	ft, err := fieldTypeOf(sf.Type)
	if err != nil {
		return nil, fmt.Errorf("field %s.%s: %w", entity, sf.Name, err)
	}
	fs := &FieldSpec{Name: ToSnakeCase(sf.Name), Type: ft}

	for _, seg := range strings.Split(tag, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		switch {
		case seg == "set" || seg == "settable":
			fs.Settable = true
		case strings.HasPrefix(seg, "name="):
			fs.Name = strings.TrimPrefix(seg, "name=")
		default:
			context, names, err := splitTagContext(seg)
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", entity, sf.Name, err)
			}
			ops, err := resolveOps(entity, fs.Name, ft, names)
			if err != nil {
				return nil, err
			}
			switch context {
			case "select":
				fs.SelectWhere = append(fs.SelectWhere, ops...)
			case "update":
				fs.UpdateWhere = append(fs.UpdateWhere, ops...)
			case "delete":
				fs.DeleteWhere = append(fs.DeleteWhere, ops...)
			default:
				return nil, fmt.Errorf("field %s.%s: unknown tag segment %q", entity, sf.Name, seg)
			}
		}
	}
	return fs, nil
}

// splitTagContext splits "select(eq,in)" into the context name and its
// operation names.
func splitTagContext(seg string) (string, []string, error) {
	open := strings.IndexByte(seg, '(')
	if open < 0 || !strings.HasSuffix(seg, ")") {
		return "", nil, fmt.Errorf("malformed tag segment %q", seg)
	}
	context := seg[:open]
	var names []string
	for _, name := range strings.Split(seg[open+1:len(seg)-1], ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return context, names, nil
}

var timeType = reflect.TypeOf(time.Time{})

// fieldTypeOf maps a Go struct field type to a metadata FieldType.
func fieldTypeOf(t reflect.Type) (FieldType, error) {
	if t == timeType {
		return TypeTime, nil
	}
	switch t.Kind() {
	case reflect.String:
		return TypeString, nil
	case reflect.Int, reflect.Int32, reflect.Int64:
		return TypeInt, nil
	case reflect.Float32, reflect.Float64:
		return TypeFloat, nil
	case reflect.Bool:
		return TypeBool, nil
	}
	return "", fmt.Errorf("unsupported field type %s", t)
}
