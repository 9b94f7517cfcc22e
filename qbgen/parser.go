package qbgen

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// --- Participle grammar structs ---
// These define the entity metadata grammar using struct tags. A metadata
// file holds one or more entity blocks, each listing fields with the
// operations permitted per builder context:
//
//	entity user table app_user {
//	  field id: int64 {
//	    select: where(eq, in)
//	    update: where(eq)
//	    delete: where(eq, in)
//	  }
//	  field name: string {
//	    select: where(eq, like)
//	    update: where(eq), set
//	  }
//	}

// SchemaFile is the top-level grammar: a sequence of entity definitions.
type SchemaFile struct {
	Entities []EntityDef `parser:"@@*"`
}

// EntityDef parses: entity name [table ident] { field* }
type EntityDef struct {
	Name   string     `parser:"'entity' @Ident"`
	Table  string     `parser:"('table' @Ident)?"`
	Fields []FieldDef `parser:"'{' @@* '}'"`
}

// FieldDef parses: field name : type { rule* }
type FieldDef struct {
	Name  string    `parser:"'field' @Ident ':'"`
	Type  string    `parser:"@Ident"`
	Rules []RuleDef `parser:"'{' @@* '}'"`
}

// RuleDef parses one context rule: select|update|delete : clause [, clause]*
type RuleDef struct {
	Context string      `parser:"@('select' | 'update' | 'delete') ':'"`
	Clauses []ClauseDef `parser:"@@ (',' @@)*"`
}

// ClauseDef is one of: where(op, ...) or set.
type ClauseDef struct {
	Where *WhereDef `parser:"  @@"`
	Set   bool      `parser:"| @('set' | 'settable')"`
}

// WhereDef parses: where(op [, op]*)
type WhereDef struct {
	Ops []string `parser:"'where' '(' @Ident (',' @Ident)* ')'"`
}

var dslLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Punct", Pattern: `[{}():,]`},
})

// --- Parser construction and entry points ---

// ParseSchema parses entity metadata text into resolved EntitySpecs.
// Operation names are resolved against the catalog (synonyms collapsed)
// and type constraints checked, so any error here fails generation before
// a builder surface exists.
func ParseSchema(input string) ([]EntitySpec, error) {
	parser, err := participle.Build[SchemaFile](
		participle.Lexer(dslLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("build parser: %w", err)
	}

	ast, err := parser.ParseString("schema.qb", input)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	return convertAST(ast)
}

// ParseSchemaFile reads entity metadata from the specified path and parses it.
func ParseSchemaFile(path string) ([]EntitySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return ParseSchema(string(data))
}

// convertAST converts the participle AST to resolved entity specs.
func convertAST(file *SchemaFile) ([]EntitySpec, error) {
	var specs []EntitySpec
	for _, e := range file.Entities {
		spec, err := convertEntity(&e)
		if err != nil {
			return nil, err
		}
		specs = append(specs, *spec)
	}
	return specs, nil
}

func convertEntity(e *EntityDef) (*EntitySpec, error) {
	spec := &EntitySpec{
		Name:  e.Name,
		Table: e.Table,
	}
	if spec.Table == "" {
		spec.Table = e.Name
	}
	for _, f := range e.Fields {
		fs, err := convertField(e.Name, &f)
		if err != nil {
			return nil, err
		}
		spec.Fields = append(spec.Fields, *fs)
	}
	return spec, nil
}

func convertField(entity string, f *FieldDef) (*FieldSpec, error) {
	ft, ok := ParseFieldType(f.Type)
	if !ok {
		return nil, &UnknownTypeError{Entity: entity, Field: f.Name, Name: f.Type}
	}
	fs := &FieldSpec{Name: f.Name, Type: ft}

	for _, rule := range f.Rules {
		var names []string
		set := false
		for _, c := range rule.Clauses {
			if c.Where != nil {
				names = append(names, c.Where.Ops...)
			}
			if c.Set {
				set = true
			}
		}

		ops, err := resolveOps(entity, f.Name, ft, names)
		if err != nil {
			return nil, err
		}

		switch rule.Context {
		case "select":
			if set {
				return nil, fmt.Errorf("field %s.%s: set is only valid in the update context", entity, f.Name)
			}
			fs.SelectWhere = append(fs.SelectWhere, ops...)
		case "update":
			fs.UpdateWhere = append(fs.UpdateWhere, ops...)
			if set {
				fs.Settable = true
			}
		case "delete":
			if set {
				return nil, fmt.Errorf("field %s.%s: set is only valid in the update context", entity, f.Name)
			}
			fs.DeleteWhere = append(fs.DeleteWhere, ops...)
		}
	}
	return fs, nil
}
