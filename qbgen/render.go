package qbgen

import (
	"bytes"
	"go/format"
	"io"
	"text/template"
	"unicode"

	"github.com/guardql/guardql/guard"
)

// RenderConfig specifies the settings for generating Go builder code from
// entity metadata.
type RenderConfig struct {
	// PackageName is the name of the Go package for the generated code.
	PackageName string
	// GuardImport is the import path of the guard runtime package.
	GuardImport string
	// UseAcronyms, if true, applies Go acronym naming conventions (e.g.,
	// 'ID' instead of 'Id') to generated method names.
	UseAcronyms bool
}

// DefaultConfig returns a standard RenderConfig with sensible defaults.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		PackageName: "builders",
		GuardImport: "github.com/guardql/guardql/guard",
		UseAcronyms: true,
	}
}

// Render writes generated builder code for the given entities to w.
// Output is gofmt-formatted and deterministic: builders follow entity
// declaration order, methods follow field and operation declaration
// order, so regenerating from unchanged metadata never dirties the tree.
//
// For each entity three builders are emitted (select, update, delete),
// each paired with a params snapshot type. Every builder finalizes
// through the guard runtime, so the generated surface cannot produce an
// unfiltered statement.
func Render(w io.Writer, entities []EntitySpec, cfg RenderConfig) error {
	if cfg.PackageName == "" {
		cfg.PackageName = "builders"
	}
	if cfg.GuardImport == "" {
		cfg.GuardImport = "github.com/guardql/guardql/guard"
	}

	data := &renderData{
		PackageName: cfg.PackageName,
		GuardImport: cfg.GuardImport,
	}
	for _, e := range entities {
		data.Builders = append(data.Builders, buildBuilderCtx(e, guard.KindSelect, cfg))
		data.Builders = append(data.Builders, buildBuilderCtx(e, guard.KindUpdate, cfg))
		data.Builders = append(data.Builders, buildBuilderCtx(e, guard.KindDelete, cfg))
		if !data.NeedsTime {
			data.NeedsTime = entityNeedsTime(e)
		}
	}

	var buf bytes.Buffer
	if err := builderTemplate.Execute(&buf, data); err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Emit the raw source so the caller can inspect what failed to
		// parse, rather than nothing at all.
		src = buf.Bytes()
	}
	_, werr := w.Write(src)
	return werr
}

// --- Template context types ---

type renderData struct {
	PackageName string
	GuardImport string
	NeedsTime   bool
	Builders    []builderCtx
}

type builderCtx struct {
	GoName     string // e.g. "UserSelectBuilder"
	ParamsName string // e.g. "UserSelectParams"
	CtorName   string // e.g. "SelectUser"
	EntityName string // e.g. "user"
	Table      string
	KindConst  string // e.g. "KindSelect"
	KindWord   string // e.g. "selection"
	IsSelect   bool
	IsUpdate   bool
	Conds      []condCtx
	Sets       []setCtx
}

type condCtx struct {
	MethodName string // e.g. "IDEq"
	StoreField string // e.g. "idEqVal"
	Field      string // column name
	GoType     string
	OpConst    string // e.g. "OpEq"
	OpWord     string // catalog name, for doc comments
	IsList     bool
	IsRange    bool
}

type setCtx struct {
	MethodName string // e.g. "SetName"
	StoreField string // e.g. "setNameVal"
	Field      string
	GoType     string
}

// --- Context builders ---

func buildBuilderCtx(e EntitySpec, kind guard.Kind, cfg RenderConfig) builderCtx {
	entityGo := goTypeName(e.Name, cfg)
	kindGo := goTypeName(kind.String(), cfg)

	ctx := builderCtx{
		GoName:     entityGo + kindGo + "Builder",
		ParamsName: entityGo + kindGo + "Params",
		CtorName:   kindGo + entityGo,
		EntityName: e.Name,
		Table:      e.Table,
		IsSelect:   kind == guard.KindSelect,
		IsUpdate:   kind == guard.KindUpdate,
	}
	switch kind {
	case guard.KindSelect:
		ctx.KindConst = "KindSelect"
		ctx.KindWord = "selection"
	case guard.KindUpdate:
		ctx.KindConst = "KindUpdate"
		ctx.KindWord = "update"
	case guard.KindDelete:
		ctx.KindConst = "KindDelete"
		ctx.KindWord = "deletion"
	}

	for _, f := range e.Fields {
		for _, op := range opsFor(f, kind) {
			ctx.Conds = append(ctx.Conds, buildCondCtx(f, op, cfg))
		}
		if kind == guard.KindUpdate && f.Settable {
			ctx.Sets = append(ctx.Sets, setCtx{
				MethodName: "Set" + goTypeName(f.Name, cfg),
				StoreField: storeName("set_"+f.Name, ""),
				Field:      f.Name,
				GoType:     f.Type.GoType(),
			})
		}
	}
	return ctx
}

func buildCondCtx(f FieldSpec, op guard.Op, cfg RenderConfig) condCtx {
	info, _ := op.Info()
	return condCtx{
		MethodName: goTypeName(f.Name, cfg) + OpSuffix(op),
		StoreField: storeName(f.Name, OpSuffix(op)),
		Field:      f.Name,
		GoType:     f.Type.GoType(),
		OpConst:    "Op" + OpSuffix(op),
		OpWord:     string(op),
		IsList:     info.Shape == guard.ShapeList,
		IsRange:    info.Shape == guard.ShapeRange,
	}
}

func opsFor(f FieldSpec, kind guard.Kind) []guard.Op {
	switch kind {
	case guard.KindUpdate:
		return f.UpdateWhere
	case guard.KindDelete:
		return f.DeleteWhere
	default:
		return f.SelectWhere
	}
}

// storeName builds an unexported storage field name, e.g. "id" + "Eq" →
// "idEqVal". Plain PascalCase is used so acronym settings cannot produce
// names like "iDEqVal".
func storeName(field, suffix string) string {
	return lowerFirst(ToPascalCase(field)) + suffix + "Val"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func goTypeName(name string, cfg RenderConfig) string {
	if cfg.UseAcronyms {
		return ToPascalCaseAcronyms(name)
	}
	return ToPascalCase(name)
}

func entityNeedsTime(e EntitySpec) bool {
	for _, f := range e.Fields {
		if f.Type != TypeTime {
			continue
		}
		if len(f.SelectWhere) > 0 || len(f.UpdateWhere) > 0 || len(f.DeleteWhere) > 0 || f.Settable {
			return true
		}
	}
	return false
}

// --- Go template ---

var builderTemplate = template.Must(template.New("builders").Parse(`// Code generated by qbgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{- if .NeedsTime}}
	"time"
{{end}}
	"{{.GuardImport}}"
)
{{range $b := .Builders}}
// {{.GoName}} builds a guarded {{.KindWord}} statement for the
// {{.EntityName}} entity. Zero value is not usable; start with {{.CtorName}}.
type {{.GoName}} struct {
	state guard.State
{{- range .Conds}}
{{- if .IsList}}
	{{.StoreField}} []{{.GoType}}
{{- else if .IsRange}}
	{{.StoreField}} *[2]{{.GoType}}
{{- else}}
	{{.StoreField}} *{{.GoType}}
{{- end}}
{{- end}}
{{- range .Sets}}
	{{.StoreField}} *{{.GoType}}
{{- end}}
{{- if .IsSelect}}
	order  []guard.OrderBy
	limit  int
	offset int
{{- end}}
}

// {{.CtorName}} starts a guarded {{.KindWord}} over the {{.Table}} table.
func {{.CtorName}}() *{{.GoName}} {
	return &{{.GoName}}{state: guard.NewState(guard.{{.KindConst}})}
}
{{range .Conds}}
// {{.MethodName}} filters on {{.Field}} {{.OpWord}}. Calling it again
// replaces the stored value; every call is recorded in the condition log.
{{- if .IsList}}
func (b *{{$b.GoName}}) {{.MethodName}}(vs []{{.GoType}}) *{{$b.GoName}} {
	if vs == nil {
		vs = []{{.GoType}}{}
	}
	b.{{.StoreField}} = vs
	b.state.Where(guard.WhereParam{Field: "{{.Field}}", Op: guard.{{.OpConst}}, Value: guard.List(vs)})
	return b
}
{{- else if .IsRange}}
func (b *{{$b.GoName}}) {{.MethodName}}(lo, hi {{.GoType}}) *{{$b.GoName}} {
	b.{{.StoreField}} = &[2]{{.GoType}}{lo, hi}
	b.state.Where(guard.WhereParam{Field: "{{.Field}}", Op: guard.{{.OpConst}}, Value: guard.Range(lo, hi)})
	return b
}
{{- else}}
func (b *{{$b.GoName}}) {{.MethodName}}(v {{.GoType}}) *{{$b.GoName}} {
	b.{{.StoreField}} = &v
	b.state.Where(guard.WhereParam{Field: "{{.Field}}", Op: guard.{{.OpConst}}, Value: guard.Single(v)})
	return b
}
{{- end}}
{{end}}
{{- range .Sets}}
// {{.MethodName}} assigns a new value to {{.Field}}.
func (b *{{$b.GoName}}) {{.MethodName}}(v {{.GoType}}) *{{$b.GoName}} {
	b.{{.StoreField}} = &v
	b.state.Set(guard.WhereParam{Field: "{{.Field}}", Op: guard.OpSet, Value: guard.Single(v)})
	return b
}
{{end}}
{{- if .IsSelect}}
// OrderAsc sorts results by the given column, ascending.
func (b *{{.GoName}}) OrderAsc(column string) *{{.GoName}} {
	b.order = append(b.order, guard.OrderBy{Field: column})
	return b
}

// OrderDesc sorts results by the given column, descending.
func (b *{{.GoName}}) OrderDesc(column string) *{{.GoName}} {
	b.order = append(b.order, guard.OrderBy{Field: column, Desc: true})
	return b
}

// Limit caps the number of returned rows.
func (b *{{.GoName}}) Limit(n int) *{{.GoName}} {
	b.limit = n
	return b
}

// Offset skips the first n rows.
func (b *{{.GoName}}) Offset(n int) *{{.GoName}} {
	b.offset = n
	return b
}
{{end}}
// Build finalizes the builder and returns the statement. The builder is
// consumed: later mutations are inert and a second Build fails.
func (b *{{.GoName}}) Build() (*guard.Statement, error) {
	st, _, err := b.BuildWithParams()
	return st, err
}

// BuildWithParams finalizes the builder and returns the statement along
// with a snapshot of the supplied parameters.
func (b *{{.GoName}}) BuildWithParams() (*guard.Statement, *{{.ParamsName}}, error) {
	base, err := b.state.Finalize()
	if err != nil {
		return nil, nil, err
	}
	st := guard.NewStatement(guard.{{.KindConst}}, "{{.Table}}")
{{- range .Conds}}
{{- if .IsList}}
	if b.{{.StoreField}} != nil {
		st.Where("{{.Field}}", guard.{{.OpConst}}, guard.Args(b.{{.StoreField}})...)
	}
{{- else if .IsRange}}
	if b.{{.StoreField}} != nil {
		st.Where("{{.Field}}", guard.{{.OpConst}}, b.{{.StoreField}}[0], b.{{.StoreField}}[1])
	}
{{- else}}
	if b.{{.StoreField}} != nil {
		st.Where("{{.Field}}", guard.{{.OpConst}}, *b.{{.StoreField}})
	}
{{- end}}
{{- end}}
{{- range .Sets}}
	if b.{{.StoreField}} != nil {
		st.Set("{{.Field}}", *b.{{.StoreField}})
	}
{{- end}}
{{- if .IsSelect}}
	st.Order = b.order
	st.Limit = b.limit
	st.Offset = b.offset
{{- end}}
	params := &{{.ParamsName}}{
		Params: base,
{{- range .Conds}}
		{{.StoreField}}: b.{{.StoreField}},
{{- end}}
{{- range .Sets}}
		{{.StoreField}}: b.{{.StoreField}},
{{- end}}
	}
	return st, params, nil
}

// {{.ParamsName}} is the parameter snapshot of a finalized {{.GoName}}.
type {{.ParamsName}} struct {
	guard.Params
{{- range .Conds}}
{{- if .IsList}}
	{{.StoreField}} []{{.GoType}}
{{- else if .IsRange}}
	{{.StoreField}} *[2]{{.GoType}}
{{- else}}
	{{.StoreField}} *{{.GoType}}
{{- end}}
{{- end}}
{{- range .Sets}}
	{{.StoreField}} *{{.GoType}}
{{- end}}
}
{{range .Conds}}
// Is{{.MethodName}} reports whether the {{.Field}} {{.OpWord}} condition was set.
func (p *{{$b.ParamsName}}) Is{{.MethodName}}() bool {
	return p.{{.StoreField}} != nil
}

{{- if .IsList}}
// Get{{.MethodName}} returns the {{.Field}} {{.OpWord}} values, if set.
func (p *{{$b.ParamsName}}) Get{{.MethodName}}() ([]{{.GoType}}, bool) {
	if p.{{.StoreField}} == nil {
		return nil, false
	}
	return p.{{.StoreField}}, true
}
{{- else if .IsRange}}
// Get{{.MethodName}} returns the {{.Field}} {{.OpWord}} bounds, if set.
func (p *{{$b.ParamsName}}) Get{{.MethodName}}() ({{.GoType}}, {{.GoType}}, bool) {
	if p.{{.StoreField}} == nil {
		var z {{.GoType}}
		return z, z, false
	}
	return p.{{.StoreField}}[0], p.{{.StoreField}}[1], true
}
{{- else}}
// Get{{.MethodName}} returns the {{.Field}} {{.OpWord}} value, if set.
func (p *{{$b.ParamsName}}) Get{{.MethodName}}() ({{.GoType}}, bool) {
	if p.{{.StoreField}} == nil {
		var z {{.GoType}}
		return z, false
	}
	return *p.{{.StoreField}}, true
}
{{- end}}
{{end}}
{{- range .Sets}}
// Is{{.MethodName}} reports whether a new {{.Field}} value was assigned.
func (p *{{$b.ParamsName}}) Is{{.MethodName}}() bool {
	return p.{{.StoreField}} != nil
}

// Get{{.MethodName}} returns the assigned {{.Field}} value, if set.
func (p *{{$b.ParamsName}}) Get{{.MethodName}}() ({{.GoType}}, bool) {
	if p.{{.StoreField}} == nil {
		var z {{.GoType}}
		return z, false
	}
	return *p.{{.StoreField}}, true
}
{{end}}
{{- end}}`))
