// Package guard is the runtime support package for builders generated by
// qbgen. It provides the operation catalog, the per-builder state that
// enforces the WHERE/SET safety invariants, the backend-agnostic statement
// representation, and the params snapshot types generated code leans on.
package guard

// Op identifies a comparison, pattern, membership, or range operation from
// the fixed operation catalog.
type Op string

const (
	OpEq      Op = "eq"
	OpNe      Op = "ne"
	OpLt      Op = "lt"
	OpLte     Op = "lte"
	OpGt      Op = "gt"
	OpGte     Op = "gte"
	OpLike    Op = "like"
	OpILike   Op = "ilike"
	OpIn      Op = "in"
	OpBetween Op = "between"

	// OpSet marks mutation assignments in condition logs. It is not a
	// filtering operation and has no catalog entry.
	OpSet Op = "set"
)

// Shape describes how an operation stores and logs its supplied values.
type Shape int

const (
	// ShapeSingle operations take one value (eq, ne, lt, ...).
	ShapeSingle Shape = iota
	// ShapeList operations take a sequence of values (in).
	ShapeList
	// ShapeRange operations take inclusive low and high bounds (between).
	ShapeRange
)

// OpInfo is one row of the operation catalog.
type OpInfo struct {
	// Name is the canonical operation name.
	Name Op
	// Arity is the number of argument slots the generated method accepts.
	// A list counts as one slot.
	Arity int
	// Shape is the value shape stored and logged for the operation.
	Shape Shape
	// NeedsOrdered marks operations that require a totally ordered field type.
	NeedsOrdered bool
	// NeedsText marks operations that only apply to text fields.
	NeedsText bool
	// NeedsCapability marks operations that require an optional backend
	// capability at execution time (case-insensitive matching).
	NeedsCapability bool
}

// catalog is the fixed operation table. Generation resolves annotation
// names against it; nothing is added at runtime.
var catalog = map[Op]OpInfo{
	OpEq:      {Name: OpEq, Arity: 1, Shape: ShapeSingle},
	OpNe:      {Name: OpNe, Arity: 1, Shape: ShapeSingle},
	OpLt:      {Name: OpLt, Arity: 1, Shape: ShapeSingle, NeedsOrdered: true},
	OpLte:     {Name: OpLte, Arity: 1, Shape: ShapeSingle, NeedsOrdered: true},
	OpGt:      {Name: OpGt, Arity: 1, Shape: ShapeSingle, NeedsOrdered: true},
	OpGte:     {Name: OpGte, Arity: 1, Shape: ShapeSingle, NeedsOrdered: true},
	OpLike:    {Name: OpLike, Arity: 1, Shape: ShapeSingle, NeedsText: true},
	OpILike:   {Name: OpILike, Arity: 1, Shape: ShapeSingle, NeedsText: true, NeedsCapability: true},
	OpIn:      {Name: OpIn, Arity: 1, Shape: ShapeList},
	OpBetween: {Name: OpBetween, Arity: 2, Shape: ShapeRange, NeedsOrdered: true},
}

// opSynonyms maps alternate annotation spellings to canonical operations.
// Synonyms collapse before generation, so the generator and the generated
// surface only ever see canonical names.
var opSynonyms = map[string]Op{
	"isin": OpIn,
}

// ParseOp resolves an operation name, including synonyms, to its canonical
// operation. The second result is false for names not in the catalog.
func ParseOp(name string) (Op, bool) {
	if op, ok := opSynonyms[name]; ok {
		return op, true
	}
	if _, ok := catalog[Op(name)]; ok {
		return Op(name), true
	}
	return "", false
}

// Info returns the catalog entry for a canonical operation.
func (o Op) Info() (OpInfo, bool) {
	info, ok := catalog[o]
	return info, ok
}

// Valid reports whether o is a canonical filtering operation.
func (o Op) Valid() bool {
	_, ok := catalog[o]
	return ok
}
