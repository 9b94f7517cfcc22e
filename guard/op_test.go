package guard

import "testing"

func TestParseOpCanonical(t *testing.T) {
	cases := []struct {
		name string
		want Op
	}{
		{"eq", OpEq},
		{"ne", OpNe},
		{"lt", OpLt},
		{"lte", OpLte},
		{"gt", OpGt},
		{"gte", OpGte},
		{"like", OpLike},
		{"ilike", OpILike},
		{"in", OpIn},
		{"between", OpBetween},
	}
	for _, c := range cases {
		op, ok := ParseOp(c.name)
		if !ok {
			t.Errorf("ParseOp(%q) not found", c.name)
			continue
		}
		if op != c.want {
			t.Errorf("ParseOp(%q) = %q, want %q", c.name, op, c.want)
		}
	}
}

func TestParseOpSynonym(t *testing.T) {
	op, ok := ParseOp("isin")
	if !ok {
		t.Fatal("ParseOp(isin) not found")
	}
	if op != OpIn {
		t.Errorf("ParseOp(isin) = %q, want %q", op, OpIn)
	}
}

func TestParseOpUnknown(t *testing.T) {
	for _, name := range []string{"contains", "EQ", "not_in", "", "set"} {
		if _, ok := ParseOp(name); ok {
			t.Errorf("ParseOp(%q) should not resolve", name)
		}
	}
}

func TestCatalogShapes(t *testing.T) {
	in, _ := OpIn.Info()
	if in.Shape != ShapeList {
		t.Errorf("in shape = %v, want ShapeList", in.Shape)
	}
	between, _ := OpBetween.Info()
	if between.Shape != ShapeRange || between.Arity != 2 {
		t.Errorf("between = %+v, want range shape with arity 2", between)
	}
	if !between.NeedsOrdered {
		t.Error("between should require an ordered field type")
	}
	like, _ := OpLike.Info()
	if !like.NeedsText {
		t.Error("like should require a text field type")
	}
	ilike, _ := OpILike.Info()
	if !ilike.NeedsCapability {
		t.Error("ilike should be marked as needing a backend capability")
	}
}

func TestOpSetNotInCatalog(t *testing.T) {
	if OpSet.Valid() {
		t.Error("set is a log marker, not a filtering operation")
	}
}
