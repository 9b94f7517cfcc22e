package guard

import "testing"

func TestStatementWireRoundtrip(t *testing.T) {
	st := NewStatement(KindUpdate, "user")
	st.Set("name", "bar")
	st.Where("id", OpEq, int64(42))
	st.Where("age", OpBetween, int64(1), int64(99))

	data, err := EncodeStatement(st)
	if err != nil {
		t.Fatalf("EncodeStatement: %v", err)
	}
	got, err := DecodeStatement(data)
	if err != nil {
		t.Fatalf("DecodeStatement: %v", err)
	}

	if got.Kind != KindUpdate || got.Table != "user" {
		t.Errorf("decoded header = %v %q", got.Kind, got.Table)
	}
	if len(got.Conds) != 2 || got.Conds[0].Field != "id" || got.Conds[0].Op != OpEq {
		t.Errorf("decoded conds = %+v", got.Conds)
	}
	if len(got.Assigns) != 1 || got.Assigns[0].Field != "name" {
		t.Errorf("decoded assigns = %+v", got.Assigns)
	}
	// msgpack widens integers to int64; the eq argument survives as-is.
	if v, ok := got.Conds[0].Args[0].(int64); !ok || v != 42 {
		t.Errorf("decoded arg = %v (%T)", got.Conds[0].Args[0], got.Conds[0].Args[0])
	}
}

func TestLogWireRoundtrip(t *testing.T) {
	log := []WhereParam{
		{Field: "id", Op: OpEq, Value: Single(int64(1))},
		{Field: "name", Op: OpLike, Value: Single("foo")},
		{Field: "id", Op: OpIn, Value: List([]int64{2, 3})},
	}

	data, err := EncodeLog(log)
	if err != nil {
		t.Fatalf("EncodeLog: %v", err)
	}
	got, err := DecodeLog(data)
	if err != nil {
		t.Fatalf("DecodeLog: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("decoded %d entries, want 3", len(got))
	}
	if got[0].Field != "id" || got[0].Op != OpEq || got[0].Value.Single != "1" {
		t.Errorf("got[0] = %v", got[0])
	}
	if got[2].Value.Kind != ValueList || len(got[2].Value.List) != 2 {
		t.Errorf("got[2] = %v", got[2])
	}
}
