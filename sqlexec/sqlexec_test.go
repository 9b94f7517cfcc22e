package sqlexec

import (
	"context"
	"errors"
	"testing"

	"github.com/guardql/guardql/guard"
)

func openSeeded(t *testing.T) *Executor {
	t.Helper()
	e, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })

	_, err = e.DB().Exec(`CREATE TABLE app_user (id INTEGER PRIMARY KEY, name TEXT, age INTEGER)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	_, err = e.DB().Exec(`INSERT INTO app_user (id, name, age) VALUES
		(1, 'alice', 30),
		(2, 'bob', 25),
		(3, 'carol', 41)`)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return e
}

func TestSelect(t *testing.T) {
	e := openSeeded(t)

	st := guard.NewStatement(guard.KindSelect, "app_user")
	st.Where("age", guard.OpGte, int64(30))
	st.Sort("age", true)

	rows, err := e.Select(context.Background(), st)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["name"] != "carol" || rows[1]["name"] != "alice" {
		t.Errorf("rows = %v", rows)
	}
}

func TestSelectRejectsMutation(t *testing.T) {
	e := openSeeded(t)

	st := guard.NewStatement(guard.KindDelete, "app_user")
	st.Where("id", guard.OpEq, int64(1))
	if _, err := e.Select(context.Background(), st); err == nil {
		t.Fatal("Select must reject non-select statements")
	}
}

func TestExecUpdate(t *testing.T) {
	e := openSeeded(t)

	st := guard.NewStatement(guard.KindUpdate, "app_user")
	st.Set("name", "robert")
	st.Where("id", guard.OpEq, int64(2))

	n, err := e.Exec(context.Background(), st)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if n != 1 {
		t.Errorf("affected = %d, want 1", n)
	}

	var name string
	if err := e.DB().QueryRow(`SELECT name FROM app_user WHERE id = 2`).Scan(&name); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if name != "robert" {
		t.Errorf("name = %q", name)
	}
}

func TestExecDelete(t *testing.T) {
	e := openSeeded(t)

	st := guard.NewStatement(guard.KindDelete, "app_user")
	st.Where("id", guard.OpIn, int64(1), int64(3))

	n, err := e.Exec(context.Background(), st)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if n != 2 {
		t.Errorf("affected = %d, want 2", n)
	}
}

func TestExecRejectsSelect(t *testing.T) {
	e := openSeeded(t)

	st := guard.NewStatement(guard.KindSelect, "app_user")
	st.Where("id", guard.OpEq, int64(1))
	if _, err := e.Exec(context.Background(), st); err == nil {
		t.Fatal("Exec must reject select statements")
	}
}

func TestExecRefusesUnfilteredStatement(t *testing.T) {
	e := openSeeded(t)

	st := guard.NewStatement(guard.KindDelete, "app_user")
	_, err := e.Exec(context.Background(), st)
	var noWhere *guard.NoWhereError
	if !errors.As(err, &noWhere) {
		t.Fatalf("err = %v, want NoWhereError", err)
	}

	// Nothing was deleted.
	var count int
	if err := e.DB().QueryRow(`SELECT count(*) FROM app_user`).Scan(&count); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}
