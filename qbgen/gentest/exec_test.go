package gentest

import (
	"context"
	"testing"

	"github.com/guardql/guardql/sqlexec"
)

func openSeeded(t *testing.T) *sqlexec.Executor {
	t.Helper()
	e, err := sqlexec.Open(":memory:")
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

func TestGeneratedSelectEndToEnd(t *testing.T) {
	e := openSeeded(t)

	st, err := SelectUser().
		NameLike("%o%").
		OrderAsc("name").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	rows, err := e.Select(context.Background(), st)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["name"] != "bob" || rows[1]["name"] != "carol" {
		t.Errorf("rows = %v", rows)
	}
}

func TestGeneratedUpdateEndToEnd(t *testing.T) {
	e := openSeeded(t)

	st, err := UpdateUser().
		AgeBetween(20, 35).
		SetAge(0).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	n, err := e.Exec(context.Background(), st)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if n != 2 {
		t.Errorf("affected = %d, want 2", n)
	}
}

func TestGeneratedDeleteEndToEnd(t *testing.T) {
	e := openSeeded(t)

	st, err := DeleteUser().IDIn([]int64{1, 2}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	n, err := e.Exec(context.Background(), st)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if n != 2 {
		t.Errorf("affected = %d, want 2", n)
	}

	var count int
	if err := e.DB().QueryRow(`SELECT count(*) FROM app_user`).Scan(&count); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
