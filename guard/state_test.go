package guard

import (
	"errors"
	"testing"
)

func TestFinalizeSelectNoWhere(t *testing.T) {
	s := NewState(KindSelect)
	_, err := s.Finalize()
	var nw *NoWhereError
	if !errors.As(err, &nw) {
		t.Fatalf("Finalize() = %v, want NoWhereError", err)
	}
	if nw.Kind != KindSelect {
		t.Errorf("Kind = %v, want KindSelect", nw.Kind)
	}
}

func TestFinalizeDeleteNoWhere(t *testing.T) {
	s := NewState(KindDelete)
	_, err := s.Finalize()
	var nw *NoWhereError
	if !errors.As(err, &nw) {
		t.Fatalf("Finalize() = %v, want NoWhereError", err)
	}
}

func TestFinalizeUpdateNoSet(t *testing.T) {
	s := NewState(KindUpdate)
	s.Where(WhereParam{Field: "id", Op: OpEq, Value: Single(int64(1))})
	_, err := s.Finalize()
	var ns *NoSetError
	if !errors.As(err, &ns) {
		t.Fatalf("Finalize() = %v, want NoSetError", err)
	}
}

func TestFinalizeUpdateNoWhereReportedFirst(t *testing.T) {
	// An untouched update builder is missing both a WHERE and a SET;
	// the missing WHERE must not be silently skipped.
	s := NewState(KindUpdate)
	_, err := s.Finalize()
	var nw *NoWhereError
	if !errors.As(err, &nw) {
		t.Fatalf("Finalize() = %v, want NoWhereError", err)
	}
}

func TestFinalizeUpdateOK(t *testing.T) {
	s := NewState(KindUpdate)
	s.Where(WhereParam{Field: "id", Op: OpEq, Value: Single(int64(1))})
	s.Set(WhereParam{Field: "name", Op: OpSet, Value: Single("x")})
	p, err := s.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if got := len(p.WhereParams()); got != 2 {
		t.Errorf("log length = %d, want 2", got)
	}
}

func TestFinalizeFailureIsRecoverable(t *testing.T) {
	s := NewState(KindSelect)
	if _, err := s.Finalize(); err == nil {
		t.Fatal("expected NoWhere on empty select")
	}
	// Add the missing condition and retry.
	s.Where(WhereParam{Field: "id", Op: OpEq, Value: Single(int64(1))})
	if _, err := s.Finalize(); err != nil {
		t.Fatalf("retry after adding condition failed: %v", err)
	}
}

func TestFinalizeConsumes(t *testing.T) {
	s := NewState(KindSelect)
	s.Where(WhereParam{Field: "id", Op: OpEq, Value: Single(int64(1))})
	if _, err := s.Finalize(); err != nil {
		t.Fatalf("first Finalize: %v", err)
	}

	// Mutations after finalization are inert.
	s.Where(WhereParam{Field: "id", Op: OpEq, Value: Single(int64(2))})
	if s.SetCount() != 0 {
		t.Error("Set after finalize should not count")
	}

	_, err := s.Finalize()
	var ab *AlreadyBuiltError
	if !errors.As(err, &ab) {
		t.Fatalf("second Finalize() = %v, want AlreadyBuiltError", err)
	}
}

func TestConditionLogPreservesCallOrder(t *testing.T) {
	s := NewState(KindSelect)
	s.Where(WhereParam{Field: "id", Op: OpEq, Value: Single(int64(1))})
	s.Where(WhereParam{Field: "name", Op: OpLike, Value: Single("foo")})
	p, err := s.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	log := p.WhereParams()
	if len(log) != 2 {
		t.Fatalf("log length = %d, want 2", len(log))
	}
	if log[0].Field != "id" || log[0].Op != OpEq || log[0].Value.Single != "1" {
		t.Errorf("log[0] = %v", log[0])
	}
	if log[1].Field != "name" || log[1].Op != OpLike || log[1].Value.Single != "foo" {
		t.Errorf("log[1] = %v", log[1])
	}
}

func TestRepeatedConditionAppendsToLog(t *testing.T) {
	// Typed storage in generated builders is last-write-wins, but the
	// log records every call.
	s := NewState(KindSelect)
	s.Where(WhereParam{Field: "id", Op: OpEq, Value: Single(int64(1))})
	s.Where(WhereParam{Field: "id", Op: OpEq, Value: Single(int64(2))})
	p, err := s.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if got := len(p.WhereParams()); got != 2 {
		t.Errorf("log length = %d, want 2", got)
	}
}
