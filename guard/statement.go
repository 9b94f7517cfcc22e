package guard

import (
	"context"
	"fmt"
	"strings"
)

// Cond is one predicate of a statement: a field, a catalog operation, and
// the typed argument values in operation order.
type Cond struct {
	Field string
	Op    Op
	Args  []any
}

// Assign is one SET assignment of an update statement.
type Assign struct {
	Field string
	Value any
}

// OrderBy is one sort term of a selection statement.
type OrderBy struct {
	Field string
	Desc  bool
}

// Statement is the backend-agnostic representation of a finalized query.
// The core never executes it; an executor renders it for its backend via
// a Dialect and runs it.
type Statement struct {
	Kind    Kind
	Table   string
	Conds   []Cond
	Assigns []Assign
	Order   []OrderBy
	Limit   int
	Offset  int
}

// NewStatement returns an empty statement of the given kind for a table.
func NewStatement(kind Kind, table string) *Statement {
	return &Statement{Kind: kind, Table: table}
}

// Where appends a predicate.
func (st *Statement) Where(field string, op Op, args ...any) {
	st.Conds = append(st.Conds, Cond{Field: field, Op: op, Args: args})
}

// Set appends an assignment.
func (st *Statement) Set(field string, value any) {
	st.Assigns = append(st.Assigns, Assign{Field: field, Value: value})
}

// Sort appends a sort term.
func (st *Statement) Sort(field string, desc bool) {
	st.Order = append(st.Order, OrderBy{Field: field, Desc: desc})
}

// Args converts a typed slice to the []any a Statement predicate carries.
func Args[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// Dialect abstracts the SQL flavor differences an executor cares about:
// parameter placeholders, identifier quoting, and how case-insensitive
// matching is expressed.
type Dialect interface {
	// Placeholder returns the parameter placeholder for the given 1-based index.
	Placeholder(index int) string
	// QuoteIdentifier wraps a table or column name in the dialect's quotes.
	QuoteIdentifier(name string) string
	// ILike renders a case-insensitive pattern match of column against
	// the given placeholder expression.
	ILike(column, placeholder string) string
}

// SQLiteDialect renders for SQLite: ? placeholders, double-quoted
// identifiers. SQLite has no ILIKE, so case-insensitive matching folds
// both sides through lower().
type SQLiteDialect struct{}

// Placeholder returns ?.
func (SQLiteDialect) Placeholder(int) string { return "?" }

// QuoteIdentifier returns "name".
func (SQLiteDialect) QuoteIdentifier(name string) string { return `"` + name + `"` }

// ILike returns lower(column) LIKE lower(placeholder).
func (SQLiteDialect) ILike(column, placeholder string) string {
	return fmt.Sprintf("lower(%s) LIKE lower(%s)", column, placeholder)
}

// PostgresDialect renders for PostgreSQL: $1, $2 placeholders,
// double-quoted identifiers, native ILIKE.
type PostgresDialect struct{}

// Placeholder returns $1, $2, etc.
func (PostgresDialect) Placeholder(index int) string { return fmt.Sprintf("$%d", index) }

// QuoteIdentifier returns "name".
func (PostgresDialect) QuoteIdentifier(name string) string { return `"` + name + `"` }

// ILike returns column ILIKE placeholder.
func (PostgresDialect) ILike(column, placeholder string) string {
	return column + " ILIKE " + placeholder
}

// SQL renders the statement as SQL text plus positional arguments for the
// given dialect. Arguments follow condition-log order: assignments first
// for updates, then predicates left to right.
//
// A statement with no predicates does not render; the validator already
// refuses such builders, and SQL repeats the check so hand-assembled
// statements get the same protection at the execution boundary.
func (st *Statement) SQL(d Dialect) (string, []any, error) {
	if len(st.Conds) == 0 {
		return "", nil, &NoWhereError{Kind: st.Kind}
	}

	var b strings.Builder
	var args []any
	idx := 0
	next := func(v any) string {
		args = append(args, v)
		idx++
		return d.Placeholder(idx)
	}

	table := d.QuoteIdentifier(st.Table)

	switch st.Kind {
	case KindSelect:
		b.WriteString("SELECT * FROM " + table)
	case KindUpdate:
		b.WriteString("UPDATE " + table + " SET ")
		if len(st.Assigns) == 0 {
			return "", nil, &NoSetError{}
		}
		for i, a := range st.Assigns {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(d.QuoteIdentifier(a.Field) + " = " + next(a.Value))
		}
	case KindDelete:
		b.WriteString("DELETE FROM " + table)
	}

	b.WriteString(" WHERE ")
	for i, c := range st.Conds {
		if i > 0 {
			b.WriteString(" AND ")
		}
		expr, err := renderCond(d, c, next)
		if err != nil {
			return "", nil, err
		}
		b.WriteString(expr)
	}

	if st.Kind == KindSelect {
		if len(st.Order) > 0 {
			var terms []string
			for _, o := range st.Order {
				dir := "ASC"
				if o.Desc {
					dir = "DESC"
				}
				terms = append(terms, d.QuoteIdentifier(o.Field)+" "+dir)
			}
			b.WriteString(" ORDER BY " + strings.Join(terms, ", "))
		}
		if st.Limit > 0 {
			b.WriteString(fmt.Sprintf(" LIMIT %d", st.Limit))
		}
		if st.Offset > 0 {
			b.WriteString(fmt.Sprintf(" OFFSET %d", st.Offset))
		}
	}

	return b.String(), args, nil
}

// renderCond renders one predicate. The placeholder allocator is shared
// with the caller so argument order matches placeholder order.
func renderCond(d Dialect, c Cond, next func(any) string) (string, error) {
	col := d.QuoteIdentifier(c.Field)
	switch c.Op {
	case OpEq:
		return col + " = " + next(c.Args[0]), nil
	case OpNe:
		return col + " <> " + next(c.Args[0]), nil
	case OpLt:
		return col + " < " + next(c.Args[0]), nil
	case OpLte:
		return col + " <= " + next(c.Args[0]), nil
	case OpGt:
		return col + " > " + next(c.Args[0]), nil
	case OpGte:
		return col + " >= " + next(c.Args[0]), nil
	case OpLike:
		return col + " LIKE " + next(c.Args[0]), nil
	case OpILike:
		return d.ILike(col, next(c.Args[0])), nil
	case OpIn:
		if len(c.Args) == 0 {
			// Membership in the empty set matches nothing.
			return "1 = 0", nil
		}
		ps := make([]string, len(c.Args))
		for i, a := range c.Args {
			ps[i] = next(a)
		}
		return col + " IN (" + strings.Join(ps, ", ") + ")", nil
	case OpBetween:
		return col + " BETWEEN " + next(c.Args[0]) + " AND " + next(c.Args[1]), nil
	default:
		return "", fmt.Errorf("statement: unsupported operation %q on %s", c.Op, c.Field)
	}
}

// Executor is the external statement-execution collaborator. It receives
// finalized statements and runs them against a concrete storage backend.
// Implementations live outside the core; sqlexec and pgexec provide
// reference realizations.
type Executor interface {
	// Select runs a selection statement and returns rows as maps keyed
	// by column name.
	Select(ctx context.Context, st *Statement) ([]map[string]any, error)
	// Exec runs an update or deletion statement and returns the number
	// of affected rows.
	Exec(ctx context.Context, st *Statement) (int64, error)
}
