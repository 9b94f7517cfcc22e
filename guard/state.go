package guard

// Kind identifies which builder kind a state or statement belongs to and
// therefore which safety invariants finalization enforces.
type Kind int

const (
	// KindSelect is a selection builder.
	KindSelect Kind = iota
	// KindUpdate is an update builder.
	KindUpdate
	// KindDelete is a deletion builder.
	KindDelete
)

// String returns the lowercase name of the builder kind.
func (k Kind) String() string {
	switch k {
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return "select"
	}
}

// State is the per-instance bookkeeping every generated builder carries:
// whether a filtering condition has been supplied, how many assignments
// have been supplied, and the ordered condition log. Generated methods are
// its only mutators. A State is single-caller; it provides no locking.
type State struct {
	kind     Kind
	hasWhere bool
	setCount int
	log      []WhereParam
	done     bool
}

// NewState returns an empty state for a builder of the given kind.
func NewState(kind Kind) State {
	return State{kind: kind}
}

// Where records a filtering condition: it appends to the condition log and
// marks the builder as filtered. Calls after finalization are inert.
func (s *State) Where(p WhereParam) {
	if s.done {
		return
	}
	s.hasWhere = true
	s.log = append(s.log, p)
}

// Set records a mutation assignment: it appends to the condition log and
// increments the assignment count. Calls after finalization are inert.
func (s *State) Set(p WhereParam) {
	if s.done {
		return
	}
	s.setCount++
	s.log = append(s.log, p)
}

// HasWhere reports whether any filtering condition has been recorded.
func (s *State) HasWhere() bool { return s.hasWhere }

// SetCount returns the number of assignments recorded.
func (s *State) SetCount() int { return s.setCount }

// Finalize validates the accumulated state and consumes it. On success it
// returns the Params base holding the condition log; the state accepts no
// further mutation and a second Finalize fails. On failure nothing is
// produced and the builder may be amended and finalized again.
//
// Rules: every kind requires at least one filtering condition; updates
// additionally require at least one assignment. The missing-WHERE check
// runs first, so an untouched update builder reports NoWhere.
func (s *State) Finalize() (Params, error) {
	if s.done {
		return Params{}, &AlreadyBuiltError{Kind: s.kind}
	}
	if !s.hasWhere {
		return Params{}, &NoWhereError{Kind: s.kind}
	}
	if s.kind == KindUpdate && s.setCount == 0 {
		return Params{}, &NoSetError{}
	}
	s.done = true
	p := Params{log: s.log}
	s.log = nil
	return p, nil
}

// Params is the builder-independent part of a params snapshot. Generated
// snapshot types embed it to expose the condition log alongside their
// typed accessors. A Params is immutable once created and safe for
// concurrent readers.
type Params struct {
	log []WhereParam
}

// WhereParams returns the ordered condition log: one entry per condition
// or assignment call, in call order.
func (p *Params) WhereParams() []WhereParam { return p.log }
