package spreadsheet

import (
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"
	"github.com/sirupsen/logrus"

	"github.com/gospreadsheet/engine/internal/intern"
)

// edgeSet is the adjacency set type shared by refs and deps.
type edgeSet = map[Position]map[Position]struct{}

// Sheet owns the cell map and the two adjacency maps (refs: outgoing,
// formula-cell -> cells it reads; deps: incoming, cell -> formula-cells
// that read it) and enforces its core invariants: refs and deps mirror
// each other, cell population stays sparse, refs stays acyclic, caches
// invalidate correctly on every mutation, and positions are canonical.
type Sheet struct {
	id      uuid.UUID
	cells   map[Position]*Cell
	refs    edgeSet
	deps    edgeSet
	log     *logrus.Logger
	strings *intern.Table
}

// NewSheet constructs an empty Sheet.
func NewSheet(opts ...Option) *Sheet {
	s := &Sheet{
		id:      uuid.New(),
		cells:   make(map[Position]*Cell),
		refs:    make(edgeSet),
		deps:    make(edgeSet),
		log:     defaultLogger(),
		strings: intern.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the Sheet's unique identifier, attached to every log entry so
// diagnostics from multiple Sheets held by one process can be told apart.
func (s *Sheet) ID() uuid.UUID { return s.id }

// Set classifies text and installs it at pos. It fails with
// InvalidPositionError if pos is not valid, CircularDependencyError if the
// resulting cell would close a reference cycle, or a wrapped ParsingError
// if text looks like a formula but fails to parse. On any failure the
// Sheet is left completely unchanged.
func (s *Sheet) Set(pos Position, text string) error {
	if !pos.IsValid() {
		return InvalidPositionError(pos)
	}

	candidate, err := newCell(pos, text, s.strings)
	if err != nil {
		s.log.WithFields(logrus.Fields{"sheet": s.id, "pos": pos.String()}).
			Debug("formula failed to parse")
		return ParsingError(err)
	}

	refd := candidate.ReferencedCells()

	for _, q := range refd {
		if s.reaches(q, pos) {
			s.log.WithFields(logrus.Fields{"sheet": s.id, "pos": pos.String(), "via": q.String()}).
				Warn("rejected set: would close a reference cycle")
			return CircularDependencyError(pos)
		}
	}

	vivified := 0
	for _, q := range refd {
		if _, ok := s.cells[q]; !ok {
			s.cells[q] = NewEmptyCell(q)
			vivified++
		}
	}
	if vivified > 0 {
		s.log.WithFields(logrus.Fields{"sheet": s.id, "pos": pos.String(), "vivified": vivified}).
			Debug("auto-vivified referenced cells")
	}

	if old, existed := s.cells[pos]; existed {
		old.releaseText()
		s.removeOutgoingEdges(pos)
	}

	invalidated := s.invalidateDependents(pos)
	if invalidated > 0 {
		s.log.WithFields(logrus.Fields{"sheet": s.id, "pos": pos.String(), "invalidated": invalidated}).
			Debug("invalidation cascade")
	}

	s.cells[pos] = candidate
	for _, q := range refd {
		s.addEdge(pos, q)
	}

	return nil
}

// Clear removes the cell at pos: its outgoing edges are dropped and its
// dependants' caches invalidated. It does not error on an absent position.
// If another formula still references pos, an Empty sentinel is left
// behind so the invariant that cells contains every explicitly-set-or-
// referenced position keeps holding.
func (s *Sheet) Clear(pos Position) error {
	if !pos.IsValid() {
		return InvalidPositionError(pos)
	}

	old, ok := s.cells[pos]
	if !ok {
		return nil
	}

	old.releaseText()
	s.removeOutgoingEdges(pos)
	delete(s.cells, pos)
	s.invalidateDependents(pos)

	if len(s.deps[pos]) > 0 {
		s.cells[pos] = NewEmptyCell(pos)
	}

	return nil
}

// GetCell returns the Cell stored at pos, or nil if the position is absent
// or holds an Empty cell - the core treats "absent" and "Empty" uniformly
// as "not printable".
func (s *Sheet) GetCell(pos Position) (*Cell, error) {
	if !pos.IsValid() {
		return nil, InvalidPositionError(pos)
	}
	cell, ok := s.cells[pos]
	if !ok || cell.kind == cellEmpty {
		return nil, nil
	}
	return cell, nil
}

// Value reads the computed CellValue at pos, evaluating and memoizing a
// FormulaCell's result if its cache is not already valid.
func (s *Sheet) Value(pos Position) (CellValue, error) {
	if !pos.IsValid() {
		return CellValue{}, InvalidPositionError(pos)
	}
	cell, ok := s.cells[pos]
	if !ok {
		return TextValue(""), nil
	}
	return cell.value(s.lookup), nil
}

// Snapshot returns a deep, independently-owned copy of the Sheet: its own
// cell map and adjacency maps, safe for a caller to mutate or hold across
// further mutations of the original. This gives speculative-edit callers
// a point-in-time copy without the engine needing an undo log of its own.
func (s *Sheet) Snapshot() *Sheet {
	newStrings := intern.New()
	cellsCopy := make(map[Position]*Cell, len(s.cells))
	for p, c := range s.cells {
		cellsCopy[p] = c.clone(newStrings)
	}
	return &Sheet{
		id:      uuid.New(),
		cells:   cellsCopy,
		refs:    deepcopy.Copy(s.refs).(edgeSet),
		deps:    deepcopy.Copy(s.deps).(edgeSet),
		log:     s.log,
		strings: newStrings,
	}
}

// InternedStringCount returns the number of distinct Text-cell strings
// currently interned, for diagnostics.
func (s *Sheet) InternedStringCount() int {
	return s.strings.Count()
}

// lookup is the closure bound to this Sheet and handed to a FormulaCell's
// Evaluate call. It implements the coercion contract documented on the
// Lookup type exactly.
func (s *Sheet) lookup(pos Position) (float64, error) {
	if !pos.IsValid() {
		return 0, NewFormulaError(ErrRef)
	}
	cell, ok := s.cells[pos]
	if !ok {
		return 0, nil
	}

	v := cell.value(s.lookup)
	switch v.Kind {
	case KindNumber:
		return v.Number, nil
	case KindText:
		if v.Text == "" {
			return 0, nil
		}
		n, err := strconv.ParseFloat(v.Text, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, NewFormulaError(ErrValue)
		}
		return n, nil
	case KindError:
		return 0, v.Err
	}
	return 0, nil
}

// reaches reports whether target is reachable from from over the current
// refs graph, including the trivial from == target case. Used by Set's
// cycle check: the hypothetical edge pos -> q closes a cycle iff some q
// in the referenced set already reaches pos.
func (s *Sheet) reaches(from, target Position) bool {
	if from == target {
		return true
	}
	visited := make(map[Position]bool)
	stack := []Position{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == target {
			return true
		}
		for next := range s.refs[cur] {
			stack = append(stack, next)
		}
	}
	return false
}

// invalidateDependents walks deps (cells that depend on pos) transitively,
// invalidating every visited cell's cache, and returns how many cells were
// visited. pos itself is never visited. The visited set makes this
// loop-safe even though the graph it walks (the pre-mutation graph) is
// already guaranteed acyclic.
func (s *Sheet) invalidateDependents(pos Position) int {
	visited := make(map[Position]bool)
	var visit func(Position)
	visit = func(p Position) {
		for d := range s.deps[p] {
			if visited[d] {
				continue
			}
			visited[d] = true
			if cell, ok := s.cells[d]; ok {
				cell.invalidateCache()
			}
			visit(d)
		}
	}
	visit(pos)
	return len(visited)
}

// addEdge records that the formula cell at from reads the cell at to,
// mirroring the edge into both refs and deps (invariant 1).
func (s *Sheet) addEdge(from, to Position) {
	if s.refs[from] == nil {
		s.refs[from] = make(map[Position]struct{})
	}
	s.refs[from][to] = struct{}{}

	if s.deps[to] == nil {
		s.deps[to] = make(map[Position]struct{})
	}
	s.deps[to][from] = struct{}{}
}

// removeOutgoingEdges drops every edge from -> * along with its deps
// mirror, tidying up empty adjacency entries.
func (s *Sheet) removeOutgoingEdges(from Position) {
	for to := range s.refs[from] {
		delete(s.deps[to], from)
		if len(s.deps[to]) == 0 {
			delete(s.deps, to)
		}
	}
	delete(s.refs, from)
}
