// Package spreadsheet is an in-memory spreadsheet computation engine: cells
// addressed by two-dimensional Positions, each holding empty content,
// literal text, or a formula expression referencing other cells. Sheet
// parses formulas, evaluates them lazily with memoization, maintains a
// bidirectional dependency graph between cells, rejects edits that would
// introduce reference cycles, and invalidates cached values of every
// transitively dependent cell when a cell changes.
package spreadsheet

import "github.com/gospreadsheet/engine/internal/formula"

func init() {
	ParseFormula = parseFormula
}

// parseFormula is the one call site that crosses from the root package
// into internal/formula; everywhere else in this package programs against
// the Formula interface. It adapts internal/formula's own Position/Lookup
// types to the root package's, which is what keeps internal/formula free
// of any dependency back on this package.
func parseFormula(expression string) (Formula, error) {
	f, err := formula.Parse(expression)
	if err != nil {
		return nil, err
	}
	return &formulaAdapter{inner: f}, nil
}

// formulaAdapter implements Formula by translating across the
// root/internal Position and Lookup boundary.
type formulaAdapter struct {
	inner *formula.Formula
}

func (a *formulaAdapter) Evaluate(lookup Lookup) (float64, error) {
	r, err := a.inner.Evaluate(func(p formula.Position) (float64, error) {
		return lookup(Position{Row: p.Row, Col: p.Col})
	})
	if err != nil {
		if _, ok := err.(formula.DivZeroError); ok {
			return 0, NewFormulaError(ErrDiv0)
		}
		return 0, err
	}
	return r, nil
}

func (a *formulaAdapter) PrintableForm() string {
	return a.inner.PrintableForm()
}

func (a *formulaAdapter) ReferencedCells() []Position {
	refs := a.inner.ReferencedCells()
	out := make([]Position, len(refs))
	for i, r := range refs {
		out[i] = Position{Row: r.Row, Col: r.Col}
	}
	return out
}
