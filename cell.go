package spreadsheet

import (
	"strconv"

	"github.com/gospreadsheet/engine/internal/intern"
)

// escapeSign, when it is text[0], marks text as an escaped literal: the
// sign is stripped from the displayed Value but preserved by Text(), so a
// cell can hold text that looks like a formula without being parsed as
// one.
const escapeSign = '\''

// CellValueKind tags the three possible shapes of a read cell value.
type CellValueKind uint8

const (
	KindNumber CellValueKind = iota
	KindText
	KindError
)

// CellValue is the result of reading a cell: a Number, Text, or Error,
// never more than one at a time.
type CellValue struct {
	Kind   CellValueKind
	Number float64
	Text   string
	Err    FormulaError
}

// NumberValue constructs a Number CellValue.
func NumberValue(v float64) CellValue { return CellValue{Kind: KindNumber, Number: v} }

// TextValue constructs a Text CellValue.
func TextValue(s string) CellValue { return CellValue{Kind: KindText, Text: s} }

// ErrorValue constructs an Error CellValue.
func ErrorValue(e FormulaError) CellValue { return CellValue{Kind: KindError, Err: e} }

// String renders v the way print_values does: numbers via Go's default
// float formatting, text verbatim, errors as their display string.
func (v CellValue) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindText:
		return v.Text
	case KindError:
		return v.Err.Error()
	}
	return ""
}

// cellKind tags Cell's closed three-variant inner state. A tagged union
// over a fixed, struct-embedded sum type (rather than an interface
// hierarchy) keeps the memoization slot scoped to the formula arm only.
type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellText
	cellFormulaCell
)

// Cell is one stored unit at a Position: Empty, Text, or FormulaCell. All
// cross-cell resolution goes through Sheet via a lookup closure bound at
// evaluation time; a Cell never reaches across to other cells directly.
type Cell struct {
	position Position
	kind     cellKind

	// cellText: the stored text (including any leading escape sign) lives
	// only in the owning Sheet's string table, keyed by textID; strings
	// points at that table so every read resolves through it. This is
	// what makes the interning real: two Text cells holding the same
	// string share one table entry rather than each keeping its own copy.
	textID  uint32
	strings *intern.Table

	// cellFormulaCell:
	formula    Formula
	cacheValid bool
	cache      CellValue
}

// NewEmptyCell constructs an Empty cell at pos.
func NewEmptyCell(pos Position) *Cell {
	return &Cell{position: pos, kind: cellEmpty}
}

// newCell classifies text and builds the Cell it should become, applying
// these rules in order:
//  1. empty string -> Empty
//  2. text[0] == '=' and len(text) >= 2 -> FormulaCell, parsed via
//     ParseFormula; a parse failure is returned as-is (the caller wraps it
//     as a structural ParsingError - cell.go stays agnostic of that
//     wrapping so it can be unit-tested without the rest of Sheet).
//  3. otherwise -> Text
func newCell(pos Position, text string, strings *intern.Table) (*Cell, error) {
	if text == "" {
		return NewEmptyCell(pos), nil
	}
	if text[0] == '=' && len(text) >= 2 {
		f, err := ParseFormula(text[1:])
		if err != nil {
			return nil, err
		}
		return &Cell{position: pos, kind: cellFormulaCell, formula: f}, nil
	}
	return &Cell{position: pos, kind: cellText, textID: strings.Intern(text), strings: strings}, nil
}

// Position returns the cell's own address.
func (c *Cell) Position() Position { return c.position }

// IsFormula reports whether c is a FormulaCell.
func (c *Cell) IsFormula() bool { return c.kind == cellFormulaCell }

// Text returns the cell's stored text: "" for Empty, the original string
// (including any leading escape sign) for Text, or "=" plus the formula's
// printable form for FormulaCell.
func (c *Cell) Text() string {
	switch c.kind {
	case cellEmpty:
		return ""
	case cellText:
		s, _ := c.strings.Get(c.textID)
		return s
	case cellFormulaCell:
		return "=" + c.formula.PrintableForm()
	}
	return ""
}

// ReferencedCells returns the formula's referenced positions, deduplicated
// and in first-seen order, with invalid positions filtered out. Empty and
// Text cells reference nothing.
func (c *Cell) ReferencedCells() []Position {
	if c.kind != cellFormulaCell {
		return nil
	}
	return dedupValidPositions(c.formula.ReferencedCells())
}

// clone returns an independent copy of c, re-interning its text (if any)
// against strings - the string table belonging to the Sheet the clone
// will live in, distinct from the table the original Cell was interned
// against. Every other field is either a value type or an immutable
// Formula built once at parse time and never mutated in place, so a
// shallow copy is sufficient for them.
func (c *Cell) clone(strings *intern.Table) *Cell {
	cp := *c
	if cp.kind == cellText {
		s, _ := c.strings.Get(c.textID)
		cp.textID = strings.Intern(s)
		cp.strings = strings
	}
	return &cp
}

// releaseText drops c's reference to its interned text, if it has one.
// It is a no-op for non-Text cells.
func (c *Cell) releaseText() {
	if c.kind == cellText {
		c.strings.Release(c.textID)
	}
}

// invalidateCache clears the memoized value. It is a no-op for Empty and
// Text cells, which have nothing to memoize.
func (c *Cell) invalidateCache() {
	if c.kind == cellFormulaCell {
		c.cacheValid = false
		c.cache = CellValue{}
	}
}

// value computes the cell's CellValue. For Empty and Text cells this is
// pure and side-effect-free. For FormulaCell it returns the memoized
// result if present, or evaluates via lookup, memoizes the result (errors
// are cached identically to numbers), and returns.
func (c *Cell) value(lookup Lookup) CellValue {
	switch c.kind {
	case cellEmpty:
		return TextValue("")
	case cellText:
		s, _ := c.strings.Get(c.textID)
		if len(s) > 0 && s[0] == escapeSign {
			return TextValue(s[1:])
		}
		return TextValue(s)
	case cellFormulaCell:
		if c.cacheValid {
			return c.cache
		}
		result, err := c.formula.Evaluate(lookup)
		var v CellValue
		if err != nil {
			if fe, ok := err.(FormulaError); ok {
				v = ErrorValue(fe)
			} else {
				v = ErrorValue(NewFormulaError(ErrValue))
			}
		} else {
			v = NumberValue(result)
		}
		c.cache = v
		c.cacheValid = true
		return v
	}
	return TextValue("")
}
