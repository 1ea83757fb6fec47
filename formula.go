package spreadsheet

// Lookup resolves a single operand during formula evaluation. It is the
// only contract the formula AST sees:
//
//  1. an invalid Position raises a FormulaError with code ErrRef.
//  2. an absent cell resolves to 0.
//  3. a Number cell resolves to its value.
//  4. a Text cell resolves to 0 for "", or the parsed decimal value of the
//     text, or raises ErrValue if the text does not parse as a finite
//     number.
//  5. an Error cell propagates its FormulaError.
//
// Sheet.lookup (in sheet.go) is the only implementation; it is bound to a
// Sheet instance per evaluation so the formula AST never holds a Sheet
// reference directly.
type Lookup func(Position) (float64, error)

// Formula is the external collaborator named by the system overview: the
// product of parsing a formula string, consumed by the core through this
// interface alone. internal/formula.Parse produces the only
// implementation shipped in this repo, but the core never imports
// internal/formula's concrete type outside of the one call site in
// doc.go - everything else programs against this interface.
type Formula interface {
	// Evaluate runs the formula against lookup. It returns a finite float
	// on success, or an error - either a FormulaError raised by the AST
	// itself (e.g. non-finite arithmetic) or one propagated from lookup.
	Evaluate(lookup Lookup) (float64, error)

	// PrintableForm renders a canonical, minimally-parenthesized form of
	// the formula, used to reconstruct Cell.Text().
	PrintableForm() string

	// ReferencedCells returns the positions the formula reads, in source
	// order, before the core deduplicates and filters invalid ones.
	ReferencedCells() []Position
}

// ParseFormula is a seam for the one external boundary the system overview
// names (parse_formula). It is a package-level variable rather than a
// hard import so an embedder could substitute a richer grammar without
// touching Sheet or Cell; internal/formula.Parse is wired in by
// doc.go's init, the only place this module reaches across the
// internal/formula boundary.
var ParseFormula func(expression string) (Formula, error)
