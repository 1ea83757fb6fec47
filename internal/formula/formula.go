// Package formula is a small recursive-descent parser producing an AST
// that implements the spreadsheet.Formula contract, trimmed of worksheet
// and range support since both are out of this engine's scope. It has no
// dependency on the root spreadsheet package - the wiring happens the
// other way, in doc.go's init.
package formula

// Formula is the parsed, evaluable form of a "="-prefixed cell text.
type Formula struct {
	root Node
	text string
}

// Evaluate runs the formula against lookup.
func (f *Formula) Evaluate(lookup Lookup) (float64, error) {
	return f.root.Eval(lookup)
}

// PrintableForm renders the canonical, minimally-parenthesized form.
func (f *Formula) PrintableForm() string {
	return f.root.String()
}

// ReferencedCells returns the positions the formula reads, in source
// order, not yet deduplicated or filtered for validity.
func (f *Formula) ReferencedCells() []Position {
	return CollectRefs(f.root)
}
