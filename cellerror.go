package spreadsheet

// FormulaErrorCode enumerates the evaluation-time error categories a
// formula can raise: a reference-shaped grammar with no ranges and no
// unresolvable function names has no path to the wider error vocabulary
// a full spreadsheet (#NULL!, #NAME?, #NUM!, #N/A) needs.
type FormulaErrorCode uint8

const (
	// ErrRef marks a reference to an invalid position.
	ErrRef FormulaErrorCode = iota + 1
	// ErrValue marks non-numeric text where a number was required.
	ErrValue
	// ErrDiv0 marks division by zero, including any non-finite
	// (+-Inf, NaN) arithmetic result.
	ErrDiv0
)

var formulaErrorDisplay = map[FormulaErrorCode]string{
	ErrRef:   "#REF!",
	ErrValue: "#VALUE!",
	ErrDiv0:  "#DIV/0!",
}

// FormulaError is an evaluation-time result, not a control-flow exception:
// it travels inside CellValue like any other value. Equality is by
// category; FormulaError implements error so it can also be
// returned along the lookup-closure contract during evaluation, before
// being folded into a CellValue by Sheet.
type FormulaError struct {
	Code FormulaErrorCode
}

func (e FormulaError) Error() string {
	return formulaErrorDisplay[e.Code]
}

// String renders the error the way it is displayed in a printed sheet.
func (e FormulaError) String() string {
	return e.Error()
}

// NewFormulaError constructs a FormulaError for the given category.
func NewFormulaError(code FormulaErrorCode) FormulaError {
	return FormulaError{Code: code}
}
