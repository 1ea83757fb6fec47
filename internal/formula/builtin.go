package formula

import "math"

// builtinNames lists every function the grammar accepts: no string
// functions (CONCATENATE, UPPER, ...), no date/random functions (NOW,
// TODAY, RAND), and no AND/OR/NOT - every value here is a float64, so
// comparisons already produce the 1.0/0.0 a spreadsheet author needs for
// IF without a separate boolean type, since CellValue has no Boolean
// variant to carry one.
var builtinNames = map[string]struct{}{
	"SUM": {}, "AVERAGE": {}, "MIN": {}, "MAX": {}, "COUNT": {},
	"IF": {}, "ABS": {}, "ROUND": {}, "MOD": {},
}

// IsKnownFunction reports whether name (already upper-cased by the lexer)
// is a supported builtin. The parser rejects unknown names at parse time
// as a ParseError: an unrecognized function name is a shape the grammar
// doesn't accept, not a value that fails at evaluation time.
func IsKnownFunction(name string) bool {
	_, ok := builtinNames[name]
	return ok
}

// fixedArity gives the exact argument count required by functions that
// are not variadic. Arity is checked once, at parse time (ValidateArity),
// so CallBuiltin can assume it always holds - arity mismatch is a grammar
// shape error (ParsingError), never an evaluation-time FormulaError.
var fixedArity = map[string]int{
	"IF": 3, "ABS": 1, "ROUND": 2, "MOD": 2,
}

// ValidateArity reports whether argCount is acceptable for name. SUM,
// AVERAGE, MIN, MAX, and COUNT are variadic (zero or more arguments); the
// rest require an exact count.
func ValidateArity(name string, argCount int) bool {
	want, fixed := fixedArity[name]
	if !fixed {
		return true
	}
	return argCount == want
}

// CallBuiltin dispatches name against already-evaluated scalar arguments.
func CallBuiltin(name string, args []float64) (float64, error) {
	switch name {
	case "SUM":
		sum := 0.0
		for _, a := range args {
			sum += a
		}
		return checkFinite(sum)

	case "AVERAGE":
		if len(args) == 0 {
			return 0, DivZeroError{}
		}
		sum := 0.0
		for _, a := range args {
			sum += a
		}
		return checkFinite(sum / float64(len(args)))

	case "MIN":
		if len(args) == 0 {
			return 0, nil
		}
		m := args[0]
		for _, a := range args[1:] {
			if a < m {
				m = a
			}
		}
		return m, nil

	case "MAX":
		if len(args) == 0 {
			return 0, nil
		}
		m := args[0]
		for _, a := range args[1:] {
			if a > m {
				m = a
			}
		}
		return m, nil

	case "COUNT":
		return float64(len(args)), nil

	case "IF":
		if args[0] != 0 {
			return args[1], nil
		}
		return args[2], nil

	case "ABS":
		return math.Abs(args[0]), nil

	case "ROUND":
		factor := math.Pow(10, args[1])
		return checkFinite(math.Round(args[0]*factor) / factor)

	case "MOD":
		if args[1] == 0 {
			return 0, DivZeroError{}
		}
		return checkFinite(math.Mod(args[0], args[1]))
	}
	return 0, DivZeroError{}
}
