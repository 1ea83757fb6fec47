package spreadsheet

import (
	"fmt"

	"github.com/pkg/errors"
)

// StructuralErrorCode enumerates the three structural, edit-time failures
// that are distinct from evaluation-time FormulaErrors. Structural errors
// abort a mutation before any sheet state changes; FormulaErrors never do.
type StructuralErrorCode int

const (
	// CodeInvalidPosition: bad input to any Sheet API.
	CodeInvalidPosition StructuralErrorCode = iota + 1
	// CodeCircularDependency: set would close a reference cycle.
	CodeCircularDependency
	// CodeParsingError: a "="-prefixed text failed to parse.
	CodeParsingError
)

// StructuralError is the typed payload behind InvalidPosition,
// CircularDependency, and ParsingError. Sheet methods return it wrapped
// with github.com/pkg/errors so callers get a stack-bearing error while
// still being able to recover the typed value with errors.Cause (or the
// standard library's errors.As, since the pkg/errors wrapper implements
// Unwrap).
type StructuralError struct {
	Code    StructuralErrorCode
	Message string
}

func (e *StructuralError) Error() string {
	return e.Message
}

func newStructuralError(code StructuralErrorCode, format string, args ...any) error {
	e := &StructuralError{Code: code, Message: fmt.Sprintf(format, args...)}
	return errors.WithStack(e)
}

// InvalidPositionError wraps a StructuralError with CodeInvalidPosition.
func InvalidPositionError(pos Position) error {
	return newStructuralError(CodeInvalidPosition, "invalid position: %v", pos)
}

// CircularDependencyError wraps a StructuralError with CodeCircularDependency.
func CircularDependencyError(target Position) error {
	return newStructuralError(CodeCircularDependency, "circular dependency through %s", target)
}

// ParsingError wraps a StructuralError with CodeParsingError, carrying the
// underlying parser's message.
func ParsingError(cause error) error {
	return newStructuralError(CodeParsingError, "formula parse error: %v", cause)
}

// IsCode reports whether err (or a cause in its chain) is a StructuralError
// with the given code.
func IsCode(err error, code StructuralErrorCode) bool {
	se, ok := errors.Cause(err).(*StructuralError)
	return ok && se.Code == code
}
