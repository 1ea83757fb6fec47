package spreadsheet

import "fmt"

// Chain provides a chainable interface over Sheet: it wraps a Sheet and
// tracks the first error encountered, so a batch of edits can be written
// as one fluent expression without checking an error after every call.
// Set, Clear, Value, SetBatch, Then, and Log are no-ops once err is set;
// CheckError and Must act on it.
type Chain struct {
	sheet   *Sheet
	err     error
	printLn func(string)
}

// NewChain wraps a fresh Sheet in a Chain. printLn is used by Log and
// CheckError; pass nil to discard that output.
func NewChain(printLn func(string)) *Chain {
	if printLn == nil {
		printLn = func(string) {}
	}
	return &Chain{sheet: NewSheet(), printLn: printLn}
}

// Set sets the cell at address (A1 form) to text.
func (c *Chain) Set(address, text string) *Chain {
	if c.err != nil {
		return c
	}
	pos, ok := ParsePosition(address)
	if !ok {
		c.err = InvalidPositionError(NONE)
		return c
	}
	c.err = c.sheet.Set(pos, text)
	return c
}

// Clear clears the cell at address.
func (c *Chain) Clear(address string) *Chain {
	if c.err != nil {
		return c
	}
	pos, ok := ParsePosition(address)
	if !ok {
		c.err = InvalidPositionError(NONE)
		return c
	}
	c.err = c.sheet.Clear(pos)
	return c
}

// Value returns the CellValue at address (chainable via the returned
// Chain; the value itself is the second return).
func (c *Chain) Value(address string) (*Chain, CellValue) {
	if c.err != nil {
		return c, CellValue{}
	}
	pos, ok := ParsePosition(address)
	if !ok {
		c.err = InvalidPositionError(NONE)
		return c, CellValue{}
	}
	v, err := c.sheet.Value(pos)
	if err != nil {
		c.err = err
		return c, CellValue{}
	}
	return c, v
}

// SetBatch applies every address/text pair in cells, stopping at the
// first error.
func (c *Chain) SetBatch(cells map[string]string) *Chain {
	for address, text := range cells {
		c.Set(address, text)
		if c.err != nil {
			return c
		}
	}
	return c
}

// Then runs fn unless an error has already occurred.
func (c *Chain) Then(fn func(*Chain) *Chain) *Chain {
	if c.err != nil {
		return c
	}
	return fn(c)
}

// Log prints the value at address using the configured printLn.
func (c *Chain) Log(address string) *Chain {
	if c.err != nil {
		return c
	}
	_, v := c.Value(address)
	if c.err != nil {
		return c
	}
	c.printLn(fmt.Sprintf("%s: %s", address, v.String()))
	return c
}

// CheckError logs the current error state via printLn.
func (c *Chain) CheckError() *Chain {
	if c.err != nil {
		c.printLn(fmt.Sprintf("ERROR: %v", c.err))
	} else {
		c.printLn("no errors")
	}
	return c
}

// Must panics if an error has occurred. Useful for examples and tests
// that want to fail fast rather than thread an error return everywhere.
func (c *Chain) Must() *Chain {
	if c.err != nil {
		panic(c.err)
	}
	return c
}

// Sheet returns the underlying Sheet, bypassing error tracking.
func (c *Chain) Sheet() *Sheet { return c.sheet }

// Err returns the first error encountered, or nil.
func (c *Chain) Err() error { return c.err }
