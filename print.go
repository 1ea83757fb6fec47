package spreadsheet

import (
	"bufio"
	"io"
)

// Size is the smallest rectangle [0,Rows) x [0,Cols) containing every cell
// whose Text() is non-empty.
type Size struct {
	Rows int
	Cols int
}

// PrintableSize computes the printable rectangle: the smallest
// [0,rows) x [0,cols) spanning every cell with non-empty Text(). Empty
// cells, including auto-vivified sentinels, never extend it.
func (s *Sheet) PrintableSize() Size {
	maxRow, maxCol := -1, -1
	for pos, cell := range s.cells {
		if cell.Text() == "" {
			continue
		}
		if pos.Row > maxRow {
			maxRow = pos.Row
		}
		if pos.Col > maxCol {
			maxCol = pos.Col
		}
	}
	if maxRow < 0 {
		return Size{}
	}
	return Size{Rows: maxRow + 1, Cols: maxCol + 1}
}

// PrintValues emits the printable rectangle row by row, tab-separated and
// newline-terminated, each cell rendered via its computed value's display
// form. Missing cells render as empty fields.
func (s *Sheet) PrintValues(out io.Writer) error {
	return s.printRectangle(out, func(pos Position) string {
		v, err := s.Value(pos)
		if err != nil || v.Kind == KindText && v.Text == "" {
			return ""
		}
		return v.String()
	})
}

// PrintTexts emits the printable rectangle row by row, tab-separated and
// newline-terminated, each cell rendered via its stored Text().
func (s *Sheet) PrintTexts(out io.Writer) error {
	return s.printRectangle(out, func(pos Position) string {
		cell, ok := s.cells[pos]
		if !ok {
			return ""
		}
		return cell.Text()
	})
}

func (s *Sheet) printRectangle(out io.Writer, render func(Position) string) error {
	size := s.PrintableSize()
	w := bufio.NewWriter(out)
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			if col > 0 {
				if _, err := w.WriteString("\t"); err != nil {
					return err
				}
			}
			if _, err := w.WriteString(render(Position{Row: row, Col: col})); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
