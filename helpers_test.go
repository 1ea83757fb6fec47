package spreadsheet

import "github.com/gospreadsheet/engine/internal/intern"

func newTestTable() *intern.Table {
	return intern.New()
}
