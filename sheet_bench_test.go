package spreadsheet

import (
	"fmt"
	"testing"
)

func BenchmarkLargeCellPopulation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := NewSheet()
		for row := 0; row < 100; row++ {
			for col := 0; col < 26; col++ {
				pos := Position{Row: row, Col: col}
				if err := s.Set(pos, fmt.Sprintf("%d", row*col)); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
}

func BenchmarkFormulaDependencyChain(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewSheet()
		if err := s.Set(Position{Row: 0, Col: 0}, "1"); err != nil {
			b.Fatal(err)
		}
		for row := 1; row < 100; row++ {
			formula := fmt.Sprintf("=A%d+1", row)
			if err := s.Set(Position{Row: row, Col: 0}, formula); err != nil {
				b.Fatal(err)
			}
		}
		if _, err := s.Value(Position{Row: 99, Col: 0}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWideDependencyFanOut(b *testing.B) {
	s := NewSheet()
	for col := 0; col < 50; col++ {
		if err := s.Set(Position{Row: 0, Col: col}, fmt.Sprintf("%d", col)); err != nil {
			b.Fatal(err)
		}
	}
	args := ""
	for col := 0; col < 50; col++ {
		if col > 0 {
			args += ","
		}
		args += Position{Row: 0, Col: col}.String()
	}
	if err := s.Set(Position{Row: 1, Col: 0}, "=SUM("+args+")"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.cells[Position{Row: 1, Col: 0}].invalidateCache()
		if _, err := s.Value(Position{Row: 1, Col: 0}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRepeatedTextInterning(b *testing.B) {
	s := NewSheet()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos := Position{Row: i % MaxRows, Col: 0}
		if err := s.Set(pos, "recurring label"); err != nil {
			b.Fatal(err)
		}
	}
}
