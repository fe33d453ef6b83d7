package model

import (
	"fmt"

	"slot_machine/internal/model"
)

// Payline линия выплат: упорядоченные ячейки сетки
type Payline []model.Point

func (p Payline) Len() int {
	return len(p)
}

// Short линия короче полной строки
func (p Payline) Short() bool {
	return len(p) < FullLineLength
}

// PaylineCount количество линий выплат
const PaylineCount = 40

// cell локальная запись координаты для таблицы ниже
type cell struct{ row, col int }

// PlayLines таблица 40 линий. Порядок фиксирован, номер линии = индекс + 1
var PlayLines = mustPaylines([][]cell{
	// Горизонтальные (7 строк)
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}},
	{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
	{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}},
	{{3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}},
	{{4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6}},
	{{5, 0}, {5, 1}, {5, 2}, {5, 3}, {5, 4}, {5, 5}, {5, 6}},
	{{6, 0}, {6, 1}, {6, 2}, {6, 3}, {6, 4}, {6, 5}, {6, 6}},
	// Вертикальные (7 столбцов)
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}},
	{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}},
	{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {6, 2}},
	{{0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {5, 3}, {6, 3}},
	{{0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 4}, {6, 4}},
	{{0, 5}, {1, 5}, {2, 5}, {3, 5}, {4, 5}, {5, 5}, {6, 5}},
	{{0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}, {5, 6}, {6, 6}},
	// Диагонали
	{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}},
	{{0, 6}, {1, 5}, {2, 4}, {3, 3}, {4, 2}, {5, 1}, {6, 0}},
	// V
	{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 2}, {5, 1}, {6, 0}},
	{{0, 6}, {1, 5}, {2, 4}, {3, 3}, {4, 4}, {5, 5}, {6, 6}},
	// Зигзаги
	{{0, 0}, {1, 2}, {2, 4}, {3, 6}, {4, 4}, {5, 2}, {6, 0}},
	{{0, 6}, {1, 4}, {2, 2}, {3, 0}, {4, 2}, {5, 4}, {6, 6}},
	// Перевернутые V
	{{0, 0}, {1, 1}, {2, 2}, {3, 1}, {4, 2}, {5, 3}, {6, 4}},
	{{0, 6}, {1, 5}, {2, 4}, {3, 5}, {4, 4}, {5, 3}, {6, 2}},
	// W
	{{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0}, {5, 1}, {6, 0}},
	{{0, 6}, {1, 5}, {2, 6}, {3, 5}, {4, 6}, {5, 5}, {6, 6}},
	// Короткие (4-5 символов)
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	{{0, 3}, {0, 4}, {0, 5}, {0, 6}},
	{{3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}},
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	{{3, 3}, {4, 3}, {5, 3}, {6, 3}},
	{{0, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 6}},
	// Дополнительные
	{{0, 0}, {1, 2}, {2, 1}, {3, 3}, {4, 5}, {5, 4}, {6, 6}},
	{{0, 6}, {1, 4}, {2, 5}, {3, 3}, {4, 1}, {5, 2}, {6, 0}},
	{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 5}},
	{{0, 5}, {1, 4}, {2, 3}, {3, 2}, {4, 1}, {5, 0}, {6, 1}},
	{{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 1}, {5, 0}, {6, 0}},
	{{0, 6}, {1, 6}, {2, 5}, {3, 4}, {4, 5}, {5, 6}, {6, 6}},
	{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	{{4, 3}, {4, 4}, {4, 5}, {4, 6}},
	{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}},
	{{2, 5}, {3, 5}, {4, 5}, {5, 5}, {6, 5}},
})

// mustPaylines строит таблицу один раз при старте и падает на невалидных данных
func mustPaylines(raw [][]cell) []Payline {
	lines, err := buildPaylines(raw)
	if err != nil {
		panic(err)
	}
	return lines
}

func buildPaylines(raw [][]cell) ([]Payline, error) {
	if len(raw) != PaylineCount {
		return nil, fmt.Errorf("payline table: expected %d lines, got %d", PaylineCount, len(raw))
	}
	lines := make([]Payline, len(raw))
	for i, cells := range raw {
		line := make(Payline, len(cells))
		for j, c := range cells {
			line[j] = model.Point{Row: c.row, Col: c.col}
		}
		if err := ValidatePayline(line); err != nil {
			return nil, fmt.Errorf("payline %d: %w", i+1, err)
		}
		lines[i] = line
	}
	return lines, nil
}

// ValidatePayline проверяет длину 4..7, границы сетки и уникальность ячеек
func ValidatePayline(cells Payline) error {
	if len(cells) < 4 || len(cells) > FullLineLength {
		return fmt.Errorf("length %d out of range [4,%d]", len(cells), FullLineLength)
	}
	seen := make(map[model.Point]struct{}, len(cells))
	for _, c := range cells {
		if c.Row < 0 || c.Row >= GridRows || c.Col < 0 || c.Col >= GridCols {
			return fmt.Errorf("cell (%d,%d) out of bounds", c.Row, c.Col)
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("duplicate cell (%d,%d)", c.Row, c.Col)
		}
		seen[c] = struct{}{}
	}
	return nil
}
