package slot

import (
	"slot_machine/internal/model"
	servModel "slot_machine/internal/service/slot/model"
)

// Engine движок разрешения спина: сетка, линии, джекпот, бонус
type Engine struct {
	rng RNG
}

// NewEngine создает движок. nil означает криптостойкий источник
func NewEngine(rng RNG) *Engine {
	if rng == nil {
		rng = NewCryptoRNG()
	}
	return &Engine{rng: rng}
}

// Evaluation результат проверки всех линий
type Evaluation struct {
	TotalPayout  int
	WinLines     []model.WinLine
	BonusCredits int
}

// Won хотя бы одна линия сыграла
func (e Evaluation) Won() bool {
	return len(e.WinLines) > 0
}

// RandomInt равномерное число из [lo, hi] тем же источником, что и спин
func (e *Engine) RandomInt(lo, hi int) int {
	return between(e.rng, lo, hi)
}

// GenerateGrid генерирует сетку 7x7: каждая ячейка независимо и равномерно из алфавита
func (e *Engine) GenerateGrid() servModel.Grid {
	var grid servModel.Grid
	for r := 0; r < servModel.GridRows; r++ {
		for c := 0; c < servModel.GridCols; c++ {
			grid[r][c] = servModel.Symbols[e.rng.IntN(servModel.SymbolCount)]
		}
	}
	return grid
}
