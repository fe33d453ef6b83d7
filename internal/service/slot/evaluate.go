package slot

import (
	"slot_machine/internal/model"
	servModel "slot_machine/internal/service/slot/model"
)

// EvaluateLines проверяет все 40 линий в порядке таблицы
func (e *Engine) EvaluateLines(grid servModel.Grid, bet int) Evaluation {
	var res Evaluation

	for i, line := range servModel.PlayLines {
		ref, ok := matchLine(&grid, line)
		if !ok {
			continue
		}

		payout := bet * EffectiveMultiplier(ref, line.Len())
		res.TotalPayout += payout
		// Кредиты за каждую линию, независимо от размера выплаты
		res.BonusCredits += between(e.rng, servModel.BonusCreditsMin, servModel.BonusCreditsMax)

		cells := make([]model.Point, len(line))
		copy(cells, line)
		res.WinLines = append(res.WinLines, model.WinLine{
			Line:   i + 1,
			Symbol: ref.Name(),
			Payout: payout,
			Cells:  cells,
		})
	}
	return res
}

// matchLine возвращает опорный символ и признак совпадения линии.
// Опорный = первый не-wild символ; если вся линия wild, то сам wild
func matchLine(grid *servModel.Grid, line servModel.Payline) (servModel.Symbol, bool) {
	ref := grid.At(line[0].Row, line[0].Col)
	for _, p := range line {
		if s := grid.At(p.Row, p.Col); s != servModel.Wild {
			ref = s
			break
		}
	}

	for _, p := range line {
		s := grid.At(p.Row, p.Col)
		if s != ref && s != servModel.Wild {
			return ref, false
		}
	}
	return ref, true
}

// EffectiveMultiplier множитель линии с учетом длины:
// короткая линия из младших фруктов платит x1, прочие короткие половину (вниз), полная без изменений
func EffectiveMultiplier(sym servModel.Symbol, lineLen int) int {
	base := sym.Multiplier()
	if lineLen < servModel.FullLineLength {
		if sym.IsLowFruit() {
			return 1
		}
		return base / 2
	}
	return base
}
