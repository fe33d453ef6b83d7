package slot

import servModel "slot_machine/internal/service/slot/model"

// CheckBonus запуск бесплатных спинов.
// Обычный режим: средняя строка целиком из wild. С усилением: любая строка
func CheckBonus(grid servModel.Grid, boosted bool) bool {
	if !boosted {
		return grid.RowIs(servModel.BonusRow, servModel.Wild)
	}
	for r := 0; r < servModel.GridRows; r++ {
		if grid.RowIs(r, servModel.Wild) {
			return true
		}
	}
	return false
}
