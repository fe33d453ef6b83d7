package slot

import servModel "slot_machine/internal/service/slot/model"

// CheckJackpot возвращает сумму пула при выигрыше, иначе 0.
// Вне диапазона ставок [1,100] случайность не тратится. Пул не сбрасывается здесь
func (e *Engine) CheckJackpot(bet, pool int) int {
	if bet < servModel.MinBet || bet > servModel.MaxBet {
		return 0
	}
	if e.rng.IntN(servModel.JackpotOdds) != servModel.JackpotWinDraw {
		return 0
	}
	return pool
}
