package game

import (
	"slot_machine/internal/model"
	"slot_machine/internal/service/slot"
	servModel "slot_machine/internal/service/slot/model"
)

// Переходы автомата сессии. Функции не трогают хранилища: на вход состояние,
// на выход новое состояние, результат и очки, которые нужно записать в таблицу рекордов

// validateBet ставка в [1,100] и не больше баланса
func validateBet(st model.PlayerState, bet int) error {
	if bet < servModel.MinBet || bet > servModel.MaxBet {
		return model.ErrInvalidBet
	}
	if bet > st.Balance {
		return model.ErrBetExceedsBalance
	}
	return nil
}

// clampBet ставка не может превышать баланс; при пустом балансе 0
func clampBet(bet, balance int) int {
	if bet <= balance {
		return bet
	}
	if balance >= 1 {
		return balance
	}
	return 0
}

// initialBet ставка новой сессии
func initialBet(balance int) int {
	return clampBet(servModel.MinBet, balance)
}

// resolveSpin Idle -> Resolving -> (FreeSpins) -> Idle | GameOver.
// enter вызывается при смене фазы, может быть nil
func resolveSpin(e *slot.Engine, st model.PlayerState, bet int, enter func(model.Phase)) (*model.SpinResult, []int, error) {
	if err := validateBet(st, bet); err != nil {
		return nil, nil, err
	}
	if enter == nil {
		enter = func(model.Phase) {}
	}
	enter(model.PhaseResolving)

	res := &model.SpinResult{Bet: bet}
	var scores []int

	// Доп. спин не списывает ставку, не пополняет джекпот и не идет в total_bet
	if st.ExtraSpins > 0 {
		st.ExtraSpins--
		res.Events = append(res.Events, model.EventExtraSpinUsed)
	} else {
		st.Balance -= bet
		st.Jackpot += bet * servModel.JackpotIncrement
		st.Stats.TotalBet += bet
	}

	grid := e.GenerateGrid()
	eval := e.EvaluateLines(grid, bet)
	jackpot := e.CheckJackpot(bet, st.Jackpot)

	st.Balance += eval.TotalPayout + jackpot
	st.Credits += eval.BonusCredits
	st.Stats.Spins++
	if eval.Won() || jackpot > 0 {
		st.Stats.Wins++
		st.Stats.TotalWon += eval.TotalPayout + eval.BonusCredits
	}

	res.Grid = grid.Names()
	res.LineWins = eval.WinLines
	res.TotalPayout = eval.TotalPayout
	res.BonusCredits = eval.BonusCredits
	res.JackpotPayout = jackpot

	if jackpot > 0 {
		// Вклад текущего спина в пул сгорает вместе с пулом
		st.Jackpot = servModel.JackpotBase
		scores = append(scores, st.Balance)
		res.Events = append(res.Events, model.EventJackpot)
	}

	boosted := st.BonusChance
	st.BonusChance = false
	if boosted {
		res.Events = append(res.Events, model.EventBonusChanceUse)
	}

	if slot.CheckBonus(grid, boosted) {
		enter(model.PhaseFreeSpins)
		res.FreeSpins, res.FreeSpinWin = freeSpinLoop(e, &st, bet, servModel.FreeSpinCount)
		scores = append(scores, st.Balance)
		res.Events = append(res.Events, model.EventFreeSpins)
	}

	res.NextBet = clampBet(bet, st.Balance)
	if res.NextBet != bet {
		res.Events = append(res.Events, model.EventBetClamped)
	}

	res.Phase = model.PhaseIdle
	if st.OutOfPlay() {
		scores = append(scores, st.Balance)
		res.Phase = model.PhaseGameOver
		res.Events = append(res.Events, model.EventGameOver)
	}

	res.State = st
	enter(res.Phase)
	return res, scores, nil
}

// freeSpinLoop count бесплатных сеток подряд: только линии, без ставки, джекпота и повторного бонуса.
// Выигрыш раунда = выплата + бонусные кредиты, на баланс зачисляется после цикла
func freeSpinLoop(e *slot.Engine, st *model.PlayerState, bet, count int) ([]model.FreeSpinRound, int) {
	rounds := make([]model.FreeSpinRound, 0, count)
	winnings := 0

	for i := 0; i < count; i++ {
		grid := e.GenerateGrid()
		eval := e.EvaluateLines(grid, bet)

		winnings += eval.TotalPayout + eval.BonusCredits
		st.Credits += eval.BonusCredits
		st.Stats.Spins++
		if eval.Won() {
			st.Stats.Wins++
			st.Stats.TotalWon += eval.TotalPayout + eval.BonusCredits
		}

		rounds = append(rounds, model.FreeSpinRound{
			Grid:         grid.Names(),
			LineWins:     eval.WinLines,
			Payout:       eval.TotalPayout,
			BonusCredits: eval.BonusCredits,
		})
	}

	st.Balance += winnings
	return rounds, winnings
}

// applyPurchase покупка в магазине между спинами
func applyPurchase(
	e *slot.Engine,
	items []model.StoreItem,
	st model.PlayerState,
	bet int,
	id model.StoreItemID,
	enter func(model.Phase),
) (*model.PurchaseResult, []int, error) {
	item, ok := model.FindStoreItem(items, id)
	if !ok {
		return nil, nil, model.ErrUnknownItem
	}
	if st.Credits < item.Cost {
		return nil, nil, model.ErrInsufficientCredits
	}
	if enter == nil {
		enter = func(model.Phase) {}
	}

	st.Credits -= item.Cost
	res := &model.PurchaseResult{Item: item}
	var scores []int

	switch item.ID {
	case model.ItemExtraSpin:
		st.ExtraSpins += item.Amount
	case model.ItemBalanceBoost:
		st.Balance += item.Amount
	case model.ItemJackpotBoost:
		st.Jackpot += item.Amount
	case model.ItemFreeSpins:
		count := item.Amount
		if count <= 0 {
			count = servModel.FreeSpinCount
		}
		enter(model.PhaseFreeSpins)
		res.FreeSpins, res.FreeSpinWin = freeSpinLoop(e, &st, bet, count)
		scores = append(scores, st.Balance)
		res.Events = append(res.Events, model.EventFreeSpins)
	case model.ItemMysteryPrize:
		switch e.RandomInt(0, 2) {
		case 0:
			res.PrizeKind = model.PrizeCoins
			res.PrizeAmount = e.RandomInt(model.MysteryMin, model.MysteryMax)
			st.Balance += res.PrizeAmount
		case 1:
			res.PrizeKind = model.PrizeCredits
			res.PrizeAmount = e.RandomInt(model.MysteryMin, model.MysteryMax)
			st.Credits += res.PrizeAmount
		default:
			res.PrizeKind = model.PrizeExtraSpin
			res.PrizeAmount = 1
			st.ExtraSpins++
		}
	case model.ItemBonusChance:
		st.BonusChance = true
	}

	res.NextBet = clampBet(bet, st.Balance)
	if res.NextBet != bet {
		res.Events = append(res.Events, model.EventBetClamped)
	}

	// Покупка тратит только кредиты: баланс и доп. спины не уменьшаются, до GameOver не дойти
	res.Phase = model.PhaseIdle
	res.State = st
	enter(res.Phase)
	return res, scores, nil
}
