package converter

import (
	"time"

	dto "slot_machine/internal/api/dto/game"
	"slot_machine/internal/model"
)

func ToStoreItemID(req dto.BuyRequest) model.StoreItemID {
	return model.StoreItemID(req.Item)
}

func ToStateResponse(view model.SessionView) dto.StateResponse {
	return dto.StateResponse{
		Player: view.Player,
		State:  toPlayerState(view.State),
		Bet:    view.Bet,
		Phase:  string(view.Phase),
	}
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		RoundID:       res.RoundID,
		CreatedAt:     res.CreatedAt.UTC().Format(time.RFC3339Nano),
		Bet:           res.Bet,
		Grid:          res.Grid,
		LineWins:      toWinLines(res.LineWins),
		TotalPayout:   res.TotalPayout,
		BonusCredits:  res.BonusCredits,
		JackpotPayout: res.JackpotPayout,
		FreeSpins:     toFreeSpins(res.FreeSpins),
		FreeSpinWin:   res.FreeSpinWin,
		Events:        toEvents(res.Events),
		State:         toPlayerState(res.State),
		NextBet:       res.NextBet,
		Phase:         string(res.Phase),
	}
}

func ToStoreResponse(items []model.StoreItem) []dto.StoreItem {
	result := make([]dto.StoreItem, len(items))
	for i, it := range items {
		result[i] = toStoreItem(it)
	}
	return result
}

func ToPurchaseResponse(res model.PurchaseResult) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		Item:        toStoreItem(res.Item),
		PrizeKind:   string(res.PrizeKind),
		PrizeAmount: res.PrizeAmount,
		FreeSpins:   toFreeSpins(res.FreeSpins),
		FreeSpinWin: res.FreeSpinWin,
		Events:      toEvents(res.Events),
		State:       toPlayerState(res.State),
		NextBet:     res.NextBet,
		Phase:       string(res.Phase),
	}
}

func ToLeaderboardResponse(entries []model.LeaderboardEntry) []dto.LeaderboardEntry {
	result := make([]dto.LeaderboardEntry, len(entries))
	for i, e := range entries {
		result[i] = dto.LeaderboardEntry{
			Rank:  i + 1,
			Name:  e.Name,
			Score: e.Score,
		}
	}
	return result
}

func ToStatsResponse(view model.StatsView) dto.StatsResponse {
	return dto.StatsResponse{
		Stats:        toStats(view.Stats),
		WinRate:      view.WinRate.StringFixed(1),
		TrackedSpins: view.TrackedSpins,
		SessionRTP:   view.SessionRTP.StringFixed(2),
		WindowRTP:    view.WindowRTP.StringFixed(2),
	}
}

func ToPlayerStateResponse(st model.PlayerState) dto.PlayerState {
	return toPlayerState(st)
}

func toPlayerState(st model.PlayerState) dto.PlayerState {
	return dto.PlayerState{
		Balance:     st.Balance,
		Jackpot:     st.Jackpot,
		Credits:     st.Credits,
		ExtraSpins:  st.ExtraSpins,
		BonusChance: st.BonusChance,
		Stats:       toStats(st.Stats),
	}
}

func toStats(s model.Stats) dto.Stats {
	return dto.Stats{
		Spins:    s.Spins,
		Wins:     s.Wins,
		TotalWon: s.TotalWon,
		TotalBet: s.TotalBet,
	}
}

func toStoreItem(it model.StoreItem) dto.StoreItem {
	return dto.StoreItem{
		ID:          string(it.ID),
		Name:        it.Name,
		Cost:        it.Cost,
		Amount:      it.Amount,
		Description: it.Description,
	}
}

func toWinLines(lines []model.WinLine) []dto.WinLine {
	result := make([]dto.WinLine, len(lines))
	for i, l := range lines {
		cells := make([]dto.Cell, len(l.Cells))
		for j, p := range l.Cells {
			cells[j] = dto.Cell{Row: p.Row, Col: p.Col}
		}
		result[i] = dto.WinLine{
			Line:   l.Line,
			Symbol: l.Symbol,
			Payout: l.Payout,
			Cells:  cells,
		}
	}
	return result
}

func toFreeSpins(rounds []model.FreeSpinRound) []dto.FreeSpinRound {
	if len(rounds) == 0 {
		return nil
	}
	result := make([]dto.FreeSpinRound, len(rounds))
	for i, r := range rounds {
		result[i] = dto.FreeSpinRound{
			Grid:         r.Grid,
			LineWins:     toWinLines(r.LineWins),
			Payout:       r.Payout,
			BonusCredits: r.BonusCredits,
		}
	}
	return result
}

func toEvents(events []model.Event) []string {
	result := make([]string, len(events))
	for i, e := range events {
		result[i] = string(e)
	}
	return result
}
