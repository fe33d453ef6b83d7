package model

import "github.com/shopspring/decimal"

// SessionView снимок сессии для показа
type SessionView struct {
	Player string
	State  PlayerState
	Bet    int
	Phase  Phase
}

// StatsView статистика игрока и отдачи автомата за время работы процесса
type StatsView struct {
	Stats        Stats
	WinRate      decimal.Decimal // wins/spins*100, один знак после запятой
	TrackedSpins int
	SessionRTP   decimal.Decimal
	WindowRTP    decimal.Decimal
}

// WinRate процент выигрышных спинов с округлением до десятых
func WinRate(s Stats) decimal.Decimal {
	if s.Spins <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.Wins)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(s.Spins))).
		Round(1)
}
