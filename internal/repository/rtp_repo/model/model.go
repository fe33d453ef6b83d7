package model

import "github.com/shopspring/decimal"

// RTPState статистика отдачи автомата
type RTPState struct {
	TotalSpins  int // Сколько всего разрешено сеток
	TotalBet    int // Сумма всех ставок
	TotalPayout int // Сумма всех выплат

	CurrentRTP decimal.Decimal // (TotalPayout/TotalBet)*100

	SpinWindow []SpinResult    // Окно последних спинов
	WindowRTP  decimal.Decimal // RTP в окне последних спинов
	WindowSize int             // Размер окна
}

// SpinResult спин в окне
type SpinResult struct {
	Bet    int
	Payout int
}
