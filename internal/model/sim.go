package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimReport итог прогона спинов без хранилищ
type SimReport struct {
	Spins         int
	Bet           int
	TotalBet      int
	TotalReturn   int // выплаты по линиям, джекпоты и бесплатные спины
	Credits       int
	Hits          int // спины с выигрышем по линиям или джекпотом
	BonusTriggers int
	JackpotHits   int

	RTP       decimal.Decimal
	HitRate   decimal.Decimal
	BonusRate decimal.Decimal

	// Возврат спина на единицу ставки
	Mean   float64
	StdDev float64
	// Полуширина 95% доверительного интервала RTP, в процентах
	CI95 float64

	Elapsed time.Duration
}
