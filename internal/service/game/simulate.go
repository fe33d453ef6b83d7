package game

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/service/slot"
	servModel "slot_machine/internal/service/slot/model"
)

// ctxCheckEvery как часто прогон проверяет отмену контекста
const ctxCheckEvery = 1024

// Simulate прогоняет spins спинов со ставкой bet через те же переходы, что и сессия,
// но без хранилищ и магазина. tick вызывается после каждого спина, может быть nil
func Simulate(
	ctx context.Context,
	e *slot.Engine,
	rtp repository.RTPRepository,
	spins, bet int,
	tick func(),
) (model.SimReport, error) {
	if spins < 1 {
		return model.SimReport{}, fmt.Errorf("%w: spins must be positive", model.ErrValidation)
	}
	if bet < servModel.MinBet || bet > servModel.MaxBet {
		return model.SimReport{}, model.ErrInvalidBet
	}

	start := time.Now()
	report := model.SimReport{Spins: spins, Bet: bet}
	returns := make([]float64, 0, spins)

	// Баланса хватает на все ставки, чтобы прогон не упирался в GameOver
	st := model.DefaultPlayerState()
	st.Balance = spins*bet + bet

	for i := 0; i < spins; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return model.SimReport{}, err
			}
		}

		balance := st.Balance
		res, _, err := resolveSpin(e, st, bet, nil)
		if err != nil {
			return model.SimReport{}, err
		}
		st = res.State

		won := res.TotalPayout + res.JackpotPayout + res.FreeSpinWin
		report.TotalBet += bet
		report.TotalReturn += won
		report.Credits += res.BonusCredits
		for _, round := range res.FreeSpins {
			report.Credits += round.BonusCredits
		}
		if len(res.LineWins) > 0 || res.JackpotPayout > 0 {
			report.Hits++
		}
		if res.Has(model.EventFreeSpins) {
			report.BonusTriggers++
		}
		if res.Has(model.EventJackpot) {
			report.JackpotHits++
		}

		// Баланс после спина = до - ставка + выигрыш
		if st.Balance != balance-bet+won {
			return model.SimReport{}, fmt.Errorf("balance drift on spin %d: %d != %d", i, st.Balance, balance-bet+won)
		}

		if rtp != nil {
			rtp.UpdateState(bet, won)
		}
		returns = append(returns, float64(won)/float64(bet))

		if tick != nil {
			tick()
		}
	}

	n := decimal.NewFromInt(int64(spins))
	hundred := decimal.NewFromInt(100)
	report.RTP = decimal.NewFromInt(int64(report.TotalReturn)).Mul(hundred).
		Div(decimal.NewFromInt(int64(report.TotalBet))).Round(2)
	report.HitRate = decimal.NewFromInt(int64(report.Hits)).Mul(hundred).Div(n).Round(2)
	report.BonusRate = decimal.NewFromInt(int64(report.BonusTriggers)).Mul(hundred).Div(n).Round(4)

	report.Mean, report.StdDev = stat.MeanStdDev(returns, nil)
	if math.IsNaN(report.StdDev) {
		report.StdDev = 0
	}
	z := distuv.UnitNormal.Quantile(0.975)
	report.CI95 = z * report.StdDev / math.Sqrt(float64(spins)) * 100

	report.Elapsed = time.Since(start)
	return report, nil
}
