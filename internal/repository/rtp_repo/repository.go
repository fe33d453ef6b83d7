package rtp_repo

import (
	"sync"

	"github.com/shopspring/decimal"

	repoModel "slot_machine/internal/repository/rtp_repo/model"
)

// defaultWindowSize размер окна последних спинов
const defaultWindowSize = 500

var hundred = decimal.NewFromInt(100)

// StateRepo хранит статистику отдачи в памяти
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.RTPState
}

// NewRTPRepository Конструктор с пустой статистикой. windowSize <= 0 берет размер по умолчанию
func NewRTPRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		state: repoModel.RTPState{
			CurrentRTP: decimal.Zero,
			SpinWindow: make([]repoModel.SpinResult, 0, windowSize),
			WindowRTP:  decimal.Zero,
			WindowSize: windowSize,
		},
	}
}

// RTPState Копия текущей статистики
func (r *StateRepo) RTPState() repoModel.RTPState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	st := r.state
	st.SpinWindow = append([]repoModel.SpinResult(nil), r.state.SpinWindow...)
	return st
}

// UpdateState Обновление статистики после разрешенной сетки
func (r *StateRepo) UpdateState(bet, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	r.state.CurrentRTP = percent(r.state.TotalPayout, r.state.TotalBet)

	// Добавляем спин в окно и поддерживаем его размер
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{Bet: bet, Payout: payout})
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	var windowBet, windowPayout int
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}
	r.state.WindowRTP = percent(windowPayout, windowBet)
}

// percent payout/bet*100 с точностью до сотых, 0 при нулевой ставке
func percent(payout, bet int) decimal.Decimal {
	if bet <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(payout)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(bet))).
		Round(2)
}
