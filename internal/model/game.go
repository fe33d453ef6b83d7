package model

import "time"

// Stats накопительная статистика игрока
type Stats struct {
	Spins    int `json:"spins"`
	Wins     int `json:"wins"`
	TotalWon int `json:"total_won"`
	TotalBet int `json:"total_bet"`
}

// PlayerState состояние игрока, которое переживает перезапуск процесса
type PlayerState struct {
	Balance     int   `json:"balance"`
	Jackpot     int   `json:"jackpot"`
	Credits     int   `json:"credits"`
	ExtraSpins  int   `json:"extra_spins"`
	Stats       Stats `json:"stats"`
	BonusChance bool  `json:"bonus_chance"`
}

// Значения состояния по умолчанию (новая игра)
const (
	DefaultBalance = 100
	DefaultJackpot = 1000
)

// DefaultPlayerState возвращает состояние новой игры
func DefaultPlayerState() PlayerState {
	return PlayerState{
		Balance: DefaultBalance,
		Jackpot: DefaultJackpot,
	}
}

// OutOfPlay true, когда нечем больше крутить
func (s PlayerState) OutOfPlay() bool {
	return s.Balance <= 0 && s.ExtraSpins <= 0
}

type LeaderboardEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// LeaderboardSize сколько записей хранит таблица рекордов
const LeaderboardSize = 5

// Point координата ячейки сетки (строка, столбец)
type Point struct {
	Row int
	Col int
}

// WinLine выигрышная линия
type WinLine struct {
	Line   int // номер линии, с 1
	Symbol string
	Payout int
	Cells  []Point
}

// FreeSpinRound один бесплатный спин внутри бонуса
type FreeSpinRound struct {
	Grid         [][]string
	LineWins     []WinLine
	Payout       int
	BonusCredits int
}

type Event string

const (
	EventExtraSpinUsed  Event = "extra_spin_used"
	EventJackpot        Event = "jackpot"
	EventFreeSpins      Event = "free_spins"
	EventBonusChanceUse Event = "bonus_chance_used"
	EventBetClamped     Event = "bet_clamped"
	EventGameOver       Event = "game_over"
)

// SpinResult результат одного перехода автомата по спину
type SpinResult struct {
	RoundID       string
	CreatedAt     time.Time
	Bet           int
	Grid          [][]string
	LineWins      []WinLine
	TotalPayout   int
	BonusCredits  int
	JackpotPayout int
	FreeSpins     []FreeSpinRound
	FreeSpinWin   int
	Events        []Event
	State         PlayerState
	NextBet       int
	Phase         Phase
}

// Has проверяет, произошло ли событие
func (r *SpinResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}

// Phase фаза автомата сессии
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseResolving Phase = "resolving"
	PhaseFreeSpins Phase = "free_spins"
	PhaseGameOver  Phase = "game_over"
)
