package game

type SpinRequest struct {
	Bet int `json:"bet"`
}

type BuyRequest struct {
	Item string `json:"item"`
}

type Stats struct {
	Spins    int `json:"spins"`
	Wins     int `json:"wins"`
	TotalWon int `json:"total_won"`
	TotalBet int `json:"total_bet"`
}

type PlayerState struct {
	Balance     int   `json:"balance"`
	Jackpot     int   `json:"jackpot"`
	Credits     int   `json:"credits"`
	ExtraSpins  int   `json:"extra_spins"`
	BonusChance bool  `json:"bonus_chance"`
	Stats       Stats `json:"stats"`
}

type StateResponse struct {
	Player string      `json:"player"`
	State  PlayerState `json:"state"`
	Bet    int         `json:"bet"`
	Phase  string      `json:"phase"`
}

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type WinLine struct {
	Line   int    `json:"line"`
	Symbol string `json:"symbol"`
	Payout int    `json:"payout"`
	Cells  []Cell `json:"cells"`
}

type FreeSpinRound struct {
	Grid         [][]string `json:"grid"`
	LineWins     []WinLine  `json:"line_wins"`
	Payout       int        `json:"payout"`
	BonusCredits int        `json:"bonus_credits"`
}

type SpinResponse struct {
	RoundID       string          `json:"round_id"`
	CreatedAt     string          `json:"created_at"`
	Bet           int             `json:"bet"`
	Grid          [][]string      `json:"grid"`
	LineWins      []WinLine       `json:"line_wins"`
	TotalPayout   int             `json:"total_payout"`
	BonusCredits  int             `json:"bonus_credits"`
	JackpotPayout int             `json:"jackpot_payout"`
	FreeSpins     []FreeSpinRound `json:"free_spins,omitempty"`
	FreeSpinWin   int             `json:"free_spin_win"`
	Events        []string        `json:"events"`
	State         PlayerState     `json:"state"`
	NextBet       int             `json:"next_bet"`
	Phase         string          `json:"phase"`
}

type StoreItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Amount      int    `json:"amount,omitempty"`
	Description string `json:"description"`
}

type PurchaseResponse struct {
	Item        StoreItem       `json:"item"`
	PrizeKind   string          `json:"prize_kind,omitempty"`
	PrizeAmount int             `json:"prize_amount,omitempty"`
	FreeSpins   []FreeSpinRound `json:"free_spins,omitempty"`
	FreeSpinWin int             `json:"free_spin_win"`
	Events      []string        `json:"events"`
	State       PlayerState     `json:"state"`
	NextBet     int             `json:"next_bet"`
	Phase       string          `json:"phase"`
}

type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type StatsResponse struct {
	Stats        Stats  `json:"stats"`
	WinRate      string `json:"win_rate"`
	TrackedSpins int    `json:"tracked_spins"`
	SessionRTP   string `json:"session_rtp"`
	WindowRTP    string `json:"window_rtp"`
}
