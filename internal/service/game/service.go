package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/rtp_repo"
	"slot_machine/internal/repository/txnoop"
	"slot_machine/internal/service"
	"slot_machine/internal/service/slot"
)

type serv struct {
	// Спин, покупка, сброс и выход берут mtx через TryLock: параллельный запрос получает ErrBusy
	mtx sync.RWMutex

	engine          *slot.Engine
	stateRepo       repository.StateRepository
	leaderboardRepo repository.LeaderboardRepository
	rtpRepo         repository.RTPRepository
	txManager       trm.Manager
	log             *zap.Logger

	player string
	items  []model.StoreItem

	state model.PlayerState
	bet   int
	phase model.Phase
}

// Deps зависимости сессии
type Deps struct {
	Engine          *slot.Engine
	StateRepo       repository.StateRepository
	LeaderboardRepo repository.LeaderboardRepository
	RTPRepo         repository.RTPRepository
	TxManager       trm.Manager
	Log             *zap.Logger
	Player          string
	Items           []model.StoreItem
}

// NewGameService Поднимает сессию из сохранения.
// Нет сохранения или оно битое - новая игра, ошибка только в лог
func NewGameService(ctx context.Context, deps Deps) service.GameService {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	items := deps.Items
	if items == nil {
		items = model.DefaultStoreItems()
	}
	rtp := deps.RTPRepo
	if rtp == nil {
		rtp = rtp_repo.NewRTPRepository(0)
	}
	txManager := deps.TxManager
	if txManager == nil {
		txManager = txnoop.New()
	}

	s := &serv{
		engine:          deps.Engine,
		stateRepo:       deps.StateRepo,
		leaderboardRepo: deps.LeaderboardRepo,
		rtpRepo:         rtp,
		txManager:       txManager,
		log:             log.With(zap.String("player", deps.Player)),
		player:          deps.Player,
		items:           items,
	}

	s.state = s.loadState(ctx)
	s.bet = initialBet(s.state.Balance)
	s.phase = model.PhaseIdle
	if s.state.OutOfPlay() {
		s.phase = model.PhaseGameOver
	}

	return s
}

func (s *serv) loadState(ctx context.Context) model.PlayerState {
	st, err := s.stateRepo.LoadState(ctx)
	switch {
	case err == nil:
		return st
	case errors.Is(err, model.ErrStateNotFound):
		s.log.Info("no saved state, starting new game")
	case errors.Is(err, model.ErrCorruptState):
		s.log.Warn("saved state is corrupt, starting new game", zap.Error(err))
	default:
		s.log.Error("failed to load state, starting new game", zap.Error(err))
	}
	return model.DefaultPlayerState()
}

// State - текущий снимок сессии
func (s *serv) State(_ context.Context) model.SessionView {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return model.SessionView{
		Player: s.player,
		State:  s.state,
		Bet:    s.bet,
		Phase:  s.phase,
	}
}

// Spin - один спин со ставкой bet. Ставка становится текущей ставкой сессии
func (s *serv) Spin(ctx context.Context, bet int) (*model.SpinResult, error) {
	if !s.mtx.TryLock() {
		return nil, model.ErrBusy
	}
	defer s.mtx.Unlock()

	if s.phase == model.PhaseGameOver {
		return nil, model.ErrGameOver
	}

	prev := s.phase
	res, scores, err := resolveSpin(s.engine, s.state, bet, s.enter)
	if err != nil {
		s.phase = prev
		return nil, err
	}

	res.RoundID = uuid.NewString()
	res.CreatedAt = time.Now()

	s.state = res.State
	s.bet = res.NextBet

	staked := bet
	if res.Has(model.EventExtraSpinUsed) {
		staked = 0
	}
	s.rtpRepo.UpdateState(staked, res.TotalPayout+res.JackpotPayout+res.FreeSpinWin)

	s.log.Info("spin resolved",
		zap.String("round_id", res.RoundID),
		zap.Int("bet", bet),
		zap.Int("payout", res.TotalPayout),
		zap.Int("bonus_credits", res.BonusCredits),
		zap.Int("jackpot", res.JackpotPayout),
		zap.Int("free_spin_win", res.FreeSpinWin),
		zap.Int("balance", s.state.Balance),
		zap.Any("events", res.Events),
	)

	s.persist(ctx, scores)
	return res, nil
}

// Store - каталог магазина
func (s *serv) Store() []model.StoreItem {
	return append([]model.StoreItem(nil), s.items...)
}

// Buy - покупка за кредиты
func (s *serv) Buy(ctx context.Context, id model.StoreItemID) (*model.PurchaseResult, error) {
	if !s.mtx.TryLock() {
		return nil, model.ErrBusy
	}
	defer s.mtx.Unlock()

	if s.phase == model.PhaseGameOver {
		return nil, model.ErrGameOver
	}

	prev := s.phase
	res, scores, err := applyPurchase(s.engine, s.items, s.state, s.bet, id, s.enter)
	if err != nil {
		s.phase = prev
		return nil, err
	}

	s.state = res.State
	s.bet = res.NextBet
	if res.FreeSpinWin > 0 {
		s.rtpRepo.UpdateState(0, res.FreeSpinWin)
	}

	s.log.Info("item purchased",
		zap.String("item", string(res.Item.ID)),
		zap.Int("cost", res.Item.Cost),
		zap.String("prize_kind", string(res.PrizeKind)),
		zap.Int("prize_amount", res.PrizeAmount),
		zap.Int("credits", s.state.Credits),
	)

	s.persist(ctx, scores)
	return res, nil
}

// Leaderboard - таблица рекордов
func (s *serv) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	return s.leaderboardRepo.Leaderboard(ctx)
}

// Stats - статистика игрока и отдача автомата
func (s *serv) Stats() model.StatsView {
	s.mtx.RLock()
	stats := s.state.Stats
	s.mtx.RUnlock()

	rtp := s.rtpRepo.RTPState()
	return model.StatsView{
		Stats:        stats,
		WinRate:      model.WinRate(stats),
		TrackedSpins: rtp.TotalSpins,
		SessionRTP:   rtp.CurrentRTP,
		WindowRTP:    rtp.WindowRTP,
	}
}

// Reset - стирает сохранение и таблицу рекордов, начинает новую игру
func (s *serv) Reset(ctx context.Context) (model.PlayerState, error) {
	if !s.mtx.TryLock() {
		return model.PlayerState{}, model.ErrBusy
	}
	defer s.mtx.Unlock()

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.stateRepo.ResetState(txCtx); err != nil {
			return err
		}
		return s.leaderboardRepo.ClearLeaderboard(txCtx)
	})
	if err != nil {
		s.log.Error("failed to reset storage", zap.Error(err))
	}

	s.state = model.DefaultPlayerState()
	s.bet = initialBet(s.state.Balance)
	s.phase = model.PhaseIdle

	s.log.Info("game reset")
	return s.state, nil
}

// Quit - записывает результат в таблицу рекордов и сохраняет состояние.
// После GameOver результат уже записан
func (s *serv) Quit(ctx context.Context) (model.PlayerState, error) {
	if !s.mtx.TryLock() {
		return model.PlayerState{}, model.ErrBusy
	}
	defer s.mtx.Unlock()

	var scores []int
	if s.phase != model.PhaseGameOver {
		scores = append(scores, s.state.Balance)
	}

	s.log.Info("player quit", zap.Int("balance", s.state.Balance))
	s.persist(ctx, scores)
	return s.state, nil
}

func (s *serv) enter(p model.Phase) {
	s.phase = p
}

// persist записывает результаты и сохраняет состояние.
// Каждый вызов независим: сбой одного не отменяет другой и не ломает сессию.
// Общая транзакция есть только когда оба хранилища в Postgres
func (s *serv) persist(ctx context.Context, scores []int) {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var errs []error
		for _, score := range scores {
			if err := s.leaderboardRepo.AppendScore(txCtx, s.player, score); err != nil {
				errs = append(errs, fmt.Errorf("append score %d: %w", score, err))
			}
		}
		if err := s.stateRepo.SaveState(txCtx, s.state); err != nil {
			errs = append(errs, fmt.Errorf("save state: %w", err))
		}
		return errors.Join(errs...)
	})
	if err != nil {
		s.log.Error("failed to persist state", zap.Error(err), zap.Ints("scores", scores))
	}
}
