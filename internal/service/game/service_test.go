package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/leaderboard_repo"
	"slot_machine/internal/repository/rtp_repo"
	"slot_machine/internal/repository/state_repo"
	"slot_machine/internal/repository/txnoop"
	"slot_machine/internal/service/slot"
)

type fixture struct {
	dir         string
	state       repository.StateRepository
	leaderboard repository.LeaderboardRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	return &fixture{
		dir:         dir,
		state:       state_repo.NewFileStateRepository(filepath.Join(dir, "save.json")),
		leaderboard: leaderboard_repo.NewFileLeaderboardRepository(filepath.Join(dir, "leaderboard.json"), zap.NewNop()),
	}
}

func (f *fixture) session(t *testing.T, e *slot.Engine) *serv {
	t.Helper()
	s := NewGameService(context.Background(), Deps{
		Engine:          e,
		StateRepo:       f.state,
		LeaderboardRepo: f.leaderboard,
		RTPRepo:         rtp_repo.NewRTPRepository(10),
		TxManager:       txnoop.New(),
		Log:             zap.NewNop(),
		Player:          "Tester",
	})
	return s.(*serv)
}

func TestSession_NewGame(t *testing.T) {
	f := newFixture(t)
	s := f.session(t, scripted(9))

	view := s.State(context.Background())
	assert.Equal(t, model.DefaultPlayerState(), view.State)
	assert.Equal(t, 1, view.Bet)
	assert.Equal(t, model.PhaseIdle, view.Phase)
	assert.Equal(t, "Tester", view.Player)
}

func TestSession_SpinPersists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.session(t, scripted(9, losingDraws(), noJackpot))

	res, err := s.Spin(ctx, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, res.RoundID)
	assert.False(t, res.CreatedAt.IsZero())

	want := model.PlayerState{
		Balance: 90,
		Jackpot: 1010,
		Stats:   model.Stats{Spins: 1, TotalBet: 10},
	}
	assert.Equal(t, want, s.State(ctx).State)
	assert.Equal(t, 10, s.State(ctx).Bet)

	saved, err := f.state.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, saved)

	// Новая сессия поднимает сохранение
	again := f.session(t, scripted(9))
	assert.Equal(t, want, again.State(ctx).State)
}

func TestSession_CorruptSaveStartsNewGame(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "save.json"), []byte(`{"state":`), 0o644))

	s := f.session(t, scripted(9))
	assert.Equal(t, model.DefaultPlayerState(), s.State(context.Background()).State)
}

func TestSession_Busy(t *testing.T) {
	ctx := context.Background()
	s := newFixture(t).session(t, scripted(9))

	s.mtx.Lock()
	_, err := s.Spin(ctx, 1)
	assert.ErrorIs(t, err, model.ErrBusy)
	_, err = s.Buy(ctx, model.ItemExtraSpin)
	assert.ErrorIs(t, err, model.ErrBusy)
	_, err = s.Reset(ctx)
	assert.ErrorIs(t, err, model.ErrBusy)
	s.mtx.Unlock()
}

func TestSession_GameOverAndReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.state.SaveState(ctx, model.PlayerState{Balance: 10, Jackpot: 1000}))

	s := f.session(t, scripted(9, losingDraws(), noJackpot))
	res, err := s.Spin(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseGameOver, res.Phase)
	assert.Equal(t, model.PhaseGameOver, s.State(ctx).Phase)

	_, err = s.Spin(ctx, 1)
	assert.ErrorIs(t, err, model.ErrGameOver)
	_, err = s.Buy(ctx, model.ItemExtraSpin)
	assert.ErrorIs(t, err, model.ErrGameOver)

	entries, err := s.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.LeaderboardEntry{{Name: "Tester", Score: 0}}, entries)

	// Выход после GameOver не дублирует запись
	_, err = s.Quit(ctx)
	require.NoError(t, err)
	entries, err = s.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	first, err := s.Reset(ctx)
	require.NoError(t, err)
	second, err := s.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPlayerState(), first)
	assert.Equal(t, first, second)

	view := s.State(ctx)
	assert.Equal(t, model.PhaseIdle, view.Phase)
	assert.Equal(t, 1, view.Bet)

	entries, err = s.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = f.state.LoadState(ctx)
	assert.ErrorIs(t, err, model.ErrStateNotFound)
}

func TestSession_LoadOutOfPlayIsGameOver(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.state.SaveState(ctx, model.PlayerState{Balance: 0, Jackpot: 1000}))

	s := f.session(t, scripted(9))
	view := s.State(ctx)
	assert.Equal(t, model.PhaseGameOver, view.Phase)
	assert.Equal(t, 0, view.Bet)
}

func TestSession_BuyAndQuit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.state.SaveState(ctx, model.PlayerState{Balance: 40, Jackpot: 1000, Credits: 120}))

	s := f.session(t, scripted(9))

	_, err := s.Buy(ctx, model.ItemBalanceBoost)
	require.NoError(t, err)

	_, err = s.Buy(ctx, model.ItemBalanceBoost)
	assert.ErrorIs(t, err, model.ErrInsufficientCredits)

	st, err := s.Quit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 140, st.Balance)
	assert.Equal(t, 20, st.Credits)

	saved, err := f.state.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, st, saved)

	entries, err := s.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.LeaderboardEntry{{Name: "Tester", Score: 140}}, entries)
}

func TestSession_Stats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.session(t, scripted(9, losingDraws(), noJackpot, losingDraws(), []int{0}, losingDraws(), noJackpot))

	for i := 0; i < 3; i++ {
		_, err := s.Spin(ctx, 10)
		require.NoError(t, err)
	}

	view := s.Stats()
	assert.Equal(t, model.Stats{Spins: 3, Wins: 1, TotalWon: 0, TotalBet: 30}, view.Stats)
	assert.Equal(t, "33.3", view.WinRate.StringFixed(1))
	assert.Equal(t, 3, view.TrackedSpins)
	// второй спин сорвал джекпот 1020
	assert.Equal(t, "3400", view.SessionRTP.String())
}

type failingStateRepo struct {
	repository.StateRepository
}

func (failingStateRepo) SaveState(context.Context, model.PlayerState) error {
	return errors.New("disk full")
}

func TestSession_PersistenceErrorIsSwallowed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.state = failingStateRepo{StateRepository: f.state}

	s := f.session(t, scripted(9, losingDraws(), noJackpot))
	res, err := s.Spin(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 90, res.State.Balance)
	assert.Equal(t, 90, s.State(ctx).State.Balance)
}

func TestSession_FailedSaveKeepsLeaderboardEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.state.SaveState(ctx, model.PlayerState{Balance: 10, Jackpot: 1000}))
	f.state = failingStateRepo{StateRepository: f.state}

	s := f.session(t, scripted(9, losingDraws(), noJackpot))
	res, err := s.Spin(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseGameOver, res.Phase)

	entries, err := s.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.LeaderboardEntry{{Name: "Tester", Score: 0}}, entries)
}

func TestNewGameService_OptionalDeps(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := NewGameService(ctx, Deps{
		Engine:          scripted(9, losingDraws(), noJackpot),
		StateRepo:       f.state,
		LeaderboardRepo: f.leaderboard,
		Player:          "Tester",
	})

	_, err := s.Spin(ctx, 10)
	require.NoError(t, err)
	view := s.Stats()
	assert.Equal(t, 1, view.TrackedSpins)
	assert.Equal(t, "0", view.SessionRTP.String())
}
