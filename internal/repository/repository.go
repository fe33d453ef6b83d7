package repository

import (
	"context"

	"slot_machine/internal/model"
	rtpModel "slot_machine/internal/repository/rtp_repo/model"
)

// StateRepository хранилище состояния игрока.
// LoadState возвращает model.ErrStateNotFound или model.ErrCorruptState, если сохранения нет или оно битое
type StateRepository interface {
	LoadState(ctx context.Context) (model.PlayerState, error)
	SaveState(ctx context.Context, state model.PlayerState) error
	ResetState(ctx context.Context) error
}

// LeaderboardRepository таблица рекордов: не больше model.LeaderboardSize записей, по убыванию очков
type LeaderboardRepository interface {
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	AppendScore(ctx context.Context, name string, score int) error
	ClearLeaderboard(ctx context.Context) error
}

// RTPRepository статистика отдачи автомата в памяти процесса
type RTPRepository interface {
	UpdateState(bet, payout int)
	RTPState() rtpModel.RTPState
}
