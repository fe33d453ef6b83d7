package service

import (
	"context"

	"slot_machine/internal/model"
)

// GameService сессия одного игрока: спины, магазин, рекорды.
// Спин и покупка не реентерабельны: пока идет одна, другая получает model.ErrBusy
type GameService interface {
	State(ctx context.Context) model.SessionView
	Spin(ctx context.Context, bet int) (*model.SpinResult, error)
	Store() []model.StoreItem
	Buy(ctx context.Context, item model.StoreItemID) (*model.PurchaseResult, error)
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	Stats() model.StatsView
	Reset(ctx context.Context) (model.PlayerState, error)
	Quit(ctx context.Context) (model.PlayerState, error)
}
