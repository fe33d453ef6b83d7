package state_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
)

const (
	table          = "player_state"
	colPlayer      = "player"
	colBalance     = "balance"
	colJackpot     = "jackpot"
	colCredits     = "credits"
	colExtraSpins  = "extra_spins"
	colBonusChance = "bonus_chance"
	colSpins       = "spins"
	colWins        = "wins"
	colTotalWon    = "total_won"
	colTotalBet    = "total_bet"
	colUpdatedAt   = "updated_at"
)

const schema = `CREATE TABLE IF NOT EXISTS player_state (
	player       TEXT PRIMARY KEY,
	balance      BIGINT NOT NULL,
	jackpot      BIGINT NOT NULL,
	credits      BIGINT NOT NULL,
	extra_spins  BIGINT NOT NULL,
	bonus_chance BOOLEAN NOT NULL DEFAULT FALSE,
	spins        BIGINT NOT NULL,
	wins         BIGINT NOT NULL,
	total_won    BIGINT NOT NULL,
	total_bet    BIGINT NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	player string
}

// NewPGStateRepository хранилище состояния в Postgres, одна строка на игрока
func NewPGStateRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter, player string) repository.StateRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: getter,
		player: player,
	}
}

// CreateSchema - создает таблицу состояния, если ее нет
func CreateSchema(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, schema)
	return err
}

// LoadState - читает строку игрока
func (r *pgRepo) LoadState(ctx context.Context) (model.PlayerState, error) {
	// Формируем запрос
	query := sq.Select(colBalance, colJackpot, colCredits, colExtraSpins, colBonusChance,
		colSpins, colWins, colTotalWon, colTotalBet).
		From(table).
		Where(sq.Eq{colPlayer: r.player}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.PlayerState{}, err
	}

	var s model.PlayerState
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&s.Balance, &s.Jackpot, &s.Credits, &s.ExtraSpins, &s.BonusChance,
		&s.Stats.Spins, &s.Stats.Wins, &s.Stats.TotalWon, &s.Stats.TotalBet,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PlayerState{}, model.ErrStateNotFound
		}
		return model.PlayerState{}, err
	}

	if err = validateState(s); err != nil {
		return model.PlayerState{}, err
	}

	return s, nil
}

// SaveState - вставляет или обновляет строку игрока
func (r *pgRepo) SaveState(ctx context.Context, s model.PlayerState) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colPlayer, colBalance, colJackpot, colCredits, colExtraSpins, colBonusChance,
			colSpins, colWins, colTotalWon, colTotalBet).
		Values(r.player, s.Balance, s.Jackpot, s.Credits, s.ExtraSpins, s.BonusChance,
			s.Stats.Spins, s.Stats.Wins, s.Stats.TotalWon, s.Stats.TotalBet).
		Suffix(`ON CONFLICT (player) DO UPDATE SET
			balance = EXCLUDED.balance,
			jackpot = EXCLUDED.jackpot,
			credits = EXCLUDED.credits,
			extra_spins = EXCLUDED.extra_spins,
			bonus_chance = EXCLUDED.bonus_chance,
			spins = EXCLUDED.spins,
			wins = EXCLUDED.wins,
			total_won = EXCLUDED.total_won,
			total_bet = EXCLUDED.total_bet,
			` + colUpdatedAt + ` = NOW()`).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ResetState - удаляет строку игрока
func (r *pgRepo) ResetState(ctx context.Context) error {
	query := sq.Delete(table).
		Where(sq.Eq{colPlayer: r.player}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
