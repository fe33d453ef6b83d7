package leaderboard_repo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
)

const (
	table    = "leaderboard"
	colID    = "id"
	colName  = "name"
	colScore = "score"
)

const schema = `CREATE TABLE IF NOT EXISTS leaderboard (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	score      BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type pgRepo struct {
	dbc       *pgxpool.Pool
	getter    *trmpgx.CtxGetter
	txManager trm.Manager
}

// NewPGLeaderboardRepository таблица рекордов в Postgres
func NewPGLeaderboardRepository(
	dbc *pgxpool.Pool,
	getter *trmpgx.CtxGetter,
	txManager trm.Manager,
) repository.LeaderboardRepository {
	return &pgRepo{
		dbc:       dbc,
		getter:    getter,
		txManager: txManager,
	}
}

// CreateSchema - создает таблицу рекордов, если ее нет
func CreateSchema(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, schema)
	return err
}

// Leaderboard - лучшие результаты, при равенстве очков раньше записанный выше
func (r *pgRepo) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	query := sq.Select(colName, colScore).
		From(table).
		OrderBy(colScore+" DESC", colID+" ASC").
		Limit(model.LeaderboardSize).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.LeaderboardEntry, 0, model.LeaderboardSize)
	for rows.Next() {
		var e model.LeaderboardEntry
		if err = rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// AppendScore - вставка и обрезка таблицы до model.LeaderboardSize в одной транзакции
func (r *pgRepo) AppendScore(ctx context.Context, name string, score int) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		conn := r.getter.DefaultTrOrDB(txCtx, r.dbc)

		insert := sq.Insert(table).
			Columns(colName, colScore).
			Values(name, score).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err = conn.Exec(txCtx, sqlStr, args...); err != nil {
			return err
		}

		trim := sq.Delete(table).
			Where(colID+" NOT IN (SELECT "+colID+" FROM "+table+
				" ORDER BY "+colScore+" DESC, "+colID+" ASC LIMIT ?)", model.LeaderboardSize).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = trim.ToSql()
		if err != nil {
			return err
		}
		_, err = conn.Exec(txCtx, sqlStr, args...)
		return err
	})
}

// ClearLeaderboard - очищает таблицу
func (r *pgRepo) ClearLeaderboard(ctx context.Context) error {
	sqlStr, args, err := sq.Delete(table).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
