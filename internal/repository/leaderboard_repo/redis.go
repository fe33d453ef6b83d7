package leaderboard_repo

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
)

// DefaultRedisKey ключ отсортированного множества рекордов
const DefaultRedisKey = "slot:leaderboard"

// redisMember член множества: одинаковые имена с одинаковыми очками не должны схлопываться.
// Order идет первым полем: при равных очках Redis сравнивает члены побайтно,
// и более ранняя запись должна оказаться выше
type redisMember struct {
	Order string `json:"order"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}

// newRedisMember член для seq-й записи: чем раньше запись, тем больше Order
func newRedisMember(seq int64, name string) ([]byte, error) {
	return json.Marshal(redisMember{
		Order: fmt.Sprintf("%019d", math.MaxInt64-seq),
		ID:    uuid.NewString(),
		Name:  name,
	})
}

type redisRepo struct {
	client redis.UniversalClient
	key    string
}

// NewRedisLeaderboardRepository таблица рекордов в отсортированном множестве Redis
func NewRedisLeaderboardRepository(client redis.UniversalClient, key string) repository.LeaderboardRepository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisRepo{
		client: client,
		key:    key,
	}
}

// Leaderboard - лучшие результаты по убыванию
func (r *redisRepo) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	list, err := r.client.ZRevRangeWithScores(ctx, r.key, 0, model.LeaderboardSize-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(list))
	for _, z := range list {
		raw, _ := z.Member.(string)

		var m redisMember
		if err = json.Unmarshal([]byte(raw), &m); err != nil {
			// Член, записанный не нами, показываем как есть
			m.Name = raw
		}
		entries = append(entries, model.LeaderboardEntry{Name: m.Name, Score: int(z.Score)})
	}

	return entries, nil
}

func (r *redisRepo) seqKey() string {
	return r.key + ":seq"
}

// AppendScore - ZADD и обрезка до model.LeaderboardSize одной транзакцией MULTI/EXEC.
// При равенстве очков вытесняется более поздняя запись, как в файле и Postgres
func (r *redisRepo) AppendScore(ctx context.Context, name string, score int) error {
	seq, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return err
	}

	member, err := newRedisMember(seq, name)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, r.key, redis.Z{Score: float64(score), Member: string(member)})
		// Ранги по возрастанию: удаляем все, кроме LeaderboardSize старших
		pipe.ZRemRangeByRank(ctx, r.key, 0, -int64(model.LeaderboardSize)-1)
		return nil
	})
	return err
}

// ClearLeaderboard - удаляет ключи множества и счетчика
func (r *redisRepo) ClearLeaderboard(ctx context.Context) error {
	return r.client.Del(ctx, r.key, r.seqKey()).Err()
}
