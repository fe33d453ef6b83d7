package leaderboard_repo

import (
	"context"
	"errors"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/pkg/fsutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileRepo struct {
	mtx  sync.Mutex
	path string
	log  *zap.Logger
}

// NewFileLeaderboardRepository таблица рекордов в JSON-файле
func NewFileLeaderboardRepository(path string, log *zap.Logger) repository.LeaderboardRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &fileRepo{
		path: path,
		log:  log,
	}
}

// Leaderboard - читает таблицу. Нет файла или он битый - пустая таблица
func (r *fileRepo) Leaderboard(_ context.Context) ([]model.LeaderboardEntry, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.read()
}

// AppendScore - добавляет результат и переписывает файл
func (r *fileRepo) AppendScore(_ context.Context, name string, score int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	entries, err := r.read()
	if err != nil {
		return err
	}
	entries = insertScore(entries, model.LeaderboardEntry{Name: name, Score: score})

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return fsutil.WriteAtomic(r.path, data)
}

// ClearLeaderboard - удаляет файл таблицы
func (r *fileRepo) ClearLeaderboard(_ context.Context) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (r *fileRepo) read() ([]model.LeaderboardEntry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.LeaderboardEntry{}, nil
		}
		return nil, err
	}

	var entries []model.LeaderboardEntry
	if err = json.Unmarshal(data, &entries); err != nil {
		r.log.Warn("leaderboard file is corrupt, starting empty",
			zap.String("path", r.path), zap.Error(err))
		return []model.LeaderboardEntry{}, nil
	}

	// Файл мог быть отредактирован руками
	sorted := make([]model.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		sorted = insertScore(sorted, e)
	}
	return sorted, nil
}
