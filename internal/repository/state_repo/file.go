package state_repo

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/crypto/blake2b"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/pkg/fsutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// saveFile формат файла сохранения: состояние и контрольная сумма его сериализации
type saveFile struct {
	State    jsoniter.RawMessage `json:"state"`
	Checksum string              `json:"checksum"`
}

type fileRepo struct {
	mtx  sync.Mutex
	path string
}

// NewFileStateRepository хранилище состояния в JSON-файле
func NewFileStateRepository(path string) repository.StateRepository {
	return &fileRepo{
		path: path,
	}
}

// LoadState - читает состояние из файла
// Файла нет - model.ErrStateNotFound, не сходится формат или контрольная сумма - model.ErrCorruptState
func (r *fileRepo) LoadState(_ context.Context) (model.PlayerState, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.PlayerState{}, model.ErrStateNotFound
		}
		return model.PlayerState{}, fmt.Errorf("read save %s: %w", r.path, err)
	}

	var file saveFile
	if err = json.Unmarshal(data, &file); err != nil {
		return model.PlayerState{}, fmt.Errorf("%w: %v", model.ErrCorruptState, err)
	}
	if len(file.State) == 0 || file.Checksum != checksum(file.State) {
		return model.PlayerState{}, fmt.Errorf("%w: checksum mismatch", model.ErrCorruptState)
	}

	var state model.PlayerState
	if err = json.Unmarshal(file.State, &state); err != nil {
		return model.PlayerState{}, fmt.Errorf("%w: %v", model.ErrCorruptState, err)
	}
	if err = validateState(state); err != nil {
		return model.PlayerState{}, err
	}

	return state, nil
}

// SaveState - пишет состояние во временный файл и переименовывает его поверх сохранения
func (r *fileRepo) SaveState(_ context.Context, state model.PlayerState) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	data, err := json.Marshal(saveFile{State: raw, Checksum: checksum(raw)})
	if err != nil {
		return err
	}

	return fsutil.WriteAtomic(r.path, data)
}

// ResetState - удаляет файл сохранения
func (r *fileRepo) ResetState(_ context.Context) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// validateState отбрасывает состояния, которые игра не может породить
func validateState(s model.PlayerState) error {
	switch {
	case s.Balance < 0, s.Credits < 0, s.ExtraSpins < 0:
		return fmt.Errorf("%w: negative counters", model.ErrCorruptState)
	case s.Jackpot < model.DefaultJackpot:
		return fmt.Errorf("%w: jackpot below base", model.ErrCorruptState)
	case s.Stats.Spins < 0, s.Stats.Wins < 0, s.Stats.Wins > s.Stats.Spins,
		s.Stats.TotalWon < 0, s.Stats.TotalBet < 0:
		return fmt.Errorf("%w: inconsistent stats", model.ErrCorruptState)
	}
	return nil
}
