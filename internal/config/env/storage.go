package env

import (
	"fmt"
	"os"

	"slot_machine/internal/config"
)

const (
	storageDriverName     = "STORAGE_DRIVER"
	savePathName          = "SAVE_PATH"
	leaderboardDriverName = "LEADERBOARD_DRIVER"
	leaderboardPathName   = "LEADERBOARD_PATH"

	defaultSavePath        = "slot_machine_save.json"
	defaultLeaderboardPath = "leaderboard.json"
)

type storageConfig struct {
	stateDriver       string
	savePath          string
	leaderboardDriver string
	leaderboardPath   string
}

// NewStorageConfig По умолчанию все хранится в файлах рядом с бинарником.
// Таблица рекордов без явного драйвера живет там же, где состояние
func NewStorageConfig() (config.StorageConfig, error) {
	stateDriver := getenv(storageDriverName, config.DriverFile)
	switch stateDriver {
	case config.DriverFile, config.DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", stateDriver)
	}

	lbDriver := getenv(leaderboardDriverName, stateDriver)
	switch lbDriver {
	case config.DriverFile, config.DriverPostgres, config.DriverRedis:
	default:
		return nil, fmt.Errorf("unknown leaderboard driver %q", lbDriver)
	}

	return &storageConfig{
		stateDriver:       stateDriver,
		savePath:          getenv(savePathName, defaultSavePath),
		leaderboardDriver: lbDriver,
		leaderboardPath:   getenv(leaderboardPathName, defaultLeaderboardPath),
	}, nil
}

func (cfg *storageConfig) StateDriver() string {
	return cfg.stateDriver
}

func (cfg *storageConfig) SavePath() string {
	return cfg.savePath
}

func (cfg *storageConfig) LeaderboardDriver() string {
	return cfg.leaderboardDriver
}

func (cfg *storageConfig) LeaderboardPath() string {
	return cfg.leaderboardPath
}

func getenv(name, def string) string {
	if v := os.Getenv(name); len(v) != 0 {
		return v
	}
	return def
}
