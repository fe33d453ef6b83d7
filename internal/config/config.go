package config

import (
	"github.com/joho/godotenv"

	"slot_machine/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// Драйверы хранилища
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Address() string
	Password() string
	DB() int
	Key() string
}

// StorageConfig выбор хранилищ состояния и таблицы рекордов
type StorageConfig interface {
	StateDriver() string
	SavePath() string
	LeaderboardDriver() string
	LeaderboardPath() string
}

type PlayerConfig interface {
	Name() string
}

type LogConfig interface {
	Level() string
	Development() bool
}

// StoreConfig каталог магазина в порядке показа
type StoreConfig interface {
	Items() []model.StoreItem
}
