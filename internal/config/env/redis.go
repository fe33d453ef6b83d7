package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"slot_machine/internal/config"
)

const (
	redisAddrName     = "REDIS_ADDR"
	redisPasswordName = "REDIS_PASSWORD"
	redisDBName       = "REDIS_DB"
	redisKeyName      = "REDIS_KEY"

	defaultRedisKey = "slot:leaderboard"
)

type redisConfig struct {
	address  string
	password string
	db       int
	key      string
}

func NewRedisConfig() (config.RedisConfig, error) {
	addr := os.Getenv(redisAddrName)
	if len(addr) == 0 {
		return nil, errors.New("redis address not found")
	}

	db := 0
	if raw := os.Getenv(redisDBName); len(raw) != 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid redis db: %w", err)
		}
		db = parsed
	}

	key := os.Getenv(redisKeyName)
	if len(key) == 0 {
		key = defaultRedisKey
	}

	return &redisConfig{
		address:  addr,
		password: os.Getenv(redisPasswordName),
		db:       db,
		key:      key,
	}, nil
}

func (cfg *redisConfig) Address() string {
	return cfg.address
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}

func (cfg *redisConfig) Key() string {
	return cfg.key
}
