package env

import (
	"strconv"
	"strings"

	"slot_machine/internal/config"
)

const (
	playerNameName    = "PLAYER_NAME"
	logLevelName      = "LOG_LEVEL"
	logDevName        = "LOG_DEV"
	defaultPlayerName = "Player"
	defaultLogLevel   = "info"
)

type playerConfig struct {
	name string
}

func NewPlayerConfig() (config.PlayerConfig, error) {
	return &playerConfig{
		name: strings.TrimSpace(getenv(playerNameName, defaultPlayerName)),
	}, nil
}

func (cfg *playerConfig) Name() string {
	if cfg.name == "" {
		return defaultPlayerName
	}
	return cfg.name
}

type logConfig struct {
	level string
	dev   bool
}

func NewLogConfig() (config.LogConfig, error) {
	dev := false
	if raw := getenv(logDevName, ""); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		dev = parsed
	}

	return &logConfig{
		level: getenv(logLevelName, defaultLogLevel),
		dev:   dev,
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Development() bool {
	return cfg.dev
}
