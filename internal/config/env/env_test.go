package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_machine/internal/config"
	"slot_machine/internal/model"
)

func TestNewStoreConfigFromYAML_Missing(t *testing.T) {
	cfg, err := NewStoreConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultStoreItems(), cfg.Items())
}

func TestNewStoreConfigFromYAML_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	content := `items:
  - id: extra_spin
    cost: 10
  - id: balance_boost
    amount: 250
    name: Big Boost
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewStoreConfigFromYAML(path)
	require.NoError(t, err)

	items := cfg.Items()
	require.Len(t, items, 6)

	extra, ok := model.FindStoreItem(items, model.ItemExtraSpin)
	require.True(t, ok)
	assert.Equal(t, 10, extra.Cost)
	assert.Equal(t, 1, extra.Amount)

	boost, ok := model.FindStoreItem(items, model.ItemBalanceBoost)
	require.True(t, ok)
	assert.Equal(t, "Big Boost", boost.Name)
	assert.Equal(t, 100, boost.Cost)
	assert.Equal(t, 250, boost.Amount)
}

func TestNewStoreConfigFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "неизвестная позиция", content: "items:\n  - id: lottery\n    cost: 1\n"},
		{name: "отрицательная цена", content: "items:\n  - id: extra_spin\n    cost: -5\n"},
		{name: "битый YAML", content: "items: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "store.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewStoreConfigFromYAML(path)
			assert.Error(t, err)
		})
	}
}

func TestNewStorageConfig(t *testing.T) {
	t.Run("по умолчанию файлы", func(t *testing.T) {
		t.Setenv(storageDriverName, "")
		t.Setenv(leaderboardDriverName, "")

		cfg, err := NewStorageConfig()
		require.NoError(t, err)
		assert.Equal(t, config.DriverFile, cfg.StateDriver())
		assert.Equal(t, config.DriverFile, cfg.LeaderboardDriver())
		assert.Equal(t, defaultSavePath, cfg.SavePath())
	})

	t.Run("рекорды следуют за состоянием", func(t *testing.T) {
		t.Setenv(storageDriverName, config.DriverPostgres)
		t.Setenv(leaderboardDriverName, "")

		cfg, err := NewStorageConfig()
		require.NoError(t, err)
		assert.Equal(t, config.DriverPostgres, cfg.LeaderboardDriver())
	})

	t.Run("redis для рекордов", func(t *testing.T) {
		t.Setenv(storageDriverName, config.DriverFile)
		t.Setenv(leaderboardDriverName, config.DriverRedis)

		cfg, err := NewStorageConfig()
		require.NoError(t, err)
		assert.Equal(t, config.DriverRedis, cfg.LeaderboardDriver())
	})

	t.Run("redis не хранит состояние", func(t *testing.T) {
		t.Setenv(storageDriverName, config.DriverRedis)

		_, err := NewStorageConfig()
		assert.Error(t, err)
	})
}

func TestNewRedisConfig(t *testing.T) {
	t.Setenv(redisAddrName, "localhost:6379")
	t.Setenv(redisDBName, "3")
	t.Setenv(redisKeyName, "")

	cfg, err := NewRedisConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DB())
	assert.Equal(t, defaultRedisKey, cfg.Key())

	t.Setenv(redisDBName, "x")
	_, err = NewRedisConfig()
	assert.Error(t, err)
}

func TestNewPlayerConfig(t *testing.T) {
	t.Setenv(playerNameName, "   ")
	cfg, err := NewPlayerConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultPlayerName, cfg.Name())

	t.Setenv(playerNameName, "Alice")
	cfg, err = NewPlayerConfig()
	require.NoError(t, err)
	assert.Equal(t, "Alice", cfg.Name())
}
