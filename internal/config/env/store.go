package env

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"slot_machine/internal/config"
	"slot_machine/internal/model"
)

const (
	storeConfigName     = "STORE_CONFIG"
	defaultStoreCfgPath = "store.yaml"
)

// storeFile структура YAML-файла каталога
type storeFile struct {
	Items []model.StoreItem `yaml:"items"`
}

type storeConfig struct {
	items []model.StoreItem
}

// NewStoreConfigFromEnv Путь берется из STORE_CONFIG
func NewStoreConfigFromEnv() (config.StoreConfig, error) {
	return NewStoreConfigFromYAML(getenv(storeConfigName, defaultStoreCfgPath))
}

// NewStoreConfigFromYAML Каталог из YAML поверх встроенного.
// Файла нет - встроенный каталог. В файле можно менять цену, величину и описание известных позиций
func NewStoreConfigFromYAML(path string) (config.StoreConfig, error) {
	items := model.DefaultStoreItems()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &storeConfig{items: items}, nil
		}
		return nil, err
	}

	var file storeFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse store config %s: %w", path, err)
	}

	for _, override := range file.Items {
		idx := -1
		for i := range items {
			if items[i].ID == override.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("store config %s: unknown item %q", path, override.ID)
		}
		if override.Cost < 0 || override.Amount < 0 {
			return nil, fmt.Errorf("store config %s: item %q has negative values", path, override.ID)
		}

		if override.Name != "" {
			items[idx].Name = override.Name
		}
		if override.Description != "" {
			items[idx].Description = override.Description
		}
		if override.Cost > 0 {
			items[idx].Cost = override.Cost
		}
		if override.Amount > 0 {
			items[idx].Amount = override.Amount
		}
	}

	return &storeConfig{items: items}, nil
}

func (cfg *storeConfig) Items() []model.StoreItem {
	return append([]model.StoreItem(nil), cfg.items...)
}
