package txnoop

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Manager trm.Manager для хранилищ без транзакций (файлы, Redis): просто вызывает fn
type Manager struct{}

func New() trm.Manager {
	return Manager{}
}

func (Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (Manager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
