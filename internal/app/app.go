package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"slot_machine/internal/config"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

// NewApp читает .env (если есть) и готовит провайдер зависимостей
func NewApp() *App {
	a := &App{}
	// .env необязателен
	_ = config.Load(".env")
	a.initServiceProvider()
	return a
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает HTTP-сервер и останавливает его по отмене ctx
func (s *App) Run(ctx context.Context) error {
	log := s.ServiceProvider.Logger()
	addr := s.ServiceProvider.HTTPCfg().Address()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Close освобождает ресурсы провайдера
func (s *App) Close() {
	s.ServiceProvider.Close()
}
