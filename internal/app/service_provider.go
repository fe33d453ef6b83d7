package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	gameAPI "slot_machine/internal/api/game"
	"slot_machine/internal/config"
	"slot_machine/internal/config/env"
	"slot_machine/internal/logger"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/leaderboard_repo"
	"slot_machine/internal/repository/rtp_repo"
	"slot_machine/internal/repository/state_repo"
	"slot_machine/internal/repository/txnoop"
	"slot_machine/internal/service"
	"slot_machine/internal/service/game"
	"slot_machine/internal/service/slot"
)

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	log    *zap.Logger

	//TXManager
	txManager        trm.Manager
	sessionTxManager trm.Manager

	// Storage
	storageCfg  config.StorageConfig
	pgConfig    config.PGConfig
	dbClient    *pgxpool.Pool
	redisConfig config.RedisConfig
	redisClient redis.UniversalClient

	// Game bits
	playerCfg       config.PlayerConfig
	playerName      string
	storeCfg        config.StoreConfig
	engine          *slot.Engine
	stateRepo       repository.StateRepository
	leaderboardRepo repository.LeaderboardRepository
	rtpRepo         repository.RTPRepository
	gameServ        service.GameService
	gameHand        *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		log, err := logger.New(sp.LogCfg().Level(), sp.LogCfg().Development())
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.log = log
	}
	return sp.log
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if sp.redisClient == nil {
		client := redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Address(),
			Password: sp.RedisConfig().Password(),
			DB:       sp.RedisConfig().DB(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = client
	}
	return sp.redisClient
}

// usesPostgres хотя бы одно хранилище в Postgres
func (sp *ServiceProvider) usesPostgres() bool {
	return sp.StorageCfg().StateDriver() == config.DriverPostgres ||
		sp.StorageCfg().LeaderboardDriver() == config.DriverPostgres
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if !sp.usesPostgres() {
			sp.txManager = txnoop.New()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

// SessionTXManager общая транзакция для сохранения и рекордов сессии.
// Только когда оба хранилища в Postgres, иначе вызовы независимы
func (sp *ServiceProvider) SessionTXManager(ctx context.Context) trm.Manager {
	if sp.sessionTxManager == nil {
		cfg := sp.StorageCfg()
		if cfg.StateDriver() == config.DriverPostgres && cfg.LeaderboardDriver() == config.DriverPostgres {
			sp.sessionTxManager = sp.TXManager(ctx)
		} else {
			sp.sessionTxManager = txnoop.New()
		}
	}
	return sp.sessionTxManager
}

func (sp *ServiceProvider) PlayerCfg() config.PlayerConfig {
	if sp.playerCfg == nil {
		cfg, err := env.NewPlayerConfig()
		if err != nil {
			panic("failed to get player config: " + err.Error())
		}
		sp.playerCfg = cfg
	}
	return sp.playerCfg
}

// SetPlayerName имя игрока поверх PLAYER_NAME, до первого обращения к сессии
func (sp *ServiceProvider) SetPlayerName(name string) {
	sp.playerName = name
}

func (sp *ServiceProvider) PlayerName() string {
	if sp.playerName == "" {
		sp.playerName = sp.PlayerCfg().Name()
	}
	return sp.playerName
}

func (sp *ServiceProvider) StoreCfg() config.StoreConfig {
	if sp.storeCfg == nil {
		cfg, err := env.NewStoreConfigFromEnv()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeCfg = cfg
	}
	return sp.storeCfg
}

func (sp *ServiceProvider) Engine() *slot.Engine {
	if sp.engine == nil {
		sp.engine = slot.NewEngine(slot.NewCryptoRNG())
	}
	return sp.engine
}

func (sp *ServiceProvider) StateRepository(ctx context.Context) repository.StateRepository {
	if sp.stateRepo == nil {
		switch sp.StorageCfg().StateDriver() {
		case config.DriverPostgres:
			if err := state_repo.CreateSchema(ctx, sp.DBClient(ctx)); err != nil {
				panic("failed to create state schema: " + err.Error())
			}
			sp.stateRepo = state_repo.NewPGStateRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter, sp.PlayerName())
		default:
			sp.stateRepo = state_repo.NewFileStateRepository(sp.StorageCfg().SavePath())
		}
	}
	return sp.stateRepo
}

func (sp *ServiceProvider) LeaderboardRepository(ctx context.Context) repository.LeaderboardRepository {
	if sp.leaderboardRepo == nil {
		switch sp.StorageCfg().LeaderboardDriver() {
		case config.DriverPostgres:
			if err := leaderboard_repo.CreateSchema(ctx, sp.DBClient(ctx)); err != nil {
				panic("failed to create leaderboard schema: " + err.Error())
			}
			sp.leaderboardRepo = leaderboard_repo.NewPGLeaderboardRepository(
				sp.DBClient(ctx), trmpgx.DefaultCtxGetter, sp.TXManager(ctx))
		case config.DriverRedis:
			sp.leaderboardRepo = leaderboard_repo.NewRedisLeaderboardRepository(
				sp.RedisClient(ctx), sp.RedisConfig().Key())
		default:
			sp.leaderboardRepo = leaderboard_repo.NewFileLeaderboardRepository(
				sp.StorageCfg().LeaderboardPath(), sp.Logger())
		}
	}
	return sp.leaderboardRepo
}

func (sp *ServiceProvider) RTPRepository() repository.RTPRepository {
	if sp.rtpRepo == nil {
		sp.rtpRepo = rtp_repo.NewRTPRepository(0)
	}
	return sp.rtpRepo
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(ctx, game.Deps{
			Engine:          sp.Engine(),
			StateRepo:       sp.StateRepository(ctx),
			LeaderboardRepo: sp.LeaderboardRepository(ctx),
			RTPRepo:         sp.RTPRepository(),
			TxManager:       sp.SessionTXManager(ctx),
			Log:             sp.Logger().Named("game"),
			Player:          sp.PlayerName(),
			Items:           sp.StoreCfg().Items(),
		})
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
			Log:  sp.Logger().Named("api"),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(requestLogger(sp.Logger().Named("http")))
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Get("/state", gameHandler.State)
		r.Post("/spin", gameHandler.Spin)
		r.Get("/stats", gameHandler.Stats)
		r.Get("/leaderboard", gameHandler.Leaderboard)
		r.Post("/reset", gameHandler.Reset)
		r.Post("/quit", gameHandler.Quit)
		r.Route("/store", func(rr chi.Router) {
			rr.Get("/", gameHandler.Store)
			rr.Post("/buy", gameHandler.Buy)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения и сбрасывает буфер логгера
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
