package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-finance/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-finance/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-finance/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-finance/internal/config"
	"github.com/comitanigiacomo/kanso-finance/internal/core/currency"
	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
	"github.com/comitanigiacomo/kanso-finance/internal/core/services"
	"github.com/comitanigiacomo/kanso-finance/internal/core/workers"
)

const broadcastBuffer = 32

type repositories struct {
	users        domain.UserRepository
	profiles     domain.ProfileRepository
	transactions domain.TransactionRepository
	challenges   domain.ChallengeRepository
}

type application struct {
	router *gin.Engine
	db     *sqlx.DB
	redis  *redis.Client

	broadcaster *currency.Broadcaster
	cancel      context.CancelFunc
}

// Close stops the background workers and releases connections.
func (a *application) Close() {
	a.cancel()
	a.broadcaster.Close()
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func newApplication(cfg *config.Config, logger *zap.Logger) (*application, error) {
	startTime := time.Now()
	ctx, cancel := context.WithCancel(context.Background())

	app := &application{
		broadcaster: currency.NewBroadcaster(broadcastBuffer),
		cancel:      cancel,
	}

	repos := repositories{
		users:        repository.NewInMemoryUserRepository(),
		profiles:     repository.NewInMemoryProfileRepository(),
		transactions: repository.NewInMemoryTransactionRepository(),
		challenges:   repository.NewInMemoryChallengeRepository(),
	}

	if cfg.DB.Enabled {
		db, err := connectDB(cfg, logger)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.db = db

		repos = repositories{
			users:        repository.NewPostgresUserRepository(db),
			profiles:     repository.NewPostgresProfileRepository(db),
			transactions: repository.NewPostgresTransactionRepository(db),
			challenges:   repository.NewPostgresChallengeRepository(db),
		}
	} else {
		logger.Warn("database disabled, records are kept in memory")
	}

	var (
		preferences  domain.CurrencyPreferenceStore = cache.NewInMemoryPreferenceStore()
		insightCache domain.InsightsCache           = cache.NewInMemoryInsightsCache()
		notifier     services.CurrencyNotifier      = app.broadcaster
	)

	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			logger.Warn("redis unavailable, using in-process caches", zap.Error(err))
		} else {
			app.redis = rdb
			logger.Info("redis connected", zap.String("host", cfg.Redis.Host))

			preferences = cache.NewRedisPreferenceStore(rdb)
			insightCache = cache.NewRedisInsightsCache(rdb)
			repos.transactions = repository.NewCachedTransactionRepository(repos.transactions, rdb, 0, logger)

			if err := cache.RelayCurrencyChanges(ctx, rdb, app.broadcaster, logger); err != nil {
				logger.Warn("currency changes stay local to this instance", zap.Error(err))
			} else {
				notifier = cache.NewRedisChangeNotifier(rdb)
			}
		}
	}

	tokenService := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, repos.users)
	authService := services.NewAuthService(repos.users, tokenService)

	currencyService := services.NewCurrencyService(preferences, notifier, cfg.DefaultCurrency, logger)
	insightsService := services.NewInsightsService(
		repos.profiles, repos.transactions, repos.challenges,
		currencyService, insightCache, cfg.InsightsCacheTTL, logger,
	)

	worker := workers.NewInsightsWorker(insightsService, workers.DefaultQueueSize, logger)
	worker.Start(ctx)

	changes, unsubscribe := app.broadcaster.Subscribe()
	go func() {
		<-ctx.Done()
		unsubscribe()
	}()
	worker.WatchCurrency(ctx, changes)

	queue := services.NewInvalidatingQueue(insightsService, worker)

	app.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:        adapterHTTP.NewAuthHandler(authService),
		ProfileHandler:     adapterHTTP.NewProfileHandler(services.NewProfileService(repos.profiles, queue)),
		TransactionHandler: adapterHTTP.NewTransactionHandler(services.NewTransactionService(repos.transactions, queue)),
		ChallengeHandler:   adapterHTTP.NewChallengeHandler(services.NewChallengeService(repos.challenges, queue)),
		InsightsHandler:    adapterHTTP.NewInsightsHandler(insightsService),
		CurrencyHandler:    adapterHTTP.NewCurrencyHandler(currencyService),
		Tokens:             tokenService,
		DB:                 app.db,
		Redis:              app.redis,
		Logger:             logger,
		RateLimit:          cfg.RateLimit.Limit,
		RateLimitWindow:    cfg.RateLimit.Window,
		StartTime:          startTime,
	})

	return app, nil
}

func connectDB(cfg *config.Config, logger *zap.Logger) (*sqlx.DB, error) {
	logger.Info("connecting to database", zap.String("host", cfg.DB.Host), zap.String("name", cfg.DB.Name))

	db, err := sqlx.Connect("pgx", cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if cfg.RunMigrations {
		if err := repository.RunMigrations(cfg.DB.DSN()); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	return db, nil
}
