package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"
	"os"

	"github.com/Bourichi-Taha/Everlasting-client/internal/api"
	events_service "github.com/Bourichi-Taha/Everlasting-client/internal/business/events"
	"github.com/Bourichi-Taha/Everlasting-client/internal/config"
	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/database/category"
	"github.com/Bourichi-Taha/Everlasting-client/internal/database/events"
	"github.com/Bourichi-Taha/Everlasting-client/internal/database/location"
	"github.com/Bourichi-Taha/Everlasting-client/internal/database/user"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/jwt"
	"github.com/Bourichi-Taha/Everlasting-client/internal/redis"
	"github.com/Bourichi-Taha/Everlasting-client/migrations"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	locale, err := datetime.LocaleFor(config.Locale())
	if err != nil {
		logger.Fatalw("unsupported locale", "locale", config.Locale(), "err", err)
	}

	if err := os.MkdirAll(config.FilesDir(), 0755); err != nil {
		logger.Fatalw("unable to create files dir", "dir", config.FilesDir(), "err", err)
	}

	jwts := jwt.NewManager(config.Secret(), config.JwtTTL())

	redisPool := redis.NewRedisPool(config.RedisURL(), logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, config.SessionTTl(), logger)
	eventsCache := redis.NewEventsCache(redisPool, config.EventsCacheTTL())

	db, err := database.NewPGX(ctx, config.PostgresURL())
	if err != nil {
		logger.Fatalw("unable to initializae db", "err", err)
	}
	if err := db.Ping(ctx); err != nil {
		logger.Fatalw("db is unreachable", "err", err)
	}
	if config.AutoMigrate() {
		if err := database.Migrate(ctx, db, migrations.FS, logger); err != nil {
			logger.Fatalw("unable to migrate db", "err", err)
		}
	}
	usersRepository := user.NewRepository()
	categoriesRepository := category.NewRepository()
	locationsRepository := location.NewRepository()
	eventsRepository := events.NewRepository()

	eventsService := events_service.NewService(db, logger, eventsRepository, locationsRepository, eventsCache)

	handler, err := api.NewApi(
		logger,
		rand.Reader,
		api.Settings{
			SessionTokenLength: config.SessionTokenLength(),
			MaxFileSize:        config.MaxFileSize(),
			FilesDir:           config.FilesDir(),
		},
		locale,
		jwts,
		refreshTokens,
		db,
		usersRepository,
		categoriesRepository,
		eventsService,
	)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  handler,
		ErrorLog: errLogger,
	}

	go func() {
		logger.Infow("Started server", "port", config.Port())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorw("server error", "err", err)
			closer.Close()
		}
	}()

	closer.Bind(func() {
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Errorw("server shutdown", "err", err)
		}
	})
	closer.Hold()
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
