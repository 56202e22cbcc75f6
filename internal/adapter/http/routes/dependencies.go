package routes

import (
	"context"
	"fmt"

	"probuilder/internal/adapter/http/middleware"
	"probuilder/internal/adapter/persistence/repository"
	"probuilder/internal/infrastructure/cache"
	"probuilder/internal/infrastructure/config"
	"probuilder/internal/infrastructure/database"
	"probuilder/internal/infrastructure/session"
	"probuilder/internal/infrastructure/storage"
	"probuilder/internal/usecase"
	"probuilder/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// buildDependencies connects the configured store, the optional Redis and
// MinIO services, and builds the use cases. The returned cleanup releases
// every opened connection.
func buildDependencies(ctx context.Context, cfg *config.Config) (Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (Dependencies, func(), error) {
		cleanup()
		return Dependencies{}, func() {}, err
	}

	repo, closeStore, err := buildQuoteRequestRepository(ctx, cfg)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closeStore)

	tokens, err := session.NewJWTTokens(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return fail(fmt.Errorf("session tokens: %w", err))
	}

	var revocations interfaces.ISessionRevocations
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func() { _ = client.Close() })
		revocations = cache.NewRedisSessionRevocations(client)
	} else {
		log.Info("Redis not configured; logout will only clear the browser cookie")
	}

	var images interfaces.IImageStorage
	if cfg.MinIO.Enabled() {
		minioImages, err := storage.NewMinIOImageStorage(ctx, cfg.MinIO)
		if err != nil {
			return fail(err)
		}
		images = minioImages
	} else {
		log.Info("MinIO not configured; project images will be ignored")
	}

	deps := Dependencies{
		QuoteRequests: usecase.NewQuoteRequestUseCase(repo, images, cfg.MaxImageBytes),
		AdminAuth:     usecase.NewAdminAuthUseCase(cfg.Admin.Password, tokens, revocations),
		Cookies: middleware.CookieOptions{
			Secure: cfg.Session.CookieSecure,
			MaxAge: cfg.Session.TTL,
		},
		MaxImageBytes: cfg.MaxImageBytes,
		StaticDir:     cfg.StaticDir,
	}
	return deps, cleanup, nil
}

func buildQuoteRequestRepository(ctx context.Context, cfg *config.Config) (interfaces.IQuoteRequestRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, err
		}
		if cfg.DynamoDB.Endpoint != "" {
			// local DynamoDB starts empty
			if _, err := database.EnsureDynamoDBTable(ctx, ddb, cfg.Store.Table); err != nil {
				log.WithError(err).Warn("could not ensure the quote requests table")
			}
		}
		log.WithField("table", cfg.Store.Table).Info("Using DynamoDB store")
		return repository.NewQuoteRequestDynamoRepository(ddb, cfg.Store.Table), func() {}, nil

	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		db, err := database.OpenGorm(cfg.Store)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("gorm sql handle: %w", err)
		}
		closeDB := func() { _ = sqlDB.Close() }

		repo := repository.NewQuoteRequestGormRepository(db, cfg.Store.Table)
		if cfg.Store.Driver == config.StoreDriverSQLite {
			if err := repo.Migrate(); err != nil {
				closeDB()
				return nil, nil, fmt.Errorf("migrate sqlite store: %w", err)
			}
		}
		log.WithFields(log.Fields{"driver": cfg.Store.Driver, "table": cfg.Store.Table}).Info("Using relational store")
		return repo, closeDB, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
