package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/stocknest/stocknest_app/internal/adapters/cache"
	"github.com/stocknest/stocknest_app/internal/adapters/database/pgsql"
	"github.com/stocknest/stocknest_app/internal/adapters/database/sqlite"
	portsrepo "github.com/stocknest/stocknest_app/internal/core/ports/repositories"
	"github.com/stocknest/stocknest_app/internal/core/services"
	"github.com/stocknest/stocknest_app/internal/handlers"
	"github.com/stocknest/stocknest_app/internal/middleware"
	"github.com/stocknest/stocknest_app/pkg/config"
	"github.com/stocknest/stocknest_app/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()
	logger.Info("Storage backend ready", slog.String("backend", string(cfg.Backend)))

	summaryCache := buildSummaryCache(cfg, logger)

	container := services.NewServiceContainer(repos, services.ContainerOptions{
		JWTSecret:                cfg.JWTSecret,
		JWTExpiry:                cfg.JWTExpiryDuration,
		JWTIssuer:                cfg.JWTIssuer,
		DeleteItemsWithoutImages: cfg.DeleteItemsWithoutImages,
		SummaryCache:             summaryCache,
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories assembles the repository set for the configured backend
// and returns a cleanup closing whatever it opened.
func buildRepositories(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.Backend {
	case config.BackendRemote:
		pool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			pool.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	default:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if err := sqlite.EnsureSchema(db); err != nil {
			db.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return sqlite.NewRepositoryProvider(db), func() { db.Close() }, nil
	}
}

// buildSummaryCache connects the optional reporting cache. A missing or
// unreachable Redis downgrades to no caching rather than failing startup.
func buildSummaryCache(cfg *config.Config, logger *slog.Logger) cache.SummaryCache {
	if cfg.RedisAddr == "" {
		return cache.NoopCache{}
	}
	redisCache, err := cache.NewRedisCache(context.Background(), cfg.RedisAddr)
	if err != nil {
		logger.Warn("Redis unavailable, reporting cache disabled", slog.String("error", err.Error()))
		return cache.NoopCache{}
	}
	logger.Info("Reporting cache connected", slog.String("addr", cfg.RedisAddr))
	return redisCache
}

// runMigrations applies all pending migrations against the remote database
// using a temporary database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
