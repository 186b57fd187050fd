package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	appControllers "github.com/findjobsyria/api/internal/app/controllers"
	appRepos "github.com/findjobsyria/api/internal/app/repositories"
	appRoutes "github.com/findjobsyria/api/internal/app/routes"
	appServices "github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/config"
	"github.com/findjobsyria/api/internal/db"
	appMiddleware "github.com/findjobsyria/api/internal/middleware"
	pkgAuth "github.com/findjobsyria/api/internal/pkg/auth"
	"github.com/findjobsyria/api/internal/pkg/cache"
	"github.com/findjobsyria/api/internal/pkg/events"
	"github.com/findjobsyria/api/internal/pkg/filestorage"
	"github.com/findjobsyria/api/internal/pkg/helpers"
	"github.com/findjobsyria/api/internal/pkg/logger"
	"github.com/findjobsyria/api/internal/pkg/websocket"
	"github.com/findjobsyria/api/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Handlers       appRoutes.Handlers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Hub            *websocket.Hub
	Cache          cache.Cache
	Events         events.Publisher
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// Close releases the long-lived clients. The database pool is closed by its owner.
func (d *Dependencies) Close() {
	if d.Hub != nil {
		d.Hub.Close()
	}
	if d.Events != nil {
		d.Events.Close()
	}
	if d.Cache != nil {
		if err := d.Cache.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close cache")
		}
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  cfg.Logging.Format == "text",
		Service: "findjobsyria-api",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if !cfg.Database.AutoMigrate {
		lgr.Info().Msg("Automatic migrations disabled")
		return database, nil
	}

	if err := db.Migrate(ctx, database.Pool, lgr); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	return database, nil
}

// SetupCache connects to Redis. Without an address, or when Redis is
// unreachable, the stats are computed on every request.
func SetupCache(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) cache.Cache {
	if cfg.Redis.Addr == "" {
		lgr.Info().Msg("Redis not configured, caching disabled")
		return cache.NewNoop()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	redisCache, err := cache.NewRedis(ctx, cache.RedisOptions{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		KeyPrefix: "findjobsyria:",
	})
	if err != nil {
		lgr.Warn().Err(err).Msg("Redis unavailable, caching disabled")
		return cache.NewNoop()
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache connected")
	return redisCache
}

// SetupEvents connects the domain event publisher. Without a NATS URL events are dropped.
func SetupEvents(cfg *config.Config, lgr zerolog.Logger) events.Publisher {
	if cfg.NATS.URL == "" {
		lgr.Info().Msg("NATS not configured, domain events disabled")
		return events.NewNoopPublisher()
	}

	timeout := helpers.DurationOr("nats.conn_timeout", cfg.NATS.ConnTimeout, 5*time.Second, lgr)
	publisher, err := events.NewNATSPublisher(cfg.NATS.URL, timeout, lgr.With().Str("component", "events").Logger())
	if err != nil {
		lgr.Warn().Err(err).Msg("NATS unavailable, domain events disabled")
		return events.NewNoopPublisher()
	}

	lgr.Info().Str("url", cfg.NATS.URL).Msg("NATS publisher connected")
	return publisher
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.UploadsBaseURL(), int64(cfg.Server.MaxUploadMB)<<20)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Cache = SetupCache(ctx, cfg, lgr)
	deps.Events = SetupEvents(cfg, lgr)

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "realtime").Logger())
	go deps.Hub.Run()

	tokens := pkgAuth.NewSessionTokenService(pkgAuth.SessionTokenConfig{
		SecretKey: cfg.Session.Secret,
		Issuer:    cfg.Session.Issuer,
	})

	deps.Services = appServices.NewServices(appServices.Dependencies{
		Repos:      repos,
		Tokens:     tokens,
		Cache:      deps.Cache,
		Events:     deps.Events,
		Realtime:   deps.Hub,
		SessionTTL: helpers.DurationOr("session.ttl", cfg.Session.TTL, appServices.DefaultSessionTTL, lgr),
		StatsTTL:   helpers.DurationOr("redis.stats_ttl", cfg.Redis.StatsTTL, time.Minute, lgr),
		Logger:     lgr,
	})

	if err := seed.EnsureAdmin(ctx, repos.Users, seed.AdminAccount{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Username: cfg.Seed.AdminUsername,
	}, pkgAuth.BcryptCost, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed admin account, proceeding anyway...")
	}

	cookie := appMiddleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.SecureCookie}
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.Auth, cookie, lgr)

	svc := deps.Services
	deps.Handlers = appRoutes.Handlers{
		Auth:         appControllers.NewAuthController(svc.Auth, cookie, lgr),
		User:         appControllers.NewUserController(svc.User),
		Company:      appControllers.NewCompanyController(svc.Company),
		Opportunity:  appControllers.NewOpportunityController(svc.Opportunity),
		Application:  appControllers.NewApplicationController(svc.Application),
		Cv:           appControllers.NewCvController(svc.Cv),
		Message:      appControllers.NewMessageController(svc.Message),
		Notification: appControllers.NewNotificationController(svc.Notification),
		Saved:        appControllers.NewSavedOpportunityController(svc.Saved),
		Stats:        appControllers.NewStatsController(svc.Stats),
		Upload:       appControllers.NewUploadController(deps.FileStorage, lgr),
		Realtime:     websocket.NewHandler(deps.Hub, appMiddleware.CurrentIdentity, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Handlers, deps.AuthMiddleware)

	router.Static("/uploads", deps.FileStorage.BasePath())
	lgr.Info().Str("path", deps.FileStorage.BasePath()).Msg("Static file serving configured for uploads directory")

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
