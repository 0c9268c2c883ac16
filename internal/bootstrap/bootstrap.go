// Package bootstrap wires configuration, storage, outbound channels and the
// HTTP layer together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/beartshare/admin-api/internal/app/controllers"
	appMigrations "github.com/beartshare/admin-api/internal/app/migrations"
	appRepos "github.com/beartshare/admin-api/internal/app/repositories"
	appRoutes "github.com/beartshare/admin-api/internal/app/routes"
	appServices "github.com/beartshare/admin-api/internal/app/services"
	"github.com/beartshare/admin-api/internal/config"
	"github.com/beartshare/admin-api/internal/db"
	appMiddleware "github.com/beartshare/admin-api/internal/middleware"
	"github.com/beartshare/admin-api/internal/pkg/email"
	"github.com/beartshare/admin-api/internal/pkg/helpers"
	"github.com/beartshare/admin-api/internal/pkg/images"
	"github.com/beartshare/admin-api/internal/pkg/logger"
	"github.com/beartshare/admin-api/internal/pkg/session"
	"github.com/beartshare/admin-api/internal/pkg/sms"
	"github.com/beartshare/admin-api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	UserService        appServices.UserService
	BlogService        appServices.BlogService
	TemplateService    appServices.TemplateService
	DispatchService    appServices.DispatchService
	AuthController     *appControllers.AuthController
	UserController     *appControllers.UserController
	BlogController     *appControllers.BlogController
	TemplateController *appControllers.TemplateController
	DispatchController *appControllers.DispatchController
	UploadController   *appControllers.UploadController
	SessionGate        *appMiddleware.SessionMiddleware
	SessionStore       session.Store
	Repos              *appRepos.Repositories
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.EnsureDefaultAdmin(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupRedis connects the session-store backing Redis instance.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to ping Redis")
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection successfully established.")
	return client, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// session gate.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	sessionTTL := helpers.ParseDuration(cfg.Session.TTL, 24*time.Hour)
	deps.SessionStore = session.NewRedisStore(redisClient, sessionTTL)
	deps.SessionGate = appMiddleware.NewSessionMiddleware(deps.SessionStore, cfg.Session.CookieName)

	emailSender := email.NewSMTPSender(email.SMTPConfig{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		FromName:    cfg.SMTP.FromName,
		FromAddress: cfg.SMTP.FromAddress,
	}, lgr)

	smsGateway := sms.NewGateway(sms.GatewayConfig{
		Endpoint: cfg.SMS.Endpoint,
		Username: cfg.SMS.Username,
		Password: cfg.SMS.Password,
		Header:   cfg.SMS.Header,
	}, lgr)

	uploader := images.NewCloudflareUploader(images.Config{
		AccountID: cfg.Cloudflare.AccountID,
		APIToken:  cfg.Cloudflare.APIToken,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.Repos.PointRepository)
	deps.BlogService = appServices.NewBlogService(deps.Repos.BlogCategoryRepository, deps.Repos.BlogPostRepository)
	deps.TemplateService = appServices.NewTemplateService(deps.Repos.EmailTemplateRepository)
	deps.DispatchService = appServices.NewDispatchService(
		deps.Repos.UserRepository,
		deps.Repos.EmailTemplateRepository,
		emailSender,
		smsGateway,
		lgr,
	)

	deps.AuthController = appControllers.NewAuthController(
		deps.AuthService,
		deps.SessionStore,
		deps.SessionGate,
		cfg.Session.CookieName,
		cfg.Session.TTL,
	)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.BlogController = appControllers.NewBlogController(deps.BlogService)
	deps.TemplateController = appControllers.NewTemplateController(deps.TemplateService)
	deps.DispatchController = appControllers.NewDispatchController(deps.DispatchService)
	deps.UploadController = appControllers.NewUploadController(uploader)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.BlogController,
		deps.TemplateController,
		deps.DispatchController,
		deps.UploadController,
		deps.SessionGate,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
