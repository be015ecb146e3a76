package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mertcan/eduportal/internal/app/controllers"
	appMigrations "github.com/mertcan/eduportal/internal/app/migrations"
	"github.com/mertcan/eduportal/internal/app/models/dto"
	appRepos "github.com/mertcan/eduportal/internal/app/repositories"
	appRoutes "github.com/mertcan/eduportal/internal/app/routes"
	appServices "github.com/mertcan/eduportal/internal/app/services"
	"github.com/mertcan/eduportal/internal/config"
	"github.com/mertcan/eduportal/internal/db"
	appMiddleware "github.com/mertcan/eduportal/internal/middleware"
	pkgAuth "github.com/mertcan/eduportal/internal/pkg/auth"
	"github.com/mertcan/eduportal/internal/pkg/cache"
	"github.com/mertcan/eduportal/internal/pkg/helpers"
	"github.com/mertcan/eduportal/internal/pkg/logger"
	"github.com/mertcan/eduportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	ResourceService       appServices.ResourceService
	ScholarshipService    appServices.ScholarshipService
	TimetableService      appServices.TimetableService
	DashboardService      appServices.DashboardService
	RoleResolver          *appServices.RoleResolver
	AuthController        *appControllers.AuthController
	ResourceController    *appControllers.ResourceController
	ScholarshipController *appControllers.ScholarshipController
	TimetableController   *appControllers.TimetableController
	DashboardController   *appControllers.DashboardController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	ListCache             *cache.Store
	Logger                zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and seeds defaults.
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

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best effort, the API works without the default account
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	listTTL := helpers.ParseDuration(cfg.Cache.ListTTL, 5*time.Minute)
	deps.ListCache = cache.New(listTTL)

	deps.RoleResolver = appServices.NewRoleResolver(
		deps.Repos.ProfileRepository,
		cache.New(helpers.ParseDuration(cfg.Roles.CacheTTL, 5*time.Minute)),
		appServices.RoleResolverConfig{
			Attempts: cfg.Roles.ResolveAttempts,
			Backoff:  helpers.ParseDuration(cfg.Roles.ResolveBackoff, 200*time.Millisecond),
			CacheTTL: helpers.ParseDuration(cfg.Roles.CacheTTL, 5*time.Minute),
		},
	)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.ProfileRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		deps.RoleResolver,
		lgr,
	)

	deps.ResourceService = appServices.NewResourceService(deps.Repos.ResourceRepository, deps.ListCache)
	deps.ScholarshipService = appServices.NewScholarshipService(deps.Repos.ScholarshipRepository, deps.ListCache)
	deps.TimetableService = appServices.NewTimetableService(deps.Repos.TimetableRepository, deps.ListCache)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.ResourceRepository,
		deps.Repos.ScholarshipRepository,
		deps.Repos.TimetableRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.RoleResolver)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService)
	deps.ScholarshipController = appControllers.NewScholarshipController(deps.ScholarshipService)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

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

	if err := dto.RegisterCustomValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ResourceController,
		deps.ScholarshipController,
		deps.TimetableController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
