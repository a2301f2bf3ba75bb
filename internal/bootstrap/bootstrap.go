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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tumelo/reportal/internal/app/controllers"
	appMigrations "github.com/tumelo/reportal/internal/app/migrations"
	"github.com/tumelo/reportal/internal/app/models/dto"
	appRepos "github.com/tumelo/reportal/internal/app/repositories"
	appRoutes "github.com/tumelo/reportal/internal/app/routes"
	appServices "github.com/tumelo/reportal/internal/app/services"
	"github.com/tumelo/reportal/internal/config"
	"github.com/tumelo/reportal/internal/db"
	appMiddleware "github.com/tumelo/reportal/internal/middleware"
	pkgAuth "github.com/tumelo/reportal/internal/pkg/auth"
	"github.com/tumelo/reportal/internal/pkg/helpers"
	"github.com/tumelo/reportal/internal/pkg/logger"
	"github.com/tumelo/reportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	RatingService      appServices.RatingService
	ReportService      appServices.ReportService
	LecturerService    appServices.LecturerService
	ModuleService      appServices.ModuleService
	CourseService      appServices.CourseService
	AuthController     *appControllers.AuthController
	RatingController   *appControllers.RatingController
	ReportController   *appControllers.ReportController
	LecturerController *appControllers.LecturerController
	ModuleController   *appControllers.ModuleController
	CourseController   *appControllers.CourseController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if envPath := os.Getenv("REPORTAL_CONFIG"); envPath != "" {
		configPath = envPath
	}

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

// SetupDatabase establishes the database connection, runs migrations, the
// legacy credential re-hash pass, and seeds default data.
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

	// One-time upgrade of plaintext credentials left by earlier deployments
	if err := seed.RehashLegacyPasswords(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to re-hash legacy credentials, proceeding anyway...")
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.RatingService = appServices.NewRatingService(deps.Repos.RatingRepository)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository)
	deps.LecturerService = appServices.NewLecturerService(deps.Repos.UserRepository, lgr)
	deps.ModuleService = appServices.NewModuleService(deps.Repos.ModuleRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.RatingController = appControllers.NewRatingController(deps.RatingService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.LecturerController = appControllers.NewLecturerController(deps.LecturerService)
	deps.ModuleController = appControllers.NewModuleController(deps.ModuleService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.Metrics())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.RatingController,
		deps.ReportController,
		deps.LecturerController,
		deps.ModuleController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "pong"})
	})

	return router
}
