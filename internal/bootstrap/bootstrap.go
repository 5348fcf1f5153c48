package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/degreepath/internal/app/controllers"
	appMigrations "github.com/yigit/degreepath/internal/app/migrations"
	appRepos "github.com/yigit/degreepath/internal/app/repositories"
	appRoutes "github.com/yigit/degreepath/internal/app/routes"
	appServices "github.com/yigit/degreepath/internal/app/services"
	"github.com/yigit/degreepath/internal/catalog"
	"github.com/yigit/degreepath/internal/config"
	"github.com/yigit/degreepath/internal/db"
	appMiddleware "github.com/yigit/degreepath/internal/middleware"
	"github.com/yigit/degreepath/internal/pkg/logger"
	"github.com/yigit/degreepath/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Program            *catalog.Program
	Repos              *appRepos.Repositories
	CatalogService     *appServices.CatalogService
	ProgressService    *appServices.ProgressService
	ScheduleService    *appServices.ScheduleService
	PlanService        *appServices.PlanService
	CatalogController  *appControllers.CatalogController
	ProgressController *appControllers.ProgressController
	ScheduleController *appControllers.ScheduleController
	PlanController     *appControllers.PlanController
	HealthController   *appControllers.HealthController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	format := logger.FormatJSON
	if f := strings.ToLower(cfg.Logging.Format); f == "text" || f == "console" {
		format = logger.FormatConsole
	}
	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: format,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadProgram reads and validates the program catalog. Any graph problem
// stops startup.
func LoadProgram(cfg *config.Config, lgr zerolog.Logger) (*catalog.Program, error) {
	program, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
		return nil, err
	}
	lgr.Info().
		Str("program", program.ID).
		Int("courses", program.Graph.Len()).
		Int("tracks", len(program.Tracks)).
		Msg("Catalog loaded")
	return program, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// syncs the catalog courses.
func SetupDatabase(ctx context.Context, cfg *config.Config, program *catalog.Program, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.SeedCatalog {
		if err := seed.SyncCatalog(ctx, database, program, lgr); err != nil {
			// Courses already in the table still serve reads
			lgr.Error().Err(err).Msg("Failed to sync catalog courses, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, program *catalog.Program, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Program: program, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.CatalogService = appServices.NewCatalogService(program)
	deps.ProgressService = appServices.NewProgressService(program, deps.Repos.EnrollmentRepository, logger.Component("progress"))
	deps.PlanService = appServices.NewPlanService(program, deps.Repos.EnrollmentRepository, logger.Component("plan"))

	scheduleService, err := appServices.NewScheduleService(deps.Repos.EnrollmentRepository, cfg.Schedule.Seasons, logger.Component("schedule"))
	if err != nil {
		return nil, fmt.Errorf("failed to configure schedule service: %w", err)
	}
	deps.ScheduleService = scheduleService

	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService, cfg.Catalog.MaxPreviewItems)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService, cfg.Catalog.MaxPreviewItems)
	deps.PlanController = appControllers.NewPlanController(deps.PlanService)
	deps.HealthController = appControllers.NewHealthController(database)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), appMiddleware.Recovery())

	if err := appRoutes.SetupRouter(router,
		deps.CatalogController,
		deps.ProgressController,
		deps.ScheduleController,
		deps.PlanController,
		deps.HealthController,
	); err != nil {
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	if gin.Mode() != gin.ReleaseMode {
		appRoutes.SetupSwagger(router)
	}

	return router, nil
}
