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
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appControllers "github.com/mikerosasdev/crud-alumnos/internal/app/controllers"
	appMigrations "github.com/mikerosasdev/crud-alumnos/internal/app/migrations"
	appRepos "github.com/mikerosasdev/crud-alumnos/internal/app/repositories"
	appRoutes "github.com/mikerosasdev/crud-alumnos/internal/app/routes"
	appServices "github.com/mikerosasdev/crud-alumnos/internal/app/services"
	"github.com/mikerosasdev/crud-alumnos/internal/config"
	"github.com/mikerosasdev/crud-alumnos/internal/db"
	appMiddleware "github.com/mikerosasdev/crud-alumnos/internal/middleware"
	pkgAuth "github.com/mikerosasdev/crud-alumnos/internal/pkg/auth"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/filestorage"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/helpers"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/logger"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/websocket"
	"github.com/mikerosasdev/crud-alumnos/internal/seed"
)

// DefaultConfigPath is used when no --config flag is given
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database       *db.PostgresDB
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	// Hub fans alumno changes out to open panels; the caller runs it
	Hub    *websocket.Hub
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logCfg := logger.ParseConfig(cfg.Logging.Level, cfg.Logging.Format)
	logCfg.Service = cfg.Server.AppName
	lgr := logger.Configure(logCfg)

	lgr.Info().
		Str("logLevel", string(logCfg.Level)).
		Str("logFormat", cfg.Logging.Format).
		Str("mode", cfg.Server.Mode).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase establishes the database connection pool.
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.DBName).
		Msg("Establishing database connection...")

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies every pending file of the migrations directory.
func RunMigrations(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
	migrationsDir := cfg.Database.MigrationsPath
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase connects and applies pending migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, cfg, database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Database: database,
		Logger:   lgr,
	}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	txManager := appRepos.NewPgTxManager(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.UploadsURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.Auth.JWTSecret,
		AccessTokenExp: helpers.ParseDuration(cfg.Auth.TokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.Auth.Issuer,
	})

	uploadCfg := appServices.UploadConfig{
		MaxBytes:          helpers.MegabytesToBytes(cfg.Upload.MaxSizeMB),
		PhotoWidth:        cfg.Upload.PhotoWidth,
		PhotoHeight:       cfg.Upload.PhotoHeight,
		EnforceDimensions: cfg.Upload.EnforceDimensions,
		URLPrefix:         cfg.Server.UploadsURL,
	}

	deps.Hub = websocket.NewHub(lgr)

	deps.Services = appServices.NewServices(deps.Repos, txManager, deps.FileStorage, appServices.Options{
		Upload: uploadCfg,
		Admin: appServices.AdminCredentials{
			Username:     cfg.Auth.AdminUsername,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		},
		JWTService: deps.JWTService,
		Notifier: appServices.ChangeNotifierFunc(func(action string, id uuid.UUID) {
			deps.Hub.Publish(websocket.NewAlumnosChanged(action, id.String()))
		}),
	}, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Auth.Enabled)
	if !cfg.Auth.Enabled {
		lgr.Warn().Msg("Authentication disabled, write endpoints are public")
	}

	deps.Controllers = appRoutes.Controllers{
		Alumno: appControllers.NewAlumnoController(deps.Services.AlumnoService),
		Upload: appControllers.NewUploadController(deps.Services.UploadService, uploadCfg.MaxBytes),
		Auth:   appControllers.NewAuthController(deps.Services.AuthService),
		Health: appControllers.NewHealthController(database.Pool),
		View:   appControllers.NewViewController(cfg.Server.AppName, cfg.Auth.Enabled),
		Events: websocket.NewHandler(deps.Hub, lgr),
	}

	return deps, nil
}

// SeedDefaultData creates the demo alumnos through the alumno service.
func SeedDefaultData(ctx context.Context, deps *Dependencies, force bool) (int, error) {
	created, err := seed.CreateDefaultData(ctx, deps.Services.AlumnoService, deps.Logger, force)
	if err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to create default data")
		return created, err
	}
	return created, nil
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

	if err := appMiddleware.RegisterValidations(); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))
	router.MaxMultipartMemory = helpers.MegabytesToBytes(cfg.Upload.MaxSizeMB)

	router.LoadHTMLGlob(filepath.Join(cfg.Server.TemplatesPath, "*.html"))
	router.Static("/public", cfg.Server.StaticPath)
	setupUploadsServing(router, cfg, lgr)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}

// setupUploadsServing serves stored photos under the uploads URL
func setupUploadsServing(router *gin.Engine, cfg *config.Config, lgr zerolog.Logger) {
	uploadPath := cfg.Server.StoragePath
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		lgr.Error().Err(err).Str("path", uploadPath).Msg("Failed to create uploads directory")
		return
	}

	urlPath := "/" + strings.Trim(cfg.Server.UploadsURL, "/")
	router.Static(urlPath, uploadPath)
	lgr.Info().Str("path", uploadPath).Str("url", urlPath).Msg("Static file serving configured for uploads directory")
}
