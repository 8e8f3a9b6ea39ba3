// Package bootstrap wires configuration, storage and the HTTP layer together.
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

	appControllers "github.com/hamzak/maktab/internal/app/controllers"
	appMigrations "github.com/hamzak/maktab/internal/app/migrations"
	appRepos "github.com/hamzak/maktab/internal/app/repositories"
	appRoutes "github.com/hamzak/maktab/internal/app/routes"
	appServices "github.com/hamzak/maktab/internal/app/services"
	"github.com/hamzak/maktab/internal/config"
	"github.com/hamzak/maktab/internal/db"
	appMiddleware "github.com/hamzak/maktab/internal/middleware"
	pkgAuth "github.com/hamzak/maktab/internal/pkg/auth"
	"github.com/hamzak/maktab/internal/pkg/email"
	"github.com/hamzak/maktab/internal/pkg/filestorage"
	"github.com/hamzak/maktab/internal/pkg/logger"
	"github.com/hamzak/maktab/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	BranchAdminService    *appServices.BranchAdminService
	BranchService         *appServices.BranchService
	StaffService          *appServices.StaffService
	StudentService        *appServices.StudentService
	GuardianService       *appServices.GuardianService
	AuthController        *appControllers.AuthController
	BranchAdminController *appControllers.BranchAdminController
	BranchController      *appControllers.BranchController
	StaffController       *appControllers.StaffController
	StudentController     *appControllers.StudentController
	GuardianController    *appControllers.GuardianController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	AuthRateLimiter       *appMiddleware.RateLimiter
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	EmailService          email.EmailService
	FileStorage           *filestorage.LocalStorage
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default super admin.
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
		// The app still works without the seed account, keep going.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		BaseURL:   cfg.Server.FrontendURL,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.User,
		deps.Repos.BranchAdmin,
		deps.Repos.Branch,
		deps.Repos.BranchSetting,
		deps.JWTService,
		deps.EmailService,
		lgr,
	)
	deps.BranchAdminService = appServices.NewBranchAdminService(deps.Repos.BranchAdmin, lgr)
	deps.BranchService = appServices.NewBranchService(deps.Repos.Branch, deps.Repos.BranchSetting, deps.Repos.BranchAdmin, lgr)
	deps.StaffService = appServices.NewStaffService(deps.Repos.Staff, deps.Repos.Branch, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Student, deps.Repos.Guardian, deps.Repos.Branch, lgr)
	deps.GuardianService = appServices.NewGuardianService(deps.Repos.Guardian, deps.Repos.Branch, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.AuthRateLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.AuthPerSecond, cfg.RateLimit.AuthBurst)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.BranchAdminController = appControllers.NewBranchAdminController(deps.BranchAdminService, lgr)
	deps.BranchController = appControllers.NewBranchController(deps.BranchService, lgr)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService, deps.FileStorage, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.FileStorage, lgr)
	deps.GuardianController = appControllers.NewGuardianController(deps.GuardianService, deps.FileStorage, lgr)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.BranchAdminController,
		deps.BranchController,
		deps.StaffController,
		deps.StudentController,
		deps.GuardianController,
		deps.AuthMiddleware,
		deps.AuthRateLimiter,
		deps.FileStorage.BasePath(),
	)

	return router
}
