package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushub/portal/internal/app/controllers"
	appRepos "github.com/campushub/portal/internal/app/repositories"
	appRoutes "github.com/campushub/portal/internal/app/routes"
	appServices "github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/config"
	appMiddleware "github.com/campushub/portal/internal/middleware"
	pkgAuth "github.com/campushub/portal/internal/pkg/auth"
	"github.com/campushub/portal/internal/pkg/logger"
	"github.com/campushub/portal/internal/seed"
	"github.com/campushub/portal/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService               *appServices.AuthService
	ComplaintService          *appServices.ComplaintService
	MedicineService           *appServices.MedicineService
	MedicineRequestService    *appServices.MedicineRequestService
	ParkingService            *appServices.ParkingService
	QueueService              *appServices.QueueService
	LeaveService              *appServices.LeaveService
	AuthController            *appControllers.AuthController
	ComplaintController       *appControllers.ComplaintController
	MedicineController        *appControllers.MedicineController
	MedicineRequestController *appControllers.MedicineRequestController
	ParkingController         *appControllers.ParkingController
	QueueController           *appControllers.QueueController
	LeaveController           *appControllers.LeaveController
	AuthMiddleware            *appMiddleware.AuthMiddleware
	Repos                     *appRepos.Repositories
	JWTService                *pkgAuth.JWTService
	CacheStore                *gocache.Cache
	Logger                    zerolog.Logger
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

// SetupStore opens the record store, creating the data directory and any
// missing table files, then seeds default data.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	lgr.Info().Str("dataDir", cfg.Storage.DataDir).Msg("Initializing record store...")

	st := store.New(cfg.Storage.DataDir, store.DefaultTables(), lgr)
	if err := st.Initialize(); err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize record store")
		return nil, fmt.Errorf("record store initialization failed: %w", err)
	}
	lgr.Info().Msg("Record store ready.")

	if err := seed.CreateDefaultData(cfg, appRepos.NewUserRepository(st), lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return st, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(st)

	accessExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		// Validated at config load, so this only guards direct misuse.
		accessExp = 12 * time.Hour
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.JWTService, lgr)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.Complaints)
	deps.MedicineService = appServices.NewMedicineService(deps.Repos.Medicines)
	deps.MedicineRequestService = appServices.NewMedicineRequestService(deps.Repos.MedicineRequests, deps.Repos.Medicines)
	deps.ParkingService = appServices.NewParkingService(deps.Repos.Parking)
	deps.QueueService = appServices.NewQueueService(deps.Repos.Queue)
	deps.LeaveService = appServices.NewLeaveService(deps.Repos.Leave)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.CacheStore = gocache.New(5*time.Minute, 10*time.Minute)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService)
	deps.MedicineController = appControllers.NewMedicineController(deps.MedicineService)
	deps.MedicineRequestController = appControllers.NewMedicineRequestController(deps.MedicineRequestService)
	deps.ParkingController = appControllers.NewParkingController(deps.ParkingService)
	deps.QueueController = appControllers.NewQueueController(deps.QueueService)
	deps.LeaveController = appControllers.NewLeaveController(deps.LeaveService)

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
		cfg,
		deps.CacheStore,
		deps.AuthController,
		deps.ComplaintController,
		deps.MedicineController,
		deps.MedicineRequestController,
		deps.ParkingController,
		deps.QueueController,
		deps.LeaveController,
		deps.AuthMiddleware,
	)

	return router
}
