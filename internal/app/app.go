package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ovenly/bakeshop-backend/internal/data/db"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
	"github.com/ovenly/bakeshop-backend/internal/server"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	dbService, err := db.NewService(cfg.DatabaseURL, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	gdb := dbService.DB()

	reposet := wireRepos(gdb, log)
	serviceset := wireServices(log, cfg, reposet)
	handlerset := wireHandlers(log, cfg, serviceset)

	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		Debug:          cfg.Debug,
		AllowedOrigins: cfg.AllowedOrigins,
		AuthMiddleware: handlerset.AuthMiddleware,

		AuthHandler:     handlerset.Auth,
		UserHandler:     handlerset.User,
		CustomerHandler: handlerset.Customer,
		MenuHandler:     handlerset.Menu,
		CampaignHandler: handlerset.Campaign,
		OrderHandler:    handlerset.Order,
		PaymentHandler:  handlerset.Payment,
		HealthHandler:   handlerset.Health,
	})

	return &App{
		Log:      log,
		DB:       gdb,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Starting server", "port", a.Cfg.Port)
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
