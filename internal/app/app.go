package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habit_streak_backend/internal/config"
	"habit_streak_backend/internal/controller"
	"habit_streak_backend/internal/repository"
	"habit_streak_backend/internal/service"
	"habit_streak_backend/pkg/configwatcher"
	"habit_streak_backend/pkg/database"
	"habit_streak_backend/pkg/logger"
	"habit_streak_backend/pkg/monitoring"
	"habit_streak_backend/pkg/security"
	"habit_streak_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	settings *repository.SettingsRepository
	journal  *repository.JournalRepository
	room     *repository.RoomRepository
	message  *repository.MessageRepository
	resetLog *repository.ResetLogRepository
}

type services struct {
	clock     *service.ClockService
	auth      *service.AuthService
	user      *service.UserService
	storage   *service.StorageService
	streak    *service.StreakService
	journal   *service.JournalService
	chat      *service.ChatService
	content   *service.ContentService
	dashboard *service.DashboardService
	chatHub   *service.ChatHub
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	streak    *controller.StreakController
	journal   *controller.JournalController
	content   *controller.ContentController
	chat      *controller.ChatController
	dashboard *controller.DashboardController
	admin     *controller.AdminController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		settings: repository.NewSettingsRepository(db),
		journal:  repository.NewJournalRepository(db),
		room:     repository.NewRoomRepository(db),
		message:  repository.NewMessageRepository(db),
		resetLog: repository.NewResetLogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.clock = service.NewClockService(db)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, s.clock, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.streak = service.NewStreakService(repos.settings, repos.resetLog, repos.room, s.clock)
	s.journal = service.NewJournalService(repos.journal)
	s.chat = service.NewChatService(repos.room, repos.message, repos.user)
	s.content = service.NewContentService(cfg, rdb)
	s.dashboard = service.NewDashboardService(s.streak, s.content, repos.journal)

	s.chatHub = service.NewChatHub(rdb)
	go s.chatHub.Run()

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		user:      controller.NewUserController(s.user),
		streak:    controller.NewStreakController(s.streak),
		journal:   controller.NewJournalController(s.journal),
		content:   controller.NewContentController(s.content, s.streak),
		chat:      controller.NewChatController(s.chat, s.streak, s.chatHub),
		dashboard: controller.NewDashboardController(s.dashboard),
		admin:     controller.NewAdminController(s.user, s.chat, s.streak),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(newCfg interface{}) {
		cfg, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		logger.Log.Info("Config reloaded")
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("habit-streak", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Close WebSocket connections and clear online state before the
	// HTTP listener goes away.
	if a.services != nil && a.services.chatHub != nil {
		a.services.chatHub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
