package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/controller"
	"learnsphere_backend/internal/llm"
	"learnsphere_backend/internal/middleware"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/service"
	"learnsphere_backend/pkg/configwatcher"
	"learnsphere_backend/pkg/database"
	"learnsphere_backend/pkg/logger"
	"learnsphere_backend/pkg/monitoring"
	"learnsphere_backend/pkg/security"
	"learnsphere_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// configFile is the path watched for hot reloads. LoadConfig reads the
// same file through its parent directory.
const configFile = "configs/config.yaml"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	configCallbacks []func(*config.Config)
	tracerProvider  *sdktrace.TracerProvider
}

type repositories struct {
	learner      *repository.LearnerRepository
	session      *repository.SessionRepository
	knowledgeGap *repository.KnowledgeGapRepository
}

type services struct {
	generator    *service.GeneratorService
	learner      *service.LearnerService
	session      *service.SessionService
	knowledgeGap *service.KnowledgeGapService
}

type controllers struct {
	learner      *controller.LearnerController
	session      *controller.SessionController
	knowledgeGap *controller.KnowledgeGapController
	generate     *controller.GenerateController
	health       *controller.HealthController
	spa          *controller.SPAController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		learner:      repository.NewLearnerRepository(db),
		session:      repository.NewSessionRepository(db),
		knowledgeGap: repository.NewKnowledgeGapRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.generator = service.NewGeneratorService(a.initProvider(cfg), cfg)
	s.learner = service.NewLearnerService(repos.learner)
	s.session = service.NewSessionService(repos.learner, repos.session, s.generator, cfg.Demo.LearnerID)
	s.knowledgeGap = service.NewKnowledgeGapService(repos.knowledgeGap)

	return s
}

// initProvider returns nil when no credential is configured; the generator
// then serves fallback content without touching the network.
func (a *App) initProvider(cfg *config.Config) llm.Provider {
	if cfg.AI.APIKey == "" {
		logger.Log.Warn("No AI API key configured, sessions will use fallback content")
		return nil
	}

	provider, err := llm.NewOpenAIProvider(llm.Config{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
	})
	if err != nil {
		logger.Log.Error("Failed to initialize AI provider, falling back", zap.Error(err))
		return nil
	}
	return provider
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		learner:      controller.NewLearnerController(s.learner),
		session:      controller.NewSessionController(s.session),
		knowledgeGap: controller.NewKnowledgeGapController(s.knowledgeGap),
		generate:     controller.NewGenerateController(s.session),
		health:       controller.NewHealthController(),
		spa:          controller.NewSPAController(cfg.Static.Dir),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// applyConfig is invoked by the config watcher with a freshly parsed file.
// Only generation tunables take effect at runtime; server address and
// database settings need a restart.
func (a *App) applyConfig(cfg *config.Config) {
	a.services.generator.ApplyConfig(cfg)
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, cfg)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("learnsphere", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	go configwatcher.WatchConfig(configFile, app.applyConfig)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Log.Error("Failed to close database", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
