package app

import (
	"codecoach_backend/internal/config"
	"codecoach_backend/internal/controller"
	"codecoach_backend/internal/repository"
	"codecoach_backend/internal/service"
	"codecoach_backend/pkg/configwatcher"
	"codecoach_backend/pkg/database"
	"codecoach_backend/pkg/logger"
	"codecoach_backend/pkg/monitoring"
	"codecoach_backend/pkg/security"
	"codecoach_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user           *repository.UserRepository
	problem        *repository.ProblemRepository
	attempt        *repository.AttemptRepository
	recommendation *repository.RecommendationRepository
	revision       *repository.RevisionRepository
}

type services struct {
	auth           *service.AuthService
	learner        *service.LearnerService
	dashboard      *service.DashboardService
	problem        *service.ProblemService
	recommendation *service.RecommendationService
	revision       *service.RevisionService
}

type controllers struct {
	auth           *controller.AuthController
	problem        *controller.ProblemController
	attempt        *controller.AttemptController
	analytics      *controller.AnalyticsController
	recommendation *controller.RecommendationController
	revision       *controller.RevisionController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:           repository.NewUserRepository(db),
		problem:        repository.NewProblemRepository(db),
		attempt:        repository.NewAttemptRepository(db),
		recommendation: repository.NewRecommendationRepository(db),
		revision:       repository.NewRevisionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.problem = service.NewProblemService(repos.problem)
	s.revision = service.NewRevisionService(repos.revision, repos.problem)
	s.learner = service.NewLearnerService(repos.attempt, repos.problem, s.revision)
	s.dashboard = service.NewDashboardService(repos.attempt)
	s.recommendation = service.NewRecommendationService(
		repos.recommendation,
		repos.problem,
		repos.attempt,
		repos.user,
		s.revision,
		rdb,
		cfg,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		problem:        controller.NewProblemController(s.problem),
		attempt:        controller.NewAttemptController(s.learner),
		analytics:      controller.NewAnalyticsController(s.learner, s.dashboard),
		recommendation: controller.NewRecommendationController(s.recommendation),
		revision:       controller.NewRevisionController(s.revision, a.Config.Revision.DefaultDueLimit),
		health:         controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式默认不自动迁移，除非显式通过 -migrate 指定
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
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
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("codecoach", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	// 推荐/复习的调参支持热更新，端口等启动期配置不受影响
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		cfg.Recommendation = newCfg.Recommendation
		cfg.Revision = newCfg.Revision
		logger.Log.Info("Config reloaded")
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
