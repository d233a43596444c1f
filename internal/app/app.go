package app

import (
	"context"
	"lingua_quest_backend/internal/catalog"
	"lingua_quest_backend/internal/config"
	"lingua_quest_backend/internal/controller"
	"lingua_quest_backend/internal/repository"
	"lingua_quest_backend/internal/service"
	"lingua_quest_backend/internal/util"
	"lingua_quest_backend/pkg/database"
	"lingua_quest_backend/pkg/logger"
	"lingua_quest_backend/pkg/monitoring"
	"lingua_quest_backend/pkg/security"
	"lingua_quest_backend/pkg/tracing"
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
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Catalog         *catalog.Catalog
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	session     *repository.SessionRepository
	assessment  *repository.AssessmentRepository
	phase2      *repository.Phase2Repository
	performance *repository.PerformanceRepository
	achievement *repository.AchievementRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	judge       *service.JudgeService
	game        *service.GameService
	phase2      *service.Phase2Service
	review      *service.ReviewService
	achievement *service.AchievementService
	storage     *service.StorageService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	game        *controller.GameController
	phase2      *controller.Phase2Controller
	review      *controller.ReviewController
	achievement *controller.AchievementController
	upload      *controller.UploadController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新配置,逐个通知已注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		session:     repository.NewSessionRepository(db),
		assessment:  repository.NewAssessmentRepository(db),
		phase2:      repository.NewPhase2Repository(db),
		performance: repository.NewPerformanceRepository(db),
		achievement: repository.NewAchievementRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	judge := service.NewJudgeService(&cfg.Judge)
	review := service.NewReviewService(repos.performance)
	game := service.NewGameService(
		repos.session, repos.assessment, repos.user, repos.achievement,
		a.Catalog, judge, rdb, cfg)

	return &services{
		auth:   service.NewAuthService(repos.user, cfg),
		user:   service.NewUserService(repos.user, repos.session),
		judge:  judge,
		game:   game,
		review: review,
		phase2: service.NewPhase2Service(
			repos.session, repos.assessment, repos.phase2, repos.user,
			a.Catalog, game, review, judge, cfg),
		achievement: service.NewAchievementService(repos.achievement, repos.user, rdb),
		storage:     service.NewStorageService(cfg),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		game:        controller.NewGameController(s.game),
		phase2:      controller.NewPhase2Controller(s.phase2),
		review:      controller.NewReviewController(s.review),
		achievement: controller.NewAchievementController(s.achievement),
		upload:      controller.NewUploadController(s.storage),
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

// startBackgroundTasks 定期把排行榜分数与数据库对齐
func (a *App) startBackgroundTasks(repos *repositories) {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			users, err := repos.user.FindTopByXP(100)
			if err != nil {
				logger.Log.Error("leaderboard sync query failed", zap.Error(err))
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			for _, u := range users {
				a.Redis.ZAdd(ctx, "leaderboard:xp", &redis.Z{
					Score:  float64(u.TotalXP),
					Member: service.UserKey(u.ID),
				})
			}
			cancel()
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: catalog.Default(),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services)

	// 评审服务的地址和密钥支持热更新
	app.RegisterConfigCallback(func(c *config.Config) {
		services.judge.Cfg = &c.Judge
	})

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("lingua-quest", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(repos)

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
