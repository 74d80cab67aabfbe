package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course_market_backend/internal/config"
	"course_market_backend/internal/controller"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/service"
	"course_market_backend/pkg/database"
	"course_market_backend/pkg/logger"
	"course_market_backend/pkg/monitoring"
	"course_market_backend/pkg/security"
	"course_market_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	admin        *repository.AdminRepository
	course       *repository.CourseRepository
	enrollment   *repository.EnrollmentRepository
	payment      *repository.PaymentRepository
	certificate  *repository.CertificateRepository
	announcement *repository.AnnouncementRepository
	settings     *repository.SettingsRepository
}

type services struct {
	storage      *service.StorageService
	auth         *service.AuthService
	admin        *service.AdminService
	course       *service.CourseService
	certificate  *service.CertificateService
	enrollment   *service.EnrollmentService
	analytics    *service.AnalyticsService
	announcement *service.AnnouncementService
	settings     *service.SettingsService
}

type controllers struct {
	auth         *controller.AuthController
	course       *controller.CourseController
	enrollment   *controller.EnrollmentController
	analytics    *controller.AnalyticsController
	admin        *controller.AdminController
	announcement *controller.AnnouncementController
	settings     *controller.SettingsController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置文件热更新入口，只替换可以在运行中安全生效的部分
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		admin:        repository.NewAdminRepository(db),
		course:       repository.NewCourseRepository(db),
		enrollment:   repository.NewEnrollmentRepository(db),
		payment:      repository.NewPaymentRepository(db),
		certificate:  repository.NewCertificateRepository(db),
		announcement: repository.NewAnnouncementRepository(db),
		settings:     repository.NewSettingsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.admin = service.NewAdminService(repos.admin, repos.user, cfg)
	s.course = service.NewCourseService(repos.course, repos.user, s.storage, rdb)
	s.certificate = service.NewCertificateService(repos.certificate, repos.enrollment, repos.course, repos.user)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.course, repos.payment, s.certificate)
	s.analytics = service.NewAnalyticsService(repos.user, repos.course, repos.enrollment)
	s.announcement = service.NewAnnouncementService(repos.announcement)
	s.settings = service.NewSettingsService(repos.settings)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		course:       controller.NewCourseController(s.course, s.auth),
		enrollment:   controller.NewEnrollmentController(s.enrollment, s.certificate),
		analytics:    controller.NewAnalyticsController(s.analytics),
		admin:        controller.NewAdminController(s.admin, s.course, s.analytics),
		announcement: controller.NewAnnouncementController(s.announcement),
		settings:     controller.NewSettingsController(s.settings),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(&cfg.CORS))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(&cfg.RateLimit))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// seedDefaults 启动期数据补种，每次启动都执行且幂等，
// 全新部署（包括 release 模式）起来就能登录后台
func seedDefaults(db *gorm.DB, cfg *config.Config) error {
	return database.EnsureDefaultAdmin(db, &cfg.Admin)
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

	if err := seedDefaults(db, cfg); err != nil {
		logger.Log.Fatal("Failed to seed default admin", zap.Error(err))
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 课程列表缓存可降级，Redis 不可用时直接打库
		logger.Log.Warn("Redis unavailable, course list cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("course-market", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

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

	// 等待中断信号优雅地关闭服务器（5秒超时）
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

	log.Println("Server exiting")
}
