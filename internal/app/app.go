package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/config"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/controller"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/database"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/monitoring"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/security"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/tracing"

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
	user         *repository.UserRepository
	workspace    *repository.WorkspaceRepository
	account      *repository.AccountRepository
	category     *repository.CategoryRepository
	transaction  *repository.TransactionRepository
	debt         *repository.DebtRepository
	budget       *repository.BudgetRepository
	goal         *repository.GoalRepository
	contribution *repository.ContributionRepository
	milestone    *repository.MilestoneRepository
	insight      *repository.InsightRepository
	notification *repository.NotificationRepository
}

type services struct {
	auth         *service.AuthService
	workspace    *service.WorkspaceService
	account      *service.AccountService
	category     *service.CategoryService
	transaction  *service.TransactionService
	debt         *service.DebtService
	budget       *service.BudgetService
	goal         *service.GoalService
	notification *service.NotificationService
	dashboard    *service.DashboardService
	storage      *service.StorageService
	analyzer     *service.SpendingAnalyzer
}

type controllers struct {
	auth         *controller.AuthController
	workspace    *controller.WorkspaceController
	account      *controller.AccountController
	category     *controller.CategoryController
	transaction  *controller.TransactionController
	debt         *controller.DebtController
	budget       *controller.BudgetController
	goal         *controller.GoalController
	notification *controller.NotificationController
	dashboard    *controller.DashboardController
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		workspace:    repository.NewWorkspaceRepository(db),
		account:      repository.NewAccountRepository(db),
		category:     repository.NewCategoryRepository(db),
		transaction:  repository.NewTransactionRepository(db),
		debt:         repository.NewDebtRepository(db),
		budget:       repository.NewBudgetRepository(db),
		goal:         repository.NewGoalRepository(db),
		contribution: repository.NewContributionRepository(db),
		milestone:    repository.NewMilestoneRepository(db),
		insight:      repository.NewInsightRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.notification = service.NewNotificationService(repos.notification)
	s.auth = service.NewAuthService(repos.user, repos.workspace, db, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	s.workspace = service.NewWorkspaceService(repos.workspace, repos.user, db)
	s.account = service.NewAccountService(repos.account)
	s.category = service.NewCategoryService(repos.category)
	s.debt = service.NewDebtService(repos.debt)
	s.budget = service.NewBudgetService(repos.budget)

	s.analyzer = service.NewSpendingAnalyzer(repos.transaction, rdb,
		time.Duration(cfg.Goals.AnalyticsCacheTTLSeconds)*time.Second)

	tracker := service.NewMilestoneTracker(repos.milestone, s.notification)
	tracker.MaxMilestones = cfg.Goals.MaxMilestones
	ledger := service.NewContributionLedger(repos.goal, repos.contribution, repos.debt, tracker, s.notification)
	classifier := service.NewTransactionClassifier()
	insight := service.NewInsightGenerator(repos.goal, repos.contribution, repos.insight)
	suggest := service.NewSuggestionGenerator(repos.goal, repos.debt, s.analyzer, cfg.Goals.MaxSuggestions)
	health := service.NewFinancialHealthService(repos.goal)

	s.goal = service.NewGoalService(
		repos.goal,
		repos.contribution,
		repos.milestone,
		repos.insight,
		repos.transaction,
		classifier,
		ledger,
		tracker,
		insight,
		suggest,
		health,
		s.notification,
	)

	s.transaction = service.NewTransactionService(repos.transaction, repos.account, repos.debt, s.goal, s.analyzer)
	s.dashboard = service.NewDashboardService(repos.account, repos.goal, repos.debt, s.analyzer, health, suggest)

	return s
}

func initControllers(s *services) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		workspace:    controller.NewWorkspaceController(s.workspace),
		account:      controller.NewAccountController(s.account),
		category:     controller.NewCategoryController(s.category),
		transaction:  controller.NewTransactionController(s.transaction, s.storage),
		debt:         controller.NewDebtController(s.debt),
		budget:       controller.NewBudgetController(s.budget),
		goal:         controller.NewGoalController(s.goal),
		notification: controller.NewNotificationController(s.notification),
		dashboard:    controller.NewDashboardController(s.dashboard),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	})

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
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

	repos := initRepositories(db)
	services := initServices(repos, cfg, db, rdb)
	controllers := initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("wealthwise-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
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
