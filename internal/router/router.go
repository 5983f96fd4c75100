package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/handler"
	"kitchen-planner-api/internal/metrics"
	"kitchen-planner-api/internal/middleware"
	"kitchen-planner-api/internal/realtime"
	"kitchen-planner-api/internal/repository"
	"kitchen-planner-api/internal/service"
	"kitchen-planner-api/internal/storage"
	"kitchen-planner-api/internal/token"
)

// rateLimiterIdle is how long a client IP may stay silent before its limiter is dropped
const rateLimiterIdle = 10 * time.Minute

// Config holds router configuration
type Config struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	BasePath string

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Tokens     *token.Manager
	Revocation token.RevocationStore
	BcryptCost int
	LoginRate  float64
	LoginBurst int

	Images         storage.ImageStore
	MaxUploadBytes int64

	InvitationTTL time.Duration
	PublicURL     string

	CORSOrigins []string
	Hub         *realtime.Hub
	// Redis is optional and only adds a readiness check
	Redis *redis.Client
	// Stop ends background goroutines started by Setup
	Stop <-chan struct{}
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsHandler := gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.GET("/metrics", metricsHandler)

	sqlDB, err := cfg.DB.DB()
	if err != nil {
		cfg.Logger.Fatal("Failed to get sql.DB from gorm", zap.Error(err))
	}
	checks := map[string]handler.Check{}
	if cfg.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return cfg.Redis.Ping(ctx).Err() }
	}
	healthHandler := handler.NewHealthHandler(sqlDB, checks, cfg.Logger)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	hub := cfg.Hub
	if hub == nil {
		hub = realtime.NewHub(cfg.Logger)
	}

	// Initialize repositories
	repos := repository.NewRepositories(cfg.DB)
	tx := database.NewTransactor(cfg.DB)

	// Initialize services
	projectService := service.NewProjectService(tx, repos, cfg.Metrics, hub, cfg.Logger)
	organisationService := service.NewOrganisationService(tx, repos, service.InvitationSettings{
		TTL:      cfg.InvitationTTL,
		LinkBase: cfg.PublicURL + cfg.BasePath,
	}, hub, cfg.Logger)
	recipeService := service.NewRecipeService(tx, repos, cfg.Metrics, hub, cfg.Logger)
	credentialsService := service.NewCredentialsService(tx, repos.Users, cfg.Tokens, cfg.Revocation, cfg.BcryptCost, cfg.Metrics, cfg.Logger)
	imageService := service.NewImageService(cfg.Images, repos, cfg.Metrics, hub, cfg.Logger)

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectService)
	organisationHandler := handler.NewOrganisationHandler(organisationService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	authHandler := handler.NewAuthHandler(credentialsService)
	imageHandler := handler.NewImageHandler(imageService, cfg.MaxUploadBytes)
	eventHandler := handler.NewEventHandler(projectService, hub, cfg.CORSOrigins, cfg.Logger)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", metricsHandler)
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
	}
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMiddleware := middleware.Auth(token.NewValidator(cfg.Tokens, cfg.Revocation))

	limiter := middleware.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst, cfg.Logger)
	if cfg.Stop != nil {
		limiter.StartCleanup(rateLimiterIdle, cfg.Stop)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", limiter.Handler(), authHandler.Register)
		auth.POST("/login", limiter.Handler(), authHandler.Login)
		auth.POST("/logout", authMiddleware, authHandler.Logout)
	}

	projects := api.Group("/projects")
	projects.Use(authMiddleware)
	{
		projects.POST("/create", projectHandler.CreateProject)
		projects.GET("/", projectHandler.ListProjectStubs)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.GET("/:id/version", projectHandler.GetProjectVersion)
		projects.GET("/:id/events", eventHandler.Subscribe)

		projects.GET("/:id/invitation", organisationHandler.GetInvitationLink)
		projects.POST("/:id/join", organisationHandler.JoinProject)
		projects.POST("/:id/leave", organisationHandler.LeaveProject)
		projects.POST("/join/:token", organisationHandler.JoinByInvitation)
	}

	recipes := api.Group("/recipes")
	recipes.Use(authMiddleware)
	{
		recipes.POST("/create", recipeHandler.CreateRecipe)
		recipes.GET("/", recipeHandler.ListRecipeStubs)
		recipes.GET("/:id", recipeHandler.GetRecipe)
		recipes.PUT("/:id", recipeHandler.UpdateRecipe)
		recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
		recipes.GET("/:id/version", recipeHandler.GetRecipeVersion)
	}

	media := api.Group("/media")
	media.Use(authMiddleware)
	{
		media.POST("/projects/:id", imageHandler.UploadProjectImage)
		media.GET("/projects/:id", imageHandler.GetProjectImage)
		media.DELETE("/projects/:id", imageHandler.DeleteProjectImage)
		media.POST("/recipes/:id", imageHandler.UploadRecipeImage)
		media.GET("/recipes/:id", imageHandler.GetRecipeImage)
		media.DELETE("/recipes/:id", imageHandler.DeleteRecipeImage)
	}

	return r
}
