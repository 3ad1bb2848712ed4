package routes

import (
	"fmt"

	"campus-placement-backend/internal/api/handlers"
	"campus-placement-backend/internal/api/middleware"
	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/config"
	"campus-placement-backend/internal/database/models"
	"campus-placement-backend/internal/repository"
	"campus-placement-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the application services behind the HTTP API
type Services struct {
	Accounts      service.AccountServiceInterface
	Relationships service.RelationshipServiceInterface
	Contacts      service.ContactServiceInterface
	Rebuild       service.RebuildServiceInterface
}

// NewServices wires repositories and services on top of db
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	validate := validator.New()
	retry := service.RetryPolicy{
		MaxAttempts:     cfg.SyncMaxAttempts,
		InitialInterval: cfg.SyncRetryInitialInterval(),
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize services
	accountService := service.NewAccountService(accountRepo, validate)
	relationshipService := service.NewRelationshipService(db, relationshipRepo, accountService, cfg.MonotonicStatus(), retry)
	contactService := service.NewContactService(db, contactRepo, studentRepo, accountService, relationshipService, validate, retry)
	rebuildService := service.NewRebuildService(contactRepo, relationshipService)

	return &Services{
		Accounts:      accountService,
		Relationships: relationshipService,
		Contacts:      contactService,
		Rebuild:       rebuildService,
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	return NewRouter(db, cfg, NewServices(db, cfg), auth.NewAuthMiddleware(authService)), nil
}

// NewRouter registers middleware, handlers and routes on a new engine
func NewRouter(db *gorm.DB, cfg *config.Config, services *Services, authMiddleware *auth.AuthMiddleware) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	accountHandler := handlers.NewAccountHandler(services.Accounts)
	relationshipHandler := handlers.NewRelationshipHandler(services.Relationships)
	contactHandler := handlers.NewContactHandler(services.Contacts)
	adminHandler := handlers.NewAdminHandler(services.Rebuild)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	organizations := authMiddleware.RequireKind(models.AccountKindEnterprise, models.AccountKindTeacher)
	students := authMiddleware.RequireKind(models.AccountKindStudent)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		accounts := v1.Group("/accounts", authMiddleware.RequireKind(models.AccountKindAdmin, models.AccountKindEnterprise, models.AccountKindTeacher))
		{
			accounts.POST("/:kind", accountHandler.Provision)
			accounts.GET("/:kind/:id/identity", accountHandler.Identity)
		}

		relationships := v1.Group("/relationships", organizations)
		{
			relationships.GET("", relationshipHandler.ListPool)
			relationships.GET("/export", relationshipHandler.ExportPool)
			relationships.GET("/candidates/:candidateId", relationshipHandler.GetForCandidate)
		}

		v1.POST("/jobs", organizations, contactHandler.PostJob)
		v1.POST("/resumes", students, contactHandler.CreateResume)
		v1.POST("/applications", students, contactHandler.Apply)
		v1.POST("/interviews", organizations, contactHandler.ScheduleInterview)
		v1.POST("/offers", organizations, contactHandler.IssueOffer)
		v1.POST("/bookmarks", organizations, contactHandler.Bookmark)
		v1.POST("/conversations", organizations, contactHandler.OpenConversation)

		admin := v1.Group("/admin", authMiddleware.RequireKind(models.AccountKindAdmin))
		{
			admin.POST("/ledger/rebuild", adminHandler.RebuildLedger)
		}
	}

	return router
}
