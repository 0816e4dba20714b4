package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/auth"
	"github.com/avtanos/vetcard/internal/config"
	"github.com/avtanos/vetcard/internal/handler"
	"github.com/avtanos/vetcard/internal/metrics"
	"github.com/avtanos/vetcard/internal/middleware"
	"github.com/avtanos/vetcard/internal/repository"
	"github.com/avtanos/vetcard/internal/service"
	"github.com/avtanos/vetcard/internal/storage"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	Tokens         *auth.TokenManager
	Storage        storage.Storage
	Upload         config.UploadConfig
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics

	// MediaRoot enables static serving of uploaded files under /media
	// when the local storage backend is active.
	MediaRoot string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "vetcard"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "vetcard"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "vetcard"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "vetcard"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "vetcard"})
	})

	// Uploaded files, served directly when the local backend is active
	if cfg.MediaRoot != "" {
		r.Static("/media", cfg.MediaRoot)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	petRepo := repository.NewPetRepository(cfg.DB)
	recordRepo := repository.NewMedicalRecordRepository(cfg.DB)
	reminderRepo := repository.NewReminderRepository(cfg.DB)
	docRepo := repository.NewDocumentRepository(cfg.DB)
	partnerRepo := repository.NewPartnerRepository(cfg.DB)
	productRepo := repository.NewProductRepository(cfg.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.Tokens)
	petService := service.NewPetService(petRepo, cfg.Storage, cfg.Upload, cfg.Logger)
	recordService := service.NewMedicalRecordService(recordRepo, petRepo)
	reminderService := service.NewReminderService(reminderRepo, petRepo)
	docService := service.NewDocumentService(docRepo, petRepo, cfg.Storage, cfg.Upload, cfg.Logger)
	partnerService := service.NewPartnerService(partnerRepo)
	productService := service.NewProductService(productRepo, partnerRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Metrics, cfg.Logger)
	petHandler := handler.NewPetHandler(petService, cfg.Storage, cfg.Metrics, cfg.Logger)
	recordHandler := handler.NewMedicalRecordHandler(recordService, cfg.Logger)
	reminderHandler := handler.NewReminderHandler(reminderService, cfg.Logger)
	docHandler := handler.NewDocumentHandler(docService, cfg.Storage, cfg.Metrics, cfg.Logger)
	partnerHandler := handler.NewPartnerHandler(partnerService, cfg.Logger)
	productHandler := handler.NewProductHandler(productService, cfg.Logger)

	api := r.Group(cfg.BasePath)
	authMiddleware := middleware.Auth(cfg.Tokens)

	// ============================================================
	// Auth and token routes
	// ============================================================
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware, authHandler.Me)
	}
	api.POST("/token", authHandler.Token)
	api.POST("/token/refresh", authHandler.TokenRefresh)

	// ============================================================
	// Pet routes
	// ============================================================
	pets := api.Group("/pets", authMiddleware)
	{
		pets.POST("", petHandler.Create)
		pets.GET("", petHandler.List)
		pets.GET("/:id", petHandler.Get)
		pets.PUT("/:id", petHandler.Update)
		pets.PATCH("/:id", petHandler.Update)
		pets.DELETE("/:id", petHandler.Delete)
		pets.POST("/:id/upload_image", petHandler.UploadImage)
	}

	// ============================================================
	// Medical record routes
	// ============================================================
	records := api.Group("/medical-records", authMiddleware)
	{
		records.POST("", recordHandler.Create)
		records.GET("", recordHandler.List)
		records.GET("/:id", recordHandler.Get)
		records.PUT("/:id", recordHandler.Update)
		records.PATCH("/:id", recordHandler.Update)
		records.DELETE("/:id", recordHandler.Delete)
	}

	// ============================================================
	// Reminder routes
	// ============================================================
	reminders := api.Group("/reminders", authMiddleware)
	{
		reminders.POST("", reminderHandler.Create)
		reminders.GET("", reminderHandler.List)
		reminders.GET("/:id", reminderHandler.Get)
		reminders.PUT("/:id", reminderHandler.Update)
		reminders.PATCH("/:id", reminderHandler.Update)
		reminders.DELETE("/:id", reminderHandler.Delete)
	}

	// ============================================================
	// Document routes
	// ============================================================
	documents := api.Group("/documents", authMiddleware)
	{
		documents.POST("", docHandler.Create)
		documents.GET("", docHandler.List)
		documents.GET("/:id", docHandler.Get)
		documents.PUT("/:id", docHandler.Update)
		documents.PATCH("/:id", docHandler.Update)
		documents.DELETE("/:id", docHandler.Delete)
		documents.POST("/:id/upload_file", docHandler.UploadFile)
	}

	// ============================================================
	// Partner routes
	// ============================================================
	partners := api.Group("/partners", authMiddleware)
	{
		partners.POST("", partnerHandler.Create)
		partners.GET("", partnerHandler.List)
		partners.GET("/:id", partnerHandler.Get)
		partners.PUT("/:id", partnerHandler.Update)
		partners.PATCH("/:id", partnerHandler.Update)
		partners.DELETE("/:id", partnerHandler.Delete)
	}

	// ============================================================
	// Product routes
	// ============================================================
	products := api.Group("/products", authMiddleware)
	{
		products.POST("", productHandler.Create)
		products.GET("", productHandler.List)
		products.GET("/categories", productHandler.Categories)
		products.GET("/:id", productHandler.Get)
		products.PUT("/:id", productHandler.Update)
		products.PATCH("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	return r
}
