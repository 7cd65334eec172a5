package routes

import (
	"time"

	_ "realtrust-http-service/docs"
	"realtrust-http-service/internal/app/controllers"
	"realtrust-http-service/internal/app/middleware"
	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/domain/services/container"
	"realtrust-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisService *services.RedisService) *gin.Engine {
	r := gin.Default()

	// CORS middleware; credentials are required because the admin dashboard
	// authenticates with an http-only cookie.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.FrontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Create the service container
	serviceContainer := container.NewServiceContainer(db, cfg, redisService)

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Serve uploaded images and legacy static assets
	r.Static(cfg.UploadURLBasePath, cfg.UploadDir)
	r.Static("/public", cfg.PublicAssetsDir)

	// Register routes
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API route root path
	api := r.Group("/api")
	// Register public routes
	registerPublicRoutes(api, container)
	// Register routes requiring authentication
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no authentication
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// IP rate limiting middleware - 10 requests per second, burst of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	// Health check routes
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "status"))

	// Admin authentication routes
	api.POST("/admin/register", controllers.HandleAdminFunc(container, "register"))
	api.POST("/admin/login", controllers.HandleAdminFunc(container, "login"))

	// Public lead submission from the landing page contact form
	api.POST("/leads", controllers.HandleLeadFunc(container, "createLead"))

	// Public content routes consumed by the landing page
	api.GET("/projects", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleProjectFunc(container, "getProjects"))
	api.GET("/clients", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleClientFunc(container, "getClients"))

	// Newsletter subscription
	api.POST("/subscribers", controllers.HandleSubscriberFunc(container, "subscribe"))
}

// registerAuthenticatedRoutes registers routes requiring a valid admin token
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	jwtService := container.GetService("jwt").(services.InterfaceJWTService)

	// Authentication middleware
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin(jwtService))

	// General rate limiting middleware - 30 requests per second, burst of 50
	auth.Use(middleware.IPRateLimiter(30, 50))

	// Token verification for dashboard session restore
	auth.GET("/admin/verify", controllers.HandleAdminFunc(container, "verify"))

	// Lead management routes. The fixed paths must be registered before
	// the :id route so "stats" and "export" are not parsed as lead IDs.
	leadGroup := auth.Group("/admin/leads")
	leadGroup.GET("/stats", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleLeadFunc(container, "getLeadStats"))
	leadGroup.GET("/export", controllers.HandleLeadFunc(container, "exportLeads"))
	leadGroup.GET("", controllers.HandleLeadFunc(container, "getLeads"))
	leadGroup.GET("/:id", controllers.HandleLeadFunc(container, "getLead"))
	leadGroup.PUT("/:id", controllers.HandleLeadFunc(container, "updateLead"))
	leadGroup.DELETE("/:id", controllers.HandleLeadFunc(container, "deleteLead"))

	// Dashboard analytics
	auth.GET("/admin/analytics", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleLeadFunc(container, "getAnalytics"))

	// Subscriber management
	auth.GET("/admin/subscribers", controllers.HandleSubscriberFunc(container, "getSubscribers"))
	auth.DELETE("/admin/subscribers/:id", controllers.HandleSubscriberFunc(container, "deleteSubscriber"))

	// Project content mutations
	projectGroup := auth.Group("/projects")
	projectGroup.POST("", controllers.HandleProjectFunc(container, "createProject"))
	projectGroup.PUT("/:id", controllers.HandleProjectFunc(container, "updateProject"))
	projectGroup.DELETE("/:id", controllers.HandleProjectFunc(container, "deleteProject"))

	// Client content mutations
	clientGroup := auth.Group("/clients")
	clientGroup.POST("", controllers.HandleClientFunc(container, "createClient"))
	clientGroup.PUT("/:id", controllers.HandleClientFunc(container, "updateClient"))
	clientGroup.DELETE("/:id", controllers.HandleClientFunc(container, "deleteClient"))

	// Image upload routes
	uploadGroup := auth.Group("/upload")
	uploadGroup.POST("/project", controllers.HandleUploadFunc(container, "uploadProjectImage"))
	uploadGroup.POST("/client", controllers.HandleUploadFunc(container, "uploadClientImage"))
}
