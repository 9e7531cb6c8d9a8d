// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/config"
	"github.com/javajoker/product-catalog/internal/handlers"
	"github.com/javajoker/product-catalog/internal/middleware"
	"github.com/javajoker/product-catalog/internal/services"
)

// Initialize builds the engine. The returned RateLimiter must be stopped on
// shutdown.
func Initialize(db *gorm.DB, cfg *config.Config, logger logrus.FieldLogger) (*gin.Engine, *middleware.RateLimiter) {
	// Initialize services
	productService := services.NewProductService(db)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	healthHandler := handlers.NewHealthHandler(db)

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())

	// Health check
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	api.Use(limiter.Middleware())
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}
	}

	return r, limiter
}
