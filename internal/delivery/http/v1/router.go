package v1

import (
	"net/http"
	"time"

	"bb-schoonmaak-backend/config"
	"bb-schoonmaak-backend/internal/delivery/http/middleware"
	"bb-schoonmaak-backend/internal/delivery/http/response"
	"bb-schoonmaak-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SubmissionUC  domain.SubmissionUsecase
	CatalogUC     domain.CatalogUsecase
	ClientStateUC domain.ClientStateUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalLimit, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Catalog and client-state routes
	NewCatalogHandler(v1, deps.CatalogUC)
	NewClientStateHandler(v1, deps.ClientStateUC)

	// Form routes carry the strict per-IP limit
	forms := v1.Group("")
	forms.Use(middleware.RateLimitMiddleware(
		middleware.FormRateLimitConfig(deps.Config.RateLimitFormThreshold, window)))
	{
		NewFormHandler(forms, deps.SubmissionUC)
	}

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
