package v1

import (
	"net/http"
	"time"

	"go-scales-backend/config"
	"go-scales-backend/internal/delivery/http/middleware"
	"go-scales-backend/internal/delivery/http/response"
	"go-scales-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ProductUC domain.ProductUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first: it also answers OPTIONS preflight
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// The contact endpoint triggers outbound email, so it carries its
	// own stricter limit on top of the global one.
	contactLimiter := middleware.RateLimitMiddleware(
		middleware.ContactRateLimitConfig(deps.Config.RateLimitContactThreshold, window))

	NewContactHandler(api, deps.ContactUC, contactLimiter)
	NewProductHandler(api, deps.ProductUC)

	return r
}
