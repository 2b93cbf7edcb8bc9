package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/internal/adapter/dto/common"
	httpmw "github.com/johnquangdev/tubeblog/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/tubeblog/pkg/config"
)

// Pinger reports whether a backing service is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	authHandler    *Auth
	blogHandler    *Blog
	tokenValidator httpmw.TokenValidator
	checks         map[string]Pinger
	logger         *zap.Logger
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authHandler *Auth, blogHandler *Blog, tokenValidator httpmw.TokenValidator, logger *zap.Logger) *Router {
	return &Router{
		cfg:            cfg,
		authHandler:    authHandler,
		blogHandler:    blogHandler,
		tokenValidator: tokenValidator,
		checks:         make(map[string]Pinger),
		logger:         logger,
	}
}

// AddHealthCheck registers a dependency probed by GET /health
func (rt *Router) AddHealthCheck(name string, p Pinger) {
	rt.checks[name] = p
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupBlogRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/signup", rt.authHandler.Signup)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.GET("/me", rt.authHandler.Me, httpmw.EchoAuth(rt.tokenValidator))
}

// setupBlogRoutes configures blog generation and management routes
func (rt *Router) setupBlogRoutes(g *echo.Group) {
	blogGroup := g.Group("/blogs", httpmw.EchoAuth(rt.tokenValidator))

	limiter := httpmw.PerUserRateLimit(rt.cfg.Server.GenerateRatePerMinute, rt.cfg.Server.GenerateBurst)
	blogGroup.POST("/generate", rt.blogHandler.Generate, limiter)
	blogGroup.GET("", rt.blogHandler.List)
	blogGroup.GET("/:id", rt.blogHandler.Get)
	blogGroup.DELETE("/:id", rt.blogHandler.Delete)
	blogGroup.POST("/:id/export", rt.blogHandler.Export)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Failure      503  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
	}
	status := http.StatusOK

	if len(rt.checks) > 0 {
		resp.Checks = make(map[string]string, len(rt.checks))
	}
	for name, p := range rt.checks {
		if err := p.Ping(ctx); err != nil {
			if rt.logger != nil {
				rt.logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
			}
			resp.Checks[name] = "unavailable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	return c.JSON(status, resp)
}
