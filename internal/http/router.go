package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/creatorhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/creatorhub-backend/internal/http/middleware"
	"github.com/yungbote/creatorhub-backend/internal/observability"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	CORSOrigins    []string
	TracingEnabled bool
	ServiceName    string

	AuthMiddleware *httpMW.AuthMiddleware
	HealthHandler  *httpH.HealthHandler
	AuthHandler    *httpH.AuthHandler
	UserHandler    *httpH.UserHandler
	UsageHandler   *httpH.UsageHandler
	IdeaHandler    *httpH.IdeaHandler
	PlannerHandler *httpH.PlannerHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(stdhttp.StatusFound, "/api")
	})

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.HealthHandler != nil {
			api.GET("", cfg.HealthHandler.Index)
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}

		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/signup", cfg.AuthHandler.Signup)
			api.POST("/auth/signin", cfg.AuthHandler.Signin)
			api.POST("/auth/refresh", cfg.AuthHandler.Refresh)
		}
	}

	protected := api.Group("")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/auth/logout", cfg.AuthHandler.Logout)
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/auth/me", cfg.UserHandler.GetMe)
		}

		// Usage
		if cfg.UsageHandler != nil {
			protected.GET("/auth/usage", cfg.UsageHandler.GetUsage)
			protected.POST("/auth/increment-usage", cfg.UsageHandler.IncrementRandomIdea)
			protected.POST("/auth/increment-ai-usage", cfg.UsageHandler.IncrementAI)
		}

		// Ideas
		if cfg.IdeaHandler != nil {
			protected.GET("/ideas", cfg.IdeaHandler.List)
			protected.GET("/ideas/:id", cfg.IdeaHandler.Get)
			protected.POST("/ideas", cfg.IdeaHandler.Create)
			protected.PUT("/ideas/:id", cfg.IdeaHandler.Update)
			protected.DELETE("/ideas/:id", cfg.IdeaHandler.Delete)
		}

		// Planner
		if cfg.PlannerHandler != nil {
			protected.GET("/planner/current-week", cfg.PlannerHandler.CurrentWeek)
			protected.POST("/planner/assign-idea", cfg.PlannerHandler.AssignIdea)
			protected.PUT("/planner/update-status", cfg.PlannerHandler.UpdateStatus)
			protected.PUT("/planner/update-note", cfg.PlannerHandler.UpdateNote)
		}
	}

	return r
}
