package app

import (
	"time"

	"github.com/yungbote/creatorhub-backend/internal/http"
	httpH "github.com/yungbote/creatorhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/creatorhub-backend/internal/http/middleware"
	"github.com/yungbote/creatorhub-backend/internal/observability"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Auth    *httpH.AuthHandler
	User    *httpH.UserHandler
	Usage   *httpH.UsageHandler
	Idea    *httpH.IdeaHandler
	Planner *httpH.PlannerHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(time.Now),
		Auth:    httpH.NewAuthHandler(services.Auth),
		User:    httpH.NewUserHandler(services.User),
		Usage:   httpH.NewUsageHandler(services.Usage),
		Idea:    httpH.NewIdeaHandler(services.Idea),
		Planner: httpH.NewPlannerHandler(services.Planner),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *http.Server {
	return http.NewServer(log, cfg.Addr(), http.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		TracingEnabled: cfg.Otel.Enabled,
		ServiceName:    cfg.Otel.ServiceName,
		AuthMiddleware: middleware.Auth,
		HealthHandler:  handlers.Health,
		AuthHandler:    handlers.Auth,
		UserHandler:    handlers.User,
		UsageHandler:   handlers.Usage,
		IdeaHandler:    handlers.Idea,
		PlannerHandler: handlers.Planner,
	})
}
