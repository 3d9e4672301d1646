package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	apiName    = "Creator Hub API"
	apiVersion = "1.0.0"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler(now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{now: now}
}

// GET /healthcheck, GET /api/health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "API is running",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// GET /api
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": apiName,
		"version": apiVersion,
		"endpoints": gin.H{
			"auth": gin.H{
				"signup":  "POST /api/auth/signup",
				"signin":  "POST /api/auth/signin",
				"refresh": "POST /api/auth/refresh",
				"logout":  "POST /api/auth/logout (protected)",
				"me":      "GET /api/auth/me (protected)",
				"usage":   "GET /api/auth/usage (protected)",
			},
			"ideas": gin.H{
				"getAll": "GET /api/ideas (protected)",
				"getOne": "GET /api/ideas/:id (protected)",
				"create": "POST /api/ideas (protected)",
				"update": "PUT /api/ideas/:id (protected)",
				"delete": "DELETE /api/ideas/:id (protected)",
			},
			"planner": gin.H{
				"getCurrentWeek": "GET /api/planner/current-week (protected)",
				"assignIdea":     "POST /api/planner/assign-idea (protected)",
				"updateStatus":   "PUT /api/planner/update-status (protected)",
				"updateNote":     "PUT /api/planner/update-note (protected)",
			},
			"health": "GET /api/health",
		},
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}
