package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/creatorhub-backend/internal/domain/usage"
	"github.com/yungbote/creatorhub-backend/internal/http/response"
	"github.com/yungbote/creatorhub-backend/internal/services"
)

type UsageHandler struct {
	usageService services.UsageService
}

func NewUsageHandler(usageService services.UsageService) *UsageHandler {
	return &UsageHandler{usageService: usageService}
}

// GET /api/auth/usage
func (uh *UsageHandler) GetUsage(c *gin.Context) {
	report, err := uh.usageService.Report(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, report)
}

// POST /api/auth/increment-usage
func (uh *UsageHandler) IncrementRandomIdea(c *gin.Context) {
	got, err := uh.usageService.Increment(c.Request.Context(), usage.FeatureRandomIdea)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, got)
}

// POST /api/auth/increment-ai-usage
// body: { "type": "collaboration" | "expansion" | "hook" | "script" | "script_refinement" }
func (uh *UsageHandler) IncrementAI(c *gin.Context) {
	var req struct {
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	got, err := uh.usageService.IncrementAI(c.Request.Context(), req.Type)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, got)
}
