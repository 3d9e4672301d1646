package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/creatorhub-backend/internal/http/response"
	"github.com/yungbote/creatorhub-backend/internal/services"
)

var (
	errDayRequired    = errors.New("Please provide dayOfWeek (0-6)")
	errInvalidIdeaRef = errors.New("Invalid ideaId")
)

type PlannerHandler struct {
	plannerService services.PlannerService
}

func NewPlannerHandler(plannerService services.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// GET /api/planner/current-week?nextWeek=true
func (ph *PlannerHandler) CurrentWeek(c *gin.Context) {
	nextWeek := strings.EqualFold(strings.TrimSpace(c.Query("nextWeek")), "true")
	view, err := ph.plannerService.ReadWeek(c.Request.Context(), nextWeek)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, view)
}

// POST /api/planner/assign-idea
// body: { "dayOfWeek": 0-6, "ideaId": "<uuid>" | null, "nextWeek": bool }
func (ph *PlannerHandler) AssignIdea(c *gin.Context) {
	var req struct {
		DayOfWeek *int    `json:"dayOfWeek"`
		IdeaID    *string `json:"ideaId"`
		NextWeek  bool    `json:"nextWeek"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.DayOfWeek == nil {
		response.RespondError(c, http.StatusBadRequest, "validation", errDayRequired)
		return
	}
	var ideaID *uuid.UUID
	if req.IdeaID != nil && strings.TrimSpace(*req.IdeaID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.IdeaID))
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "validation", errInvalidIdeaRef)
			return
		}
		ideaID = &id
	}
	view, err := ph.plannerService.AssignIdea(c.Request.Context(), services.AssignIdeaRequest{
		DayOfWeek: *req.DayOfWeek,
		IdeaID:    ideaID,
		NextWeek:  req.NextWeek,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, view)
}

// PUT /api/planner/update-status
// body: { "dayOfWeek": 0-6, "status": "planned" | "posted" | "skipped", "nextWeek": bool }
func (ph *PlannerHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		DayOfWeek *int   `json:"dayOfWeek"`
		Status    string `json:"status"`
		NextWeek  bool   `json:"nextWeek"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.DayOfWeek == nil {
		response.RespondError(c, http.StatusBadRequest, "validation", errDayRequired)
		return
	}
	res, err := ph.plannerService.UpdateStatus(c.Request.Context(), req.NextWeek, *req.DayOfWeek, req.Status)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, res)
}

// PUT /api/planner/update-note
// body: { "dayOfWeek": 0-6, "note": "...", "nextWeek": bool }
func (ph *PlannerHandler) UpdateNote(c *gin.Context) {
	var req struct {
		DayOfWeek *int    `json:"dayOfWeek"`
		Note      *string `json:"note"`
		NextWeek  bool    `json:"nextWeek"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.DayOfWeek == nil {
		response.RespondError(c, http.StatusBadRequest, "validation", errDayRequired)
		return
	}
	note := ""
	if req.Note != nil {
		note = *req.Note
	}
	res, err := ph.plannerService.UpdateNote(c.Request.Context(), req.NextWeek, *req.DayOfWeek, note)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, res)
}
