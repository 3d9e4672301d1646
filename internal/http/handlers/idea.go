package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/creatorhub-backend/internal/domain/ideas"
	"github.com/yungbote/creatorhub-backend/internal/http/response"
	"github.com/yungbote/creatorhub-backend/internal/services"
)

var errInvalidIdeaID = errors.New("Invalid idea id")

// tagList accepts either a JSON array of strings or one comma separated string.
type tagList []string

func (t *tagList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*t = arr
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return errors.New("tags must be an array or a comma separated string")
	}
	*t = ideas.SplitTags(raw)
	return nil
}

type IdeaHandler struct {
	ideaService services.IdeaService
}

func NewIdeaHandler(ideaService services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// GET /api/ideas?limit=10&skip=0
func (ih *IdeaHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	skip, _ := strconv.Atoi(c.Query("skip"))
	page, err := ih.ideaService.List(c.Request.Context(), limit, skip)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, page)
}

// GET /api/ideas/:id
func (ih *IdeaHandler) Get(c *gin.Context) {
	id, ok := ideaIDParam(c)
	if !ok {
		return
	}
	idea, err := ih.ideaService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, idea)
}

// POST /api/ideas
func (ih *IdeaHandler) Create(c *gin.Context) {
	var req struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Tags        tagList `json:"tags"`
		Hook        string  `json:"hook"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	idea, err := ih.ideaService.Create(c.Request.Context(), services.CreateIdeaInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Hook:        req.Hook,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusCreated, idea)
}

// PUT /api/ideas/:id
// Absent fields are left unchanged.
func (ih *IdeaHandler) Update(c *gin.Context) {
	id, ok := ideaIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Tags        *tagList `json:"tags"`
		Hook        *string  `json:"hook"`
		Script      *struct {
			Content     *string `json:"content"`
			GeneratedBy *string `json:"generatedBy"`
		} `json:"script"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	in := services.UpdateIdeaInput{
		Title:       req.Title,
		Description: req.Description,
		Hook:        req.Hook,
	}
	if req.Tags != nil {
		tags := []string(*req.Tags)
		in.Tags = &tags
	}
	if req.Script != nil {
		in.Script = &services.ScriptPatch{
			Content:     req.Script.Content,
			GeneratedBy: req.Script.GeneratedBy,
		}
	}
	idea, err := ih.ideaService.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, idea)
}

// DELETE /api/ideas/:id
func (ih *IdeaHandler) Delete(c *gin.Context) {
	id, ok := ideaIDParam(c)
	if !ok {
		return
	}
	if err := ih.ideaService.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, gin.H{"message": "Idea deleted successfully"})
}

func ideaIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", errInvalidIdeaID)
		return uuid.Nil, false
	}
	return id, true
}
