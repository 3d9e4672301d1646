package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/creatorhub-backend/internal/http/response"
	"github.com/yungbote/creatorhub-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /api/auth/me
func (uh *UserHandler) GetMe(c *gin.Context) {
	me, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, gin.H{"user": me})
}
