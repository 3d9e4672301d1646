package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/creatorhub-backend/internal/http/response"
	"github.com/yungbote/creatorhub-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type authUserJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResultJSON struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"`
	User         authUserJSON `json:"user"`
}

func (ah *AuthHandler) toJSON(res *services.AuthResult) authResultJSON {
	return authResultJSON{
		Token:        res.Token,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    int(ah.authService.GetAccessTTL().Seconds()),
		User: authUserJSON{
			ID:    res.User.ID.String(),
			Name:  res.User.Name,
			Email: res.User.Email,
		},
	}
}

// POST /api/auth/signup
func (ah *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := ah.authService.Signup(c.Request.Context(), services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusCreated, ah.toJSON(res))
}

// POST /api/auth/signin
func (ah *AuthHandler) Signin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := ah.authService.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, ah.toJSON(res))
}

// POST /api/auth/refresh
func (ah *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := ah.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, ah.toJSON(res))
}

// POST /api/auth/logout
func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.Logout(c.Request.Context()); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondData(c, http.StatusOK, gin.H{"ok": true})
}
