package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"echoscribe/internal/api/errors"
	"echoscribe/internal/api/middleware"
	"echoscribe/internal/api/v1/dto"
	"echoscribe/internal/api/v1/services"
)

// AuthHandler handles token issuance
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// Token handles POST /token
//
// @Summary Issue an access token
// @Description Verifies username and password and returns a time-limited bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenResponse "Token issued"
// @Failure 401 {object} errors.APIError "Invalid credentials"
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest

	if err := middleware.ValidateForm(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	token, err := h.service.IssueToken(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// The challenge header only accompanies credential rejections, not
		// server-side failures.
		if apiErr, ok := err.(*errors.APIError); ok && apiErr.Kind == errors.KindUnauthorized {
			c.Header("WWW-Authenticate", "Bearer")
		}
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
