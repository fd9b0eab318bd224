package handlers

import (
	"errors"
	"net/http"

	"store_expiry_backend/internal/models"
	"store_expiry_backend/internal/services"
	"store_expiry_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// Login handles admin and staff login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogWarn("Login: Failed to bind JSON", map[string]interface{}{"error": err.Error()})
		utils.RespondValidationFailed(c, "Role and credential are required.", err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			utils.RespondValidationFailed(c, "Role and credential are required.", "")
		case errors.Is(err, services.ErrInvalidRole):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid role specified.", ""))
		case errors.Is(err, services.ErrInvalidAdminPassword):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid admin password.", ""))
		case errors.Is(err, services.ErrInvalidAccessCode):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid access code.", ""))
		case errors.Is(err, services.ErrStaffForCodeNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found for this code.", ""))
		default:
			utils.LogError(err, "Login: Error from authService.Login")
			utils.RespondInternalError(c, "An internal server error occurred.")
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
