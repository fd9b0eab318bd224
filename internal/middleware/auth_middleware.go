package middleware

import (
	"net/http"
	"strings"

	"store_expiry_backend/internal/models"
	"store_expiry_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserKey = "user"
	ContextRoleKey = "userRole"
)

// TokenValidator verifies a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (*utils.Claims, error)
}

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", ""))
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			utils.LogDebug("Rejected token", map[string]interface{}{"reason": err.Error()})
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", ""))
			return
		}

		user := models.User{
			Role:    claims.Role,
			StaffID: claims.StaffID,
			StoreID: claims.StoreID,
			Name:    claims.Name,
		}
		c.Set(ContextUserKey, user)
		c.Set(ContextRoleKey, user.Role)

		c.Next()
	}
}

// RoleAuthMiddleware creates a Gin middleware for role-based authorization.
// It must run after AuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr := c.GetString(ContextRoleKey)
		if roleStr == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "User role not found in token claims", ""))
			return
		}

		for _, r := range allowedRoles {
			if strings.EqualFold(roleStr, r) {
				c.Next()
				return
			}
		}

		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden,
			"You do not have permission to access this resource. Required roles: "+strings.Join(allowedRoles, ", "), ""))
	}
}

// CurrentUser returns the identity stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
