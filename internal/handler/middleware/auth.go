package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"

	bearerPrefix = "Bearer "
)

var (
	errMissingToken     = errs.New("access token required")
	errMissingPrincipal = errs.New("authenticated principal missing from context")
	errRoleNotAllowed   = errs.New("role not allowed")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts a bearer token and stores the caller id and role on
// the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
			return
		}
		if !slices.Contains(roles, role) {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleNotAllowed, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// MustPrincipal aborts with 500 when RequireAuth did not run.
func MustPrincipal(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, idOK := GetUserID(c)
	role, roleOK := GetUserRole(c)
	if !idOK || !roleOK {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
		return uuid.Nil, "", false
	}
	return userID, role, true
}
