package middleware

import (
	"net/http"
	"strings"

	"github.com/astrodate/astrodate-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserKey holds the authenticated *domain.User.
	ContextUserKey = "user"
	// ContextUserIDKey holds the authenticated user's ID.
	ContextUserIDKey = "user_id"
)

type AuthMiddleware struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthMiddleware(authUseCase *auth.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{authUseCase: authUseCase}
}

// RequireAuth rejects requests without a valid bearer token. All
// failures get the same 401 body so the response does not leak which
// check failed.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			m.abortUnauthorized(c)
			return
		}

		user, err := m.authUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			m.abortUnauthorized(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

func (m *AuthMiddleware) abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "could not validate credentials",
	})
}
