package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"echoscribe/internal/api/errors"
	"echoscribe/internal/app/model"
)

// UserContextKey is the gin context key the authenticated user is stored
// under for downstream handlers.
const UserContextKey = "current_user"

// TokenAuthenticator resolves a bearer token to a stored user.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// BearerAuth guards protected routes. Whether the token failed verification
// or its subject no longer exists is not revealed to the caller; both cases
// produce the same generic 401.
func BearerAuth(authn TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c)
			return
		}

		user, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by BearerAuth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	HandleError(c, errors.NewUnauthorizedError("Could not validate credentials"))
}
