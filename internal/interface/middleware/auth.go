package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/givehub/givehub/internal/interface/strategy"
	"github.com/givehub/givehub/pkg/response"
)

const (
	// CtxUserIDKey is where the authenticated account id lands in the Gin context.
	CtxUserIDKey = "userID"
	// CtxUserKey holds the full *entity.User.
	CtxUserKey = "user"
)

// Auth guards routes with the bearer-token strategy. Any failure (missing
// header, bad signature, expired token, missing account) produces the
// same generic 401.
func Auth(bearer *strategy.Bearer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "authentication failed", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		user, err := bearer.Authenticate(c.Request.Context(), token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "authentication failed", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set(CtxUserIDKey, user.ID)
		c.Set(CtxUserKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
