package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

const (
	UserIDHeader     = "X-User-ID"
	ContextUserIDKey = "userID"
)

// UserMiddleware resolves the acting user from X-User-ID, falling back to
// defaultUser when the header is absent. There is no authentication.
func UserMiddleware(defaultUser string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			raw = defaultUser
		}

		userID, err := domain.NormalizeUserID(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}
