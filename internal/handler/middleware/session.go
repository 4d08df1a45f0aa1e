package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionHeader = "X-Session-ID"

// OwnerID resolves who a cart or comparison set belongs to: the
// authenticated user when there is one, otherwise the anonymous session id
// the client sends in X-Session-ID. An empty result means the request
// carries no usable identity.
func OwnerID(c *gin.Context) string {
	if userID, ok := GetUserID(c); ok {
		return userID.String()
	}

	sessionID := strings.TrimSpace(c.GetHeader(sessionHeader))
	if sessionID == "" {
		return ""
	}
	return "anon:" + sessionID
}
