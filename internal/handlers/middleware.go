package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingToken = "Nggada token!"
	msgInvalidToken = "Token tidak valid!"

	// ctxUserIDKey is the one context key downstream handlers read the
	// authenticated identity from; nothing else is attached to the request.
	ctxUserIDKey = "userId"
)

// authMiddleware gatekeeps protected routes: a request either proceeds with
// the resolved user id in its context, or is rejected with 401 and the chain
// stops. Verification is local; there are no retries.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code":    http.StatusUnauthorized,
			"message": msgMissingToken,
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code":    http.StatusUnauthorized,
			"message": msgMissingToken,
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code":    http.StatusUnauthorized,
			"message": msgInvalidToken,
		})
		return
	}

	c.Set(ctxUserIDKey, userID)
	c.Next()
}

// userIDFromContext reads the identity the middleware attached.
func userIDFromContext(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
