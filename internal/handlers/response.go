package handlers

import (
	"net/http"

	"inventory_lending/internal/validation"

	"github.com/gin-gonic/gin"
)

// Envelope rules, kept uniform across every endpoint:
//   - success with payload:    {code, message, data}
//   - success without payload: {code, message}
//   - failure:                 {message}
//   - validation failure:      {errors: [{field, message}, ...]}

func respondData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{"code": status, "message": message, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"code": status, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func respondValidation(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// respondServerError logs the underlying failure and returns only a generic
// message to the caller; persistence detail never leaves the process.
func (h *Handler) respondServerError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	respondError(c, http.StatusInternalServerError, userMsg)
}
