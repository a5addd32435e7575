package respond

import (
	"github.com/gin-gonic/gin"

	"wetheparent-backend/internal/shared/telemetry"
)

// ErrorResponse is the error body returned by every endpoint. UI surfaces
// display Error verbatim, so the message carries the collaborator's words.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends the standardized error body and logs the failure with its
// machine-readable code. The code never reaches the client.
func Error(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
