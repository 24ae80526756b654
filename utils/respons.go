package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error    string   `json:"error"`
	Required []string `json:"required,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// RespondError mengubah err menjadi ValidationError/NotFoundError/InternalError
// lalu menulis body {"error": ...} dengan status yang sesuai.
func RespondError(c *gin.Context, err error) {
	appErr := AsAppError(err)
	status := appErr.Status()

	entry := ErrorLogger.WithFields(logrus.Fields{
		"kind":       appErr.Kind.String(),
		"status":     status,
		"path":       c.Request.URL.Path,
		"request_id": c.GetString(RequestIDKey),
	})
	if appErr.Kind == KindInternal {
		entry.Error(appErr.Message)
	} else {
		entry.Warn(appErr.Message)
	}

	c.JSON(status, ErrorResponse{Error: appErr.Message, Required: appErr.Required})
}

// RespondStatusError menulis body error dengan status eksplisit.
func RespondStatusError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
