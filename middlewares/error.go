package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError carries a user-facing message together with the HTTP status it
// should be returned with. Handlers attach one via c.Error and abort; the
// ErrorHandler middleware turns it into the JSON error envelope.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError builds an AppError with the given message and status code.
func NewAppError(message string, code int) *AppError {
	return &AppError{Code: code, Message: message}
}

// ErrorHandler converts any error attached to the context into the
// {success:false, message} envelope. Unknown error types become a generic
// 500 so no raw error ever reaches the transport layer.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		code := http.StatusInternalServerError
		message := "Internal Server Error"

		var appErr *AppError
		if errors.As(err, &appErr) {
			code = appErr.Code
			message = appErr.Message
		}

		c.JSON(code, gin.H{
			"success": false,
			"message": message,
		})
	}
}
