package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/xappkit/errors"
)

// ErrorTranslation returns a Gin middleware that converts errors attached
// to the context into JSON error responses. Handlers report failures with
// c.Error(err) and return; an AppError keeps its HTTP status, anything
// else becomes a 500.
func ErrorTranslation() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := errors.AsAppError(err); ok {
			c.JSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}
		c.JSON(http.StatusInternalServerError, errors.Internal(err).ToResponse())
	}
}
