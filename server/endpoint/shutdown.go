package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShutdownTrigger returns a handler that requests process shutdown by
// invoking trigger. Triggering is idempotent: repeated calls have the same
// effect as one.
func ShutdownTrigger(trigger func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		trigger()
		c.JSON(http.StatusAccepted, gin.H{
			"status": "shutting down",
		})
	}
}
