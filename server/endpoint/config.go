package endpoint

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/xappkit/errors"
)

// ConfigFile returns a handler serving the raw configuration file the xApp
// was started with. Parsing is left to the caller; the bootstrap layer
// stores the path verbatim.
func ConfigFile(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				c.Error(errors.NotFound("config file", path))
				return
			}
			c.Error(errors.Internal(err))
			return
		}
		c.Data(http.StatusOK, "application/x-yaml", content)
	}
}
