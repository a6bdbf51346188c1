package middlewares

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/acochrane/send-relay/internal/api/respond"
)

const bearerPrefix = "Bearer "

// BearerAuth verifies the shared worker credential on every request.
//
// The comparison is constant-time; a missing or mismatched credential always
// yields 401, never a silent pass-through.
func BearerAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing bearer credential"))
			c.Abort()
			return
		}

		provided := strings.TrimPrefix(header, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid bearer credential"))
			c.Abort()
			return
		}

		c.Next()
	}
}
