package identityapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vinom-labs/repmaze/service/i"
)

// ContextOperatorClaims is the Gin context key holding the decoded JWT
// claims of the authenticated operator.
const ContextOperatorClaims = "operatorClaims"

// Authorize is Gin middleware that requires a valid "Bearer <token>"
// Authorization header, decoded through ts, before letting a request reach
// a protected route.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextOperatorClaims, claims)
		c.Next()
	}
}
