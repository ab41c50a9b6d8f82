package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tade-autism-centre/backend/auth"
)

// AdminEmailKey is where RequireAdmin stores the verified admin email
// on the gin context.
const AdminEmailKey = "adminEmail"

// RequireAdmin authenticates the bearer token and authorises it against
// the admin allow-list. Client-side login also checks the allow-list,
// but that check is not trustworthy, so every admin endpoint repeats it
// here.
func RequireAdmin(verifier auth.Verifier, admins auth.Allowlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No auth token provided"})
			return
		}

		email, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if !admins.Contains(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorised"})
			return
		}

		c.Set(AdminEmailKey, email)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}
