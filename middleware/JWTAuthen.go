package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smarttasks/services"
)

// Context keys set by the middlewares in this package.
const (
	UserIDKey      = "userId"
	ChecklistIDKey = "checklistId"
)

// AccessTokenMiddleware rejects requests without a valid bearer token and
// stores the token subject under UserIDKey.
func AccessTokenMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		scheme, tokenString, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		userID, err := tokens.Parse(strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is expired or invalid"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
