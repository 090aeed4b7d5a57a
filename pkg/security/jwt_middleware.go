package security

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// JWTMiddleware validates the bearer token and stores the identity claims on
// the context. A missing token and a rejected token are distinct failures:
// 401 for absent credentials, 403 for credentials that do not verify.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", identity.ID)
		c.Set("username", identity.Username)
		c.Set("email", identity.Email)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id set by JWTMiddleware.
func UserIDFromContext(c *gin.Context) (int, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
