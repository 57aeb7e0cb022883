package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CredentialVerifier decides whether a presented API key is acceptable.
// The static shared-secret check is one implementation; a per-user token
// scheme can replace it without touching the task routes.
type CredentialVerifier func(key string) bool

// StaticKeyVerifier accepts exactly the configured shared secret. It
// authenticates the calling application, not an end user.
func StaticKeyVerifier(secret string) CredentialVerifier {
	return func(key string) bool {
		return subtle.ConstantTimeCompare([]byte(key), []byte(secret)) == 1
	}
}

// APIKeyAuth rejects requests whose X-API-Key header fails verification.
func APIKeyAuth(verify CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" || !verify(apiKey) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
