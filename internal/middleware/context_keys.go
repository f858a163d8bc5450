package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
)

// identityKey is the key used to store the authenticated caller's identity
// in the Gin context.
const identityKey = contextKey("identity")

// GetIdentityFromContext retrieves the authenticated identity set by the
// auth middleware. It returns the identity and a boolean indicating whether
// it was found.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	identityVal, exists := c.Get(string(identityKey))
	if !exists {
		identityVal = c.Request.Context().Value(identityKey)
		if identityVal == nil {
			return domain.Identity{}, false
		}
	}

	identity, ok := identityVal.(domain.Identity)
	if !ok {
		return domain.Identity{}, false
	}

	return identity, true
}
