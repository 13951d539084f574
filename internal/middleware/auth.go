package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

const identityKey = "admin_identity"

type Authenticator interface {
	Authenticate(ctx context.Context, cred models.Credential) (*models.Identity, error)
}

// RequireAdmin aborts with a bare 401 unless the request carries a valid
// admin credential. Handlers behind it never run for other callers.
func RequireAdmin(auth Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.Authenticate(c.Request.Context(), CredentialFrom(c, cookieName))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// CredentialFrom collects the bearer token and session cookie, if any.
func CredentialFrom(c *gin.Context, cookieName string) models.Credential {
	var cred models.Credential
	if header := c.GetHeader("Authorization"); header != "" {
		if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			cred.Bearer = strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		cred.Session = cookie
	}
	return cred
}

func IdentityFrom(c *gin.Context) (*models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*models.Identity)
	return identity, ok
}
