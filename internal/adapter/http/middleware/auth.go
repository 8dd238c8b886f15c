package middleware

import (
	"net/http"
	"strings"

	"fieldjobs/internal/auth"
	"fieldjobs/pkg"

	"github.com/gin-gonic/gin"
)

const identityKey = "auth.identity"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errInactiveUser = pkg.NewDomainErrorSimple("ACCOUNT_INACTIVE", "Account is deactivated", http.StatusForbidden)
)

// RequireAuth authenticates the bearer token and stores the resolved
// identity in the request context for handlers to pick up.
func RequireAuth(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		identity, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if !identity.Active {
			c.AbortWithStatusJSON(errInactiveUser.HTTPStatus, errInactiveUser.ToHTTPError())
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CallerFrom returns the authenticated identity stored by RequireAuth.
func CallerFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
