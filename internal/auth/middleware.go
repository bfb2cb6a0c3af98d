// Package auth consumes the hosted identity provider. The gateway in front
// of this service authenticates users and forwards their identity in
// headers; this package validates their presence and exposes the profile to
// handlers.
package auth

import (
	"net/http"
	"strings"

	"campus-teamup/internal/config"
	"campus-teamup/internal/model"

	"github.com/gin-gonic/gin"
)

const profileKey = "auth_profile"

// APIKeyMiddleware validates the shared API key from request headers. An
// empty configured key disables the check (development).
func APIKeyMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APIKey == "" {
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "ApiKey ") {
				apiKey = strings.TrimPrefix(authHeader, "ApiKey ")
			}
		}

		if apiKey == "" {
			abortUnauthorized(c, "MISSING_API_KEY", "API key is required. Provide X-API-Key header or Authorization: ApiKey <key>")
			return
		}

		if apiKey != cfg.APIKey {
			abortUnauthorized(c, "INVALID_API_KEY", "Invalid API key provided")
			return
		}

		c.Next()
	}
}

// IdentityMiddleware requires the gateway-injected identity headers and
// stores the resulting profile on the request context. The uid and name are
// opaque strings from the identity provider.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetHeader("X-User-Uid")
		name := c.GetHeader("X-User-Name")
		if uid == "" || name == "" {
			abortUnauthorized(c, "MISSING_IDENTITY", "X-User-Uid and X-User-Name headers are required")
			return
		}

		profile := model.Profile{UID: uid, Name: name}
		if email := c.GetHeader("X-User-Email"); email != "" {
			profile.Email = &email
		}
		if photo := c.GetHeader("X-User-Photo"); photo != "" {
			profile.PhotoURL = &photo
		}

		c.Set(profileKey, profile)
		c.Next()
	}
}

// CurrentUser returns the authenticated profile stored by
// IdentityMiddleware. The bool is false when the middleware did not run.
func CurrentUser(c *gin.Context) (model.Profile, bool) {
	v, ok := c.Get(profileKey)
	if !ok {
		return model.Profile{}, false
	}
	profile, ok := v.(model.Profile)
	return profile, ok
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
