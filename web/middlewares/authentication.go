package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"timesheet.app/timesheet/security"
	"timesheet.app/timesheet/web/common"
)

const identityKey = "identity"

// Authentication checks for a valid Bearer token, falling back to the
// session cookie.
func Authentication(jwtSecret []byte, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Try to get from cookie
			cookie, err := c.Cookie(cookieName)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("authentication required"))
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("authentication required"))
				return
			}

			tokenStr = parts[1]
		}

		claims, err := security.ParseIdentityToken(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set(identityKey, &claims.Identity)
		c.Next()
	}
}

// RequireManager lets only managers through. It must run after Authentication.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil || !identity.IsManager() {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("manager role required"))
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) *security.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*security.Identity)
	return identity
}
