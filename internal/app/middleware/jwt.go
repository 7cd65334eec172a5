package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/error/response"
)

// TokenCookieName is the session cookie set on login.
const TokenCookieName = "token"

// extractToken pulls the session token from the Authorization header or,
// failing that, the http-only session cookie. Either transport is accepted.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimSpace(authHeader[7:])
		}
		return authHeader
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// AuthenticateAdmin guards the admin routes. A missing, malformed, expired
// or signature-invalid token aborts with 401. The admin record is not
// re-fetched per request; the token alone proves identity until it expires.
func AuthenticateAdmin(jwtService services.InterfaceJWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}
