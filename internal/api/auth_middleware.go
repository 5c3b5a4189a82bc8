package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/mythic-arena/internal/constants"
)

// sessionToken reads the session cookie, falling back to a bearer header.
func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(constants.CookieSessionName); err == nil && token != "" {
		return token
	}
	h := c.GetHeader(constants.HeaderAuthorization)
	if strings.HasPrefix(h, constants.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, constants.BearerPrefix))
	}
	return ""
}

// AuthRequired validates the session token and injects identity into context.
func AuthRequired(v *SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		claims, err := v.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		c.Set(constants.CtxUserEmail, claims.Subject)
		c.Next()
	}
}

func userEmail(c *gin.Context) string {
	return c.GetString(constants.CtxUserEmail)
}
