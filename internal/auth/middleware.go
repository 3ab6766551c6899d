package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/algonest/algonest/internal/common"
	"github.com/algonest/algonest/internal/store"
)

const (
	ctxKey = "user"

	// CookieName is the session cookie set on login.
	CookieName = "token"
)

// TokenFromRequest returns the session token from the cookie or an
// Authorization: Bearer header.
func TokenFromRequest(c *gin.Context) string {
	if tok, err := c.Cookie(CookieName); err == nil && tok != "" {
		return tok
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// Middleware authenticates the session token and sets the user in context.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := TokenFromRequest(c)
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication token missing"})
			return
		}

		u, err := s.Authenticate(c.Request.Context(), tok)
		if err != nil {
			if !errors.Is(err, common.ErrUnauthorized) {
				log.Printf("auth: authenticate: %v", err)
			}
			c.AbortWithStatusJSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
			return
		}

		c.Set(ctxKey, u)
		c.Next()
	}
}

// AdminOnly rejects users without the admin role. It must run after Middleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := FromContext(c)
		if u == nil || u.Role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// FromContext retrieves the authenticated user from the Gin context.
func FromContext(c *gin.Context) *store.User {
	v, _ := c.Get(ctxKey)
	u, _ := v.(*store.User)
	return u
}

// SetUser puts u in the Gin context, as Middleware does.
func SetUser(c *gin.Context, u *store.User) {
	c.Set(ctxKey, u)
}
