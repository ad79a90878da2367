package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"prodfeedback/pkg/utils"
)

const sessionContextKey = "session"

// Session is what the authentication collaborator hands each request:
// the shop the session was issued for.
type Session struct {
	Shop string
}

// SessionResolver abstracts the hosting platform's authentication
// handshake so handlers can be tested with fakes.
type SessionResolver interface {
	Resolve(r *http.Request) (*Session, error)
}

// TokenSessionResolver validates HS256 bearer session tokens.
type TokenSessionResolver struct {
	Key []byte
}

func NewTokenSessionResolver() *TokenSessionResolver {
	return &TokenSessionResolver{Key: utils.SessionKey()}
}

func (t *TokenSessionResolver) Resolve(r *http.Request) (*Session, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, utils.ErrUnauthorized
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ValidateSessionToken(tokenString, t.Key)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	return &Session{Shop: claims.Shop}, nil
}

// SessionMiddleware fails closed: no usable session means 401 before any
// handler runs.
func SessionMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := resolver.Resolve(c.Request)
		if err != nil || session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
			})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFromContext returns the session stored by SessionMiddleware.
func SessionFromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*Session)
	return session, ok
}

// ResolveShopDomain implements the shop resolution order used by the
// public proxy: explicit header first, session shop as fallback.
func ResolveShopDomain(c *gin.Context) string {
	if shop := c.GetHeader("X-Shopify-Shop-Domain"); shop != "" {
		return shop
	}
	if session, ok := SessionFromContext(c); ok {
		return session.Shop
	}
	return ""
}
