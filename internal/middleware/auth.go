package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

const principalContextKey = "principal"

// Principal is the authenticated identity attached to a request. Name is the
// account email and is what mutating handlers stamp into CreatedBy/UpdatedBy.
type Principal struct {
	Name  string
	Roles []string
}

// Auth returns a middleware that extracts the principal from a Bearer token
// when one is present. Requests without a token (or with an invalid one)
// proceed anonymously; route groups that require identity add RequireAuth or
// RequireRole on top.
func Auth(jwtSvc jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			c.Next()
			return
		}

		token, err := jwtSvc.ValidateAndParse(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.Next()
			return
		}

		c.Set(principalContextKey, Principal{
			Name:  token.UserID,
			Roles: token.Roles,
		})
		c.Next()
	}
}

// RequireAuth aborts with 401 when no principal is attached to the request.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "unauthorized",
			})
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 401 for anonymous requests and 403 for principals
// lacking the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "unauthorized",
			})
			return
		}
		if !slices.Contains(p.Roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "forbidden",
			})
			return
		}
		c.Next()
	}
}

// CurrentPrincipal extracts the principal from the gin.Context.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalContextKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// PrincipalName returns the acting principal's name, or "" for anonymous
// requests. Empty maps to NULL audit columns.
func PrincipalName(c *gin.Context) string {
	p, _ := CurrentPrincipal(c)
	return p.Name
}

// SetPrincipal attaches a principal directly. Test helper.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalContextKey, p)
}
