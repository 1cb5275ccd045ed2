package middleware

import (
	"net/http"
	"strings"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

// Auth validates the bearer token and stores the authenticated actor
// on the request context.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(
			strings.TrimPrefix(header, "Bearer "),
			claims,
			func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			},
		)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token subject"})
			return
		}

		actor := domain.Actor{ID: sub}
		if raw, ok := claims["roles"].([]any); ok {
			for _, r := range raw {
				if role, ok := r.(string); ok {
					actor.Roles = append(actor.Roles, role)
				}
			}
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the actor carries at least one of
// the given roles. It must run after Auth.
func RequireRoles(roles ...string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor := ActorFrom(c)
		for _, role := range roles {
			if actor.HasRole(role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "insufficient role"})
	}
}

// SelfOrRoles aborts with 403 unless the route parameter matches the
// actor's own id or the actor carries one of the given roles. It must
// run after Auth.
func SelfOrRoles(param string, roles ...string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor := ActorFrom(c)
		if actor.ID != "" && actor.ID == c.Param(param) {
			c.Next()
			return
		}
		for _, role := range roles {
			if actor.HasRole(role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "insufficient role"})
	}
}

// ActorFrom returns the actor stored by Auth, or a zero actor when the
// request is unauthenticated.
func ActorFrom(c *ginext.Context) domain.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}
	}
	actor, _ := v.(domain.Actor)
	return actor
}
