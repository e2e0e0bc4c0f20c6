package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-set/v2"
	apierrors "github.com/yukikurage/hr-management-api/internal/errors"
	"github.com/yukikurage/hr-management-api/internal/models"
)

// RequireRoles lets the request through only when the current user holds one
// of roles. It must run after RequireAuth.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := set.From(roles)

	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		if !allowed.Contains(user.Role) {
			apierrors.Forbidden(c, "Operation not permitted")
			return
		}

		c.Next()
	}
}
