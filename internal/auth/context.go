package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/acidpbl/homequest/internal/users"
)

const ctxUserKey = "current_user"

// SetCurrentUser stores the resolved profile on the request. Authenticate
// calls this; tests use it to fake a session.
func SetCurrentUser(c *gin.Context, u *users.User) {
	c.Set(ctxUserKey, u)
}

// CurrentUser returns the resolved profile of the authenticated caller, or
// nil if the request never went through Authenticate.
func CurrentUser(c *gin.Context) *users.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*users.User)
	return u
}
