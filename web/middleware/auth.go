package middleware

import (
	"net/http"
	"net/url"

	"quote-ui/database/model"
	"quote-ui/web/service"
	"quote-ui/web/session"

	"github.com/gin-gonic/gin"
)

const (
	msgLoginRequired = "You need to log in first!"
	msgNoPermission  = "You do not have permission to access this page!"
)

// ctxUser is the gin context key holding the resolved user record.
const ctxUser = "LOGIN_USER_RECORD"

// LoginRequired guards a route group. Anonymous requests are redirected to
// the login page. With requireAdmin, the session identity is resolved to a
// user record and non-admins are sent back to the user dashboard.
func LoginRequired(requireAdmin bool) gin.HandlerFunc {
	userService := service.UserService{}

	return func(c *gin.Context) {
		email := session.GetLoginEmail(c)
		if email == "" {
			c.Redirect(http.StatusFound, "/login?message="+url.QueryEscape(msgLoginRequired))
			c.Abort()
			return
		}
		if requireAdmin {
			user, err := userService.GetByEmail(email)
			if err != nil || user.Role != model.RoleAdmin {
				c.Redirect(http.StatusFound, "/?message="+url.QueryEscape(msgNoPermission))
				c.Abort()
				return
			}
			c.Set(ctxUser, user)
		}
		c.Next()
	}
}

// GetContextUser returns the user record resolved by an admin guard, nil
// when the guard did not run with requireAdmin.
func GetContextUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(ctxUser); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
