// Package session stores the logged-in identity in the cookie session.
// The identity is the user's email address.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginEmail = "LOGIN_EMAIL"

func SetLoginEmail(c *gin.Context, email string) error {
	s := sessions.Default(c)
	s.Set(loginEmail, email)
	return s.Save()
}

func GetLoginEmail(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(loginEmail); obj != nil {
		if email, ok := obj.(string); ok {
			return email
		}
	}
	return ""
}

func IsLogin(c *gin.Context) bool {
	return GetLoginEmail(c) != ""
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
