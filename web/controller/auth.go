package controller

import (
	"quote-ui/database/model"
	"quote-ui/logger"
	"quote-ui/web/service"
	"quote-ui/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// AuthController handles registration, login and logout.
type AuthController struct {
	userService service.UserService
}

// NewAuthController creates the controller and registers the public auth
// routes. Logout is registered separately on a guarded group.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	return a
}

// RegisterLogout attaches the logout route to a login-guarded group.
func (a *AuthController) RegisterLogout(g *gin.RouterGroup) {
	g.GET("/logout", a.logout)
}

func (a *AuthController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		redirectMsg(c, "/register", "Invalid form data!")
		return
	}

	_, err := a.userService.Register(form.Name, form.Email, form.Password)
	if err == service.ErrEmailTaken {
		redirectMsg(c, "/login", "Email already registered!")
		return
	} else if err != nil {
		logger.Warning("register user failed:", err)
		redirectMsg(c, "/register", "Registration failed!")
		return
	}

	redirectMsg(c, "/login", "Registration successful! Please log in.")
}

func (a *AuthController) loginPage(c *gin.Context) {
	html(c, "login.html", "Login", nil)
}

func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		redirectMsg(c, "/login", "Invalid form data!")
		return
	}

	user, err := a.userService.GetByEmail(form.Email)
	if err != nil {
		redirectMsg(c, "/register", "You need to register first!")
		return
	}
	if user.Password != form.Password {
		logger.Warningf("wrong password for %q, IP: %q", form.Email, getRemoteIp(c))
		redirectMsg(c, "/login", "Incorrect password!")
		return
	}

	if err := session.SetLoginEmail(c, user.Email); err != nil {
		logger.Warning("unable to save session:", err)
		redirectMsg(c, "/login", "Login failed!")
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Email, getRemoteIp(c))
	if user.Role == model.RoleAdmin {
		redirectMsg(c, "/admin", "Login successful!")
		return
	}
	redirectMsg(c, "/", "Login successful!")
}

func (a *AuthController) logout(c *gin.Context) {
	if email := session.GetLoginEmail(c); email != "" {
		logger.Infof("%s logged out", email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	redirectMsg(c, "/login", "You have been logged out!")
}
