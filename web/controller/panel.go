package controller

import (
	"quote-ui/logger"
	"quote-ui/web/service"

	"github.com/gin-gonic/gin"
)

// PanelController serves the admin dashboard, user list and summary pages.
type PanelController struct {
	userService   service.UserService
	statusService service.StatusService
}

func NewPanelController(g *gin.RouterGroup) *PanelController {
	a := &PanelController{}
	g.GET("", a.dashboard)
	g.GET("/users", a.users)
	g.GET("/summary", a.summary)
	return a
}

func (a *PanelController) dashboard(c *gin.Context) {
	html(c, "admin_dashboard.html", "Admin Dashboard", nil)
}

func (a *PanelController) users(c *gin.Context) {
	users, err := a.userService.AllUsers()
	if err != nil {
		logger.Warning("list users failed:", err)
		redirectMsg(c, "/admin", "Could not load users!")
		return
	}
	html(c, "admin_users.html", "Users", gin.H{
		"users": users,
	})
}

func (a *PanelController) summary(c *gin.Context) {
	status, err := a.statusService.GetStatus()
	if err != nil {
		logger.Warning("get status failed:", err)
		redirectMsg(c, "/admin", "Could not load summary!")
		return
	}
	html(c, "admin_summary.html", "Summary", gin.H{
		"status": status,
	})
}
