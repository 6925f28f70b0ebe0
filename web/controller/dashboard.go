package controller

import (
	"quote-ui/logger"
	"quote-ui/web/service"
	"quote-ui/web/session"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the read-only quotes dashboard for any
// authenticated user.
type DashboardController struct {
	quoteService service.QuoteService
}

func NewDashboardController(g *gin.RouterGroup) *DashboardController {
	a := &DashboardController{}
	g.GET("/", a.dashboard)
	return a
}

func (a *DashboardController) dashboard(c *gin.Context) {
	quotes, err := a.quoteService.All()
	if err != nil {
		logger.Warning("list quotes failed:", err)
		quotes = nil
	}
	html(c, "dashboard.html", "Quotes", gin.H{
		"quotes": quotes,
		"email":  session.GetLoginEmail(c),
	})
}
