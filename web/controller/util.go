package controller

import (
	"net"
	"net/http"
	"net/url"
	"strings"

	"quote-ui/config"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// redirectMsg issues a redirect carrying a status message in the
// `message` query parameter, read back by the destination view.
func redirectMsg(c *gin.Context, location string, msg string) {
	c.Redirect(http.StatusFound, location+"?message="+url.QueryEscape(msg))
}

// html renders a template, passing through the `message` query parameter
// and common context values.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["message"] = c.Query("message")
	c.HTML(http.StatusOK, name, getContext(data))
}

// getContext adds version info to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}
