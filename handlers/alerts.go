package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAlerts returns the most-recent-first alert collection plus the unread
// count for the notification badge.
func (a *App) ListAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alerts": a.Store.ListAlerts(),
		"unread": a.Store.UnreadAlertCount(),
	})
}

// MarkAlertRead is idempotent; marking an unknown alert succeeds silently.
func (a *App) MarkAlertRead(c *gin.Context) {
	a.Store.MarkAlertRead(c.Param("id"))
	c.Status(http.StatusNoContent)
}
