package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/models"
	"github.com/harishd2007/CivicFlow-v11/services"
)

// CreateReport files a new issue report. On success the report's status alert
// is pushed to websocket clients and a report.created event is emitted.
func (a *App) CreateReport(c *gin.Context) {
	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, alert, err := a.Store.CreateReport(&req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
			return
		}
		log.Printf("[ReportHandler] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create report"})
		return
	}

	if a.Hub != nil {
		a.Hub.Broadcast(alert)
	}
	if a.Events != nil {
		// Detached from the request context so a fast client disconnect does
		// not cancel the publish.
		go a.Events.PublishReportCreated(context.Background(), report)
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports returns the most-recent-first report collection.
func (a *App) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.ListReports())
}

// GetReport returns a single report by id.
func (a *App) GetReport(c *gin.Context) {
	report, err := a.Store.GetReport(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateReportStatus moves a report through its lifecycle.
func (a *App) UpdateReportStatus(c *gin.Context) {
	var req models.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := a.Store.UpdateReportStatus(c.Param("id"), req.Status)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		case errors.Is(err, services.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		default:
			log.Printf("[ReportHandler] status update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update report"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
