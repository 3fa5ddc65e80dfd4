package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/models"
)

// Locate turns raw coordinates into a human-readable label for the report
// form. Real reverse geocoding lives with the geolocation collaborator; this
// keeps the form usable without it.
func (a *App) Locate(c *gin.Context) {
	var req models.LocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	label := fmt.Sprintf("Lat %.5f, Lng %.5f", req.Lat, req.Lng)
	c.JSON(http.StatusOK, gin.H{"label": label})
}
