package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/services"
)

// GetStats recomputes the city statistics from the current report snapshot.
func (a *App) GetStats(c *gin.Context) {
	stats := services.ComputeCityStats(a.Store.ListReports())
	c.JSON(http.StatusOK, gin.H{
		"totalReports":         stats.TotalReports,
		"resolvedCount":        stats.ResolvedCount,
		"medianResolutionTime": stats.MedianResolutionTime,
		"categoryDistribution": stats.CategoryDistribution,
		"resolvedPercent":      services.ResolvedPercent(stats),
	})
}
