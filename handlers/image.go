package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/services"
)

// SynthesizeReportImage generates an illustrative image for a report that has
// none. Best-effort: an empty imageUrl in the response means the client keeps
// its placeholder. If a user upload landed while the model was working, the
// synthesized image is discarded rather than overwriting it.
func (a *App) SynthesizeReportImage(c *gin.Context) {
	report, err := a.Store.GetReport(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report"})
		return
	}

	if report.ImageURL != "" {
		c.JSON(http.StatusOK, gin.H{"imageUrl": report.ImageURL, "generated": false})
		return
	}

	if a.Gemini == nil {
		c.JSON(http.StatusOK, gin.H{"imageUrl": "", "generated": false})
		return
	}

	uri := a.Gemini.SynthesizeIssueImage(c.Request.Context(), string(report.Category), report.Description)
	if uri == "" {
		c.JSON(http.StatusOK, gin.H{"imageUrl": "", "generated": false})
		return
	}

	stored, err := a.Store.SetReportImage(report.ID, uri)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	if !stored {
		// Someone attached an image first; return theirs.
		current, _ := a.Store.GetReport(report.ID)
		c.JSON(http.StatusOK, gin.H{"imageUrl": current.ImageURL, "generated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": uri, "generated": true})
}
