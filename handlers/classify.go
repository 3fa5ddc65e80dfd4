package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/services"
)

// maxClassifyImageBytes caps uploads fed to the vision model.
const maxClassifyImageBytes = 8 << 20

// ClassifyImage runs a photographed issue through the vision model and
// returns the structured {category, description}. A nonconforming model
// response comes back as 422 carrying a keyword-based category suggestion so
// the client can pre-fill manual entry.
func (a *App) ClassifyImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxClassifyImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxClassifyImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	if a.Gemini == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image analysis is not configured"})
		return
	}

	result, err := a.Gemini.ClassifyIssueImage(c.Request.Context(), image, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		var cErr *services.ClassificationError
		if errors.As(err, &cErr) {
			log.Printf("[ClassifyHandler] falling back to manual entry: %v", cErr)
			hint := c.PostForm("description")
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             "could not classify image",
				"suggestedCategory": services.SuggestCategory(hint),
			})
			return
		}
		log.Printf("[ClassifyHandler] classification failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "classification failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
