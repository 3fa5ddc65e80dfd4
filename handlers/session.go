package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/models"
)

// Login stores the citizen's name and email as the local session. There is no
// credential check behind it.
func (a *App) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := models.UserSession{Name: req.Name, Email: req.Email}
	if err := a.Session.Save(session); err != nil {
		log.Printf("[SessionHandler] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession returns the saved session, or 404 when nobody is signed in.
func (a *App) GetSession(c *gin.Context) {
	session, err := a.Session.Load()
	if err != nil {
		log.Printf("[SessionHandler] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SignOut clears the saved session. Signing out twice is fine.
func (a *App) SignOut(c *gin.Context) {
	if err := a.Session.Clear(); err != nil {
		log.Printf("[SessionHandler] clear failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.Status(http.StatusNoContent)
}
