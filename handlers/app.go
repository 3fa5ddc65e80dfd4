package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/config"
	"github.com/harishd2007/CivicFlow-v11/services"
)

// App bundles the wired services for the handler layer. Gemini and Events may
// be nil when the corresponding backends are not configured; handlers degrade
// to their defined fallbacks instead of failing.
type App struct {
	Cfg     config.Config
	Store   *services.ReportStore
	Gemini  *services.GeminiService
	Events  *services.EventService
	Session *services.SessionStore
	Hub     *AlertHub
}

func NewApp(cfg config.Config, store *services.ReportStore, gemini *services.GeminiService, events *services.EventService, session *services.SessionStore, hub *AlertHub) *App {
	return &App{
		Cfg:     cfg,
		Store:   store,
		Gemini:  gemini,
		Events:  events,
		Session: session,
		Hub:     hub,
	}
}

func (a *App) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
