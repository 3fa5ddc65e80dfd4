package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/models"
)

// GuidanceResponse is the assistant's reply. Text always carries something the
// UI can show, even when the gateway was unreachable.
type GuidanceResponse struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// inFlight tracks clients with an outstanding guidance request. One guidance
// call per client at a time; the UI disables its send control, this enforces
// the same rule server-side.
var inFlight = struct {
	sync.Mutex
	clients map[string]bool
}{clients: make(map[string]bool)}

func guidanceClientKey(c *gin.Context) string {
	if id := c.GetHeader("X-Client-ID"); id != "" {
		return id
	}
	return c.ClientIP()
}

// Guidance forwards a chat turn to the assistant. Gateway failures come back
// as the fixed fallback text with a 200, never as an error.
func (a *App) Guidance(c *gin.Context) {
	var req models.GuidanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := guidanceClientKey(c)
	inFlight.Lock()
	if inFlight.clients[key] {
		inFlight.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "a guidance request is already in flight"})
		return
	}
	inFlight.clients[key] = true
	inFlight.Unlock()
	defer func() {
		inFlight.Lock()
		delete(inFlight.clients, key)
		inFlight.Unlock()
	}()

	if a.Gemini == nil {
		c.JSON(http.StatusOK, GuidanceResponse{Text: guidanceUnavailable, Fallback: true})
		return
	}

	text, fellBack := a.Gemini.RequestGuidance(c.Request.Context(), req.Message, req.History, req.Language)
	c.JSON(http.StatusOK, GuidanceResponse{Text: text, Fallback: fellBack})
}

// guidanceUnavailable is shown when no Gemini API key is configured at all.
const guidanceUnavailable = "The assistant is offline right now. You can still file your report manually."
