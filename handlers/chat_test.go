package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harishd2007/CivicFlow-v11/services"
)

func newGuidanceEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	app := &App{Store: services.NewEmptyReportStore()}
	r := gin.New()
	r.POST("/chat", app.Guidance)
	return r
}

func postGuidance(r *gin.Engine, clientID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat",
		strings.NewReader(`{"message":"hello","language":"English"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-ID", clientID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuidanceRejectsDuplicateInFlightRequest(t *testing.T) {
	r := newGuidanceEngine()

	inFlight.Lock()
	inFlight.clients["busy-client"] = true
	inFlight.Unlock()
	defer func() {
		inFlight.Lock()
		delete(inFlight.clients, "busy-client")
		inFlight.Unlock()
	}()

	w := postGuidance(r, "busy-client")
	assert.Equal(t, http.StatusConflict, w.Code)

	// A different client is not affected by someone else's open request.
	w = postGuidance(r, "other-client")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuidanceReleasesGuardAfterCompletion(t *testing.T) {
	r := newGuidanceEngine()

	w := postGuidance(r, "serial-client")
	require.Equal(t, http.StatusOK, w.Code)

	// The guard must not stay latched once the first request finished.
	w = postGuidance(r, "serial-client")
	assert.Equal(t, http.StatusOK, w.Code)

	inFlight.Lock()
	latched := inFlight.clients["serial-client"]
	inFlight.Unlock()
	assert.False(t, latched)
}
