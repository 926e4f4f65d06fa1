package helpers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondWithError(c, http.StatusConflict, "You already voted for this.")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Conflict")
	assert.Contains(t, w.Body.String(), "You already voted for this.")
}

func TestRespondWithInternalError_LogsCauseHidesItFromCaller(t *testing.T) {
	var buf bytes.Buffer
	log.Logger.SetOutput(&buf)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondWithInternalError(c, errors.New("pq: connection refused"), "Failed to create event.")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to create event.")
	// The store failure goes to the log, never to the caller.
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, buf.String(), "pq: connection refused")
	assert.Contains(t, buf.String(), "Failed to create event.")
}
