package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth_DegradedWhenDisconnected(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer api.Close()

	bot := &Bot{APIURL: api.URL}
	srv := NewHTTPServer("0", bot)

	RecordCommand()
	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "degraded", status.Status)
	assert.False(t, status.Connected)
	assert.True(t, status.APIReachable)
	assert.Positive(t, status.CommandsReceived)
	assert.False(t, status.LastCommandTime.IsZero())
}

func TestHandleHealth_APIUnreachable(t *testing.T) {
	srv := NewHTTPServer("0", &Bot{APIURL: "http://127.0.0.1:1"})

	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.False(t, status.APIReachable)
}
