//go:build staging

package staging

import (
	"net/http"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	resp, _ := makeRequest(t, http.MethodGet, "/healthz", "", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestReadiness(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/readyz", "", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}
}

func TestSessionIssued(t *testing.T) {
	resp, _ := makeRequest(t, http.MethodGet, "/api/v1/policy", "", nil)

	if resp.Header.Get("X-Session-ID") == "" {
		t.Error("Expected the server to issue a session ID")
	}
}
