package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/WishEval_Go/internal/client"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a fake wish API and a Discord session whose HTTP calls are captured
type TestContext struct {
	Server  *httptest.Server
	Mux     *http.ServeMux
	Clients ClientFactory
	Session *discordgo.Session

	mu        sync.Mutex
	Edits     []discordgo.WebhookEdit
	Responses []discordgo.InteractionResponse
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server: server,
		Mux:    mux,
		Clients: func(userID string) *client.Client {
			return client.New(server.URL, client.WithSessionID(SessionIDFor(userID)), client.WithRetry(0, 0))
		},
		Session: session,
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			ctx.capture(req)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}}

	return ctx
}

func (c *TestContext) capture(req *http.Request) {
	if req.Body == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	switch req.Method {
	case http.MethodPatch:
		var edit discordgo.WebhookEdit
		if json.NewDecoder(req.Body).Decode(&edit) == nil {
			c.Edits = append(c.Edits, edit)
		}
	case http.MethodPost:
		var resp discordgo.InteractionResponse
		if json.NewDecoder(req.Body).Decode(&resp) == nil {
			c.Responses = append(c.Responses, resp)
		}
	}
}

// LastEdit returns the final edit of the deferred response
func (c *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Edits) == 0 {
		t.Fatal("no interaction edit captured")
	}
	return c.Edits[len(c.Edits)-1]
}

// WriteJSON writes data as a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// createTestInteraction builds a slash command interaction from a guild member
func createTestInteraction(commandName string, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    commandName,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user-123", Username: "TestUser"},
			},
		},
	}
}
