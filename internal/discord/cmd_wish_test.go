package discord

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WishEval_Go/internal/client"
	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/session"
)

func acceptedWish() *domain.Wish {
	return &domain.Wish{
		ID:          "0123456789",
		Text:        "I wish to adopt a rescue dog in 2026",
		Variant:     "classic",
		Probability: 75,
		Evaluation:  domain.Evaluation{Label: "POSITIVE", Score: 0.9, Accepted: true},
		Slots: []domain.SupportSlot{
			{Index: 0, Increment: 3.2, Used: true},
			{Index: 1, Increment: 1.1},
		},
	}
}

func TestWishCommand_Evaluate(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := WishCommand()

	ctx.Mux.HandleFunc("POST /api/v1/wish/evaluate", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "discord:test-user-123", r.Header.Get(session.HeaderName))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "I wish to adopt a rescue dog in 2026", body["wish"])

		WriteJSON(w, http.StatusOK, client.WishResponse{Wish: acceptedWish(), Message: "Sounds lovely"})
	})

	handler(ctx.Session, createTestInteraction(cmd.Name, []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "text", Type: discordgo.ApplicationCommandOptionString, Value: "I wish to adopt a rescue dog in 2026"},
	}), ctx.Clients)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	embed := (*edit.Embeds)[0]
	assert.Contains(t, embed.Description, "75.0%")
	assert.Contains(t, embed.Description, "Sounds lovely")
	assert.Equal(t, ColorAccepted, embed.Color)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "~~0~~ `1`", embed.Fields[0].Value)
}

func TestWishCommand_NoTextShowsCurrent(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := WishCommand()

	ctx.Mux.HandleFunc("GET /api/v1/wish", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Make a wish first"})
	})

	handler(ctx.Session, createTestInteraction(cmd.Name, nil), ctx.Clients)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Equal(t, MsgNoWish, *edit.Content)
}

func TestWishCommand_TooShortWarning(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := WishCommand()

	ctx.Mux.HandleFunc("POST /api/v1/wish/evaluate", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Please write a little more"})
	})

	handler(ctx.Session, createTestInteraction(cmd.Name, []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "text", Type: discordgo.ApplicationCommandOptionString, Value: "hi"},
	}), ctx.Clients)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Contains(t, *edit.Content, "Please write a little more")
}

func TestSupportCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := SupportCommand()

	ctx.Mux.HandleFunc("POST /api/v1/wish/support", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 1, body["slot"])

		wish := acceptedWish()
		wish.Slots[1].Used = true
		wish.Probability = 76.1
		WriteJSON(w, http.StatusOK, client.WishResponse{Wish: wish, Message: "Thanks for the support"})
	})

	handler(ctx.Session, createTestInteraction(cmd.Name, []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "slot", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(1)},
	}), ctx.Clients)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	assert.Contains(t, (*edit.Embeds)[0].Description, "76.1%")
}

func TestSupportCommand_SlotAlreadyUsed(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := SupportCommand()

	ctx.Mux.HandleFunc("POST /api/v1/wish/support", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusConflict, map[string]string{"error": "already used"})
	})

	handler(ctx.Session, createTestInteraction(cmd.Name, []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "slot", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(0)},
	}), ctx.Clients)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Equal(t, MsgSlotUsed, *edit.Content)
}

func TestShareCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := ShareCommand()

	ctx.Mux.HandleFunc("GET /api/v1/wish/share", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, client.ShareLinkResponse{
			ShareLink: domain.ShareLink{
				URL:    "http://localhost:8080/?wish_id=0123456789&wish=I+wish",
				WishID: "0123456789",
			},
			Message: "Send this to your friends",
		})
	})

	handler(ctx.Session, createTestInteraction(cmd.Name, nil), ctx.Clients)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	embed := (*edit.Embeds)[0]
	assert.Contains(t, embed.Description, "wish_id=0123456789")
	assert.Equal(t, ColorShare, embed.Color)
}

func TestPingCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := PingCommand()

	handler(ctx.Session, createTestInteraction(cmd.Name, nil), ctx.Clients)

	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	require.Len(t, ctx.Responses, 1)
	assert.Contains(t, ctx.Responses[0].Data.Content, "Pong")
}
