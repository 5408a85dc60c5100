package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/WishEval_Go/internal/client"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Clients  ClientFactory
	AppID    string
	APIURL   string
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token  string
	AppID  string
	APIURL string
	APIKey string
}

// ClientFactory returns an API client acting as the given Discord user
type ClientFactory func(userID string) *client.Client

// SessionIDFor maps a Discord user onto a wish session
func SessionIDFor(userID string) string {
	return SessionPrefix + userID
}

// NewClientFactory builds clients that pin each Discord user to their own session
func NewClientFactory(apiURL, apiKey string) ClientFactory {
	return func(userID string) *client.Client {
		opts := []client.Option{client.WithSessionID(SessionIDFor(userID))}
		if apiKey != "" {
			opts = append(opts, client.WithAPIKey(apiKey))
		}
		return client.New(apiURL, opts...)
	}
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:  s,
		Clients:  NewClientFactory(cfg.APIURL, cfg.APIKey),
		AppID:    cfg.AppID,
		APIURL:   cfg.APIURL,
		Registry: NewCommandRegistry(),
	}, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Discord session close failed", "error", err)
	}
}

// Run runs the bot until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Clients)
	}
}
