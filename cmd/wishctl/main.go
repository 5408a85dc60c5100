package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/osse101/WishEval_Go/internal/client"
)

const (
	defaultAPIURL  = "http://localhost:8080"
	envAPIURL      = "WISH_API_URL"
	envAPIKey      = "API_KEY"
	envSession     = "WISHCTL_SESSION"
	sessionFileDir = "wishctl"
	sessionFile    = "session"
)

var (
	// Global flags
	apiURL    string
	apiKey    string
	sessionID string
	timeout   time.Duration
	verbose   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wishctl",
	Short: "Make a wish from the terminal",
	Long: `wishctl talks to a WishEval server.

Evaluate a wish, press its support buttons, share it with friends,
and send luck to wishes friends shared with you. The session is
remembered between runs so your wish is still there next time.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr(envAPIURL, defaultAPIURL), "API base URL (or set "+envAPIURL+")")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv(envAPIKey), "Admin API key (or set "+envAPIKey+")")
	rootCmd.PersistentFlags().StringVar(&sessionID, "session", os.Getenv(envSession), "Session ID (default: remembered from the last run)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(supportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(luckCmd)

	sharedCmd.AddCommand(sharedViewCmd)
	sharedCmd.AddCommand(sharedSupportCmd)
	rootCmd.AddCommand(sharedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// newClient builds an API client for the remembered or requested session.
func newClient() *client.Client {
	opts := []client.Option{client.WithHTTPClient(newHTTPClient(timeout))}
	if apiKey != "" {
		opts = append(opts, client.WithAPIKey(apiKey))
	}

	id := sessionID
	if id == "" {
		id = loadSession()
	}
	if id != "" {
		opts = append(opts, client.WithSessionID(id))
	}
	return client.New(apiURL, opts...)
}

// withClient runs fn and remembers the session the server settled on.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) error) error {
	c := newClient()
	err := fn(cmd.Context(), c)
	if sessionID == "" && c.SessionID() != "" {
		if saveErr := saveSession(c.SessionID()); saveErr != nil {
			slog.Debug("Could not remember session", "error", saveErr)
		}
	}
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
