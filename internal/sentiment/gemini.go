package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiPrompt = `Classify the sentiment of the following wish as POSITIVE or NEGATIVE.
Reply with JSON only: {"label": "POSITIVE" | "NEGATIVE", "score": <confidence between 0 and 1>}.

Wish: %s`

// Gemini asks a Gemini model for a sentiment verdict.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini classifier.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Name() string { return ProviderGemini }

// Classify sends the wish in a fixed prompt and parses the JSON reply.
func (g *Gemini) Classify(ctx context.Context, text string) (Result, error) {
	temperature := float32(0)
	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(geminiPrompt, text), genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return Result{}, fmt.Errorf("gemini generate failed: %w", err)
	}

	return parseGeminiVerdict(resp.Text())
}

// parseGeminiVerdict tolerates markdown code fences around the JSON reply.
func parseGeminiVerdict(raw string) (Result, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if s == "" {
		return Result{}, errors.New("gemini returned an empty reply")
	}

	var r Result
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return Result{}, fmt.Errorf("gemini reply is not valid JSON: %w", err)
	}
	if r.Label == "" {
		return Result{}, errors.New("gemini reply has no label")
	}
	if r.Score < 0 || r.Score > 1 {
		return Result{}, fmt.Errorf("gemini score %v out of range", r.Score)
	}
	r.Label = NormalizeLabel(r.Label)
	return r, nil
}
