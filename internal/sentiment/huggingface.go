package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HuggingFaceConfig points at a hosted text-classification model.
type HuggingFaceConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// HuggingFace classifies text with the Hugging Face inference API.
type HuggingFace struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type inferenceError struct {
	Error string `json:"error"`
}

// NewHuggingFace creates a Hugging Face classifier.
func NewHuggingFace(cfg HuggingFaceConfig) *HuggingFace {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultHuggingFaceURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultHuggingFaceModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &HuggingFace{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name returns the provider name.
func (h *HuggingFace) Name() string { return ProviderHuggingFace }

// Classify sends text to the model and returns the highest scoring label.
func (h *HuggingFace) Classify(ctx context.Context, text string) (Result, error) {
	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", h.baseURL, h.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxInferenceResponseBytes))
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr inferenceError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return Result{}, fmt.Errorf("huggingface api error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return Result{}, fmt.Errorf("huggingface api error (status %d): %s", resp.StatusCode, string(data))
	}

	return parseInferenceResponse(data)
}

// parseInferenceResponse accepts both the nested [[{label,score}]] shape and
// the flat [{label,score}] shape returned by different model revisions.
func parseInferenceResponse(data []byte) (Result, error) {
	var nested [][]Result
	if err := json.Unmarshal(data, &nested); err == nil && len(nested) > 0 {
		if r, ok := best(nested[0]); ok {
			return r, nil
		}
	}

	var flat []Result
	if err := json.Unmarshal(data, &flat); err == nil {
		if r, ok := best(flat); ok {
			return r, nil
		}
	}

	var apiErr inferenceError
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
		return Result{}, fmt.Errorf("huggingface api returned error: %s", apiErr.Error)
	}

	return Result{}, errors.New("empty or unrecognised classification response")
}
