package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultModel is the generation model used when none is configured
const DefaultModel = "gemini-2.5-flash-preview-04-17"

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Fallback strings returned in place of a recap. Consumers of recorded data
// already expect these exact messages, so keep them stable.
const (
	fallbackGeneric    = "Could not generate AI summary."
	fallbackMissingKey = "Could not generate AI summary. API key might be missing or invalid."
)

// Config configures the Gemini generateContent endpoint and HTTP behavior
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Gemini is a Generator backed by the Gemini generateContent API
type Gemini struct {
	cfg    Config
	logger *slog.Logger
}

// NewGemini builds a Gemini-backed generator
func NewGemini(cfg Config, logger *slog.Logger) *Gemini {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Gemini{cfg: cfg, logger: logger}
}

// Ensure Gemini implements the interface
var _ Generator = (*Gemini)(nil)

// Summary generates a recap, falling back to an apologetic message on any
// failure. It never returns an error.
func (g *Gemini) Summary(ctx context.Context, req Request) string {
	if g.cfg.APIKey == "" {
		g.logger.Warn("skipping recap generation: no API key configured")
		return fallbackMissingKey
	}

	text, err := g.generate(ctx, BuildPrompt(req))
	if err != nil {
		g.logger.Error("recap generation failed", slog.String("error", err.Error()))
		return fallbackFor(err)
	}
	return text
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimSuffix(g.cfg.BaseURL, "/"), g.cfg.Model, g.cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call generation service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation service returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation service returned no candidates")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("generation service returned empty text")
	}
	return text, nil
}

// fallbackFor builds the fallback message for a generation error, keeping
// the first 100 characters of the underlying message
func fallbackFor(err error) string {
	if err == nil {
		return fallbackGeneric
	}
	msg := err.Error()
	if len(msg) > 100 {
		msg = msg[:100] + "..."
	}
	return fmt.Sprintf("Could not generate AI summary: %s", msg)
}
