// Package feedback generates natural-language performance feedback through
// Groq's OpenAI-compatible chat completions endpoint.
package feedback

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

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/logger"
)

const (
	defaultBaseURL = "https://api.groq.com"
	defaultModel   = "llama-3.3-70b-versatile"

	systemInstruction = "You are an academic performance feedback generator for faculty. Provide constructive, professional feedback."

	requestTemperature  = 0.7
	maxCompletionTokens = 2048
	requestTimeout      = 60 * time.Second
)

// ErrUnauthorized marks an authentication failure against the completion
// service, which callers surface differently from transient failures.
var ErrUnauthorized = errors.New("completion service rejected credentials")

type ClientConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// Client is a thin chat-completions transport. One request, no retries;
// failures bubble up for the caller's fallback policy to handle.
type Client struct {
	log        zerolog.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		log:        logger.With("feedback-client"),
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		model:      model,
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete sends a single user prompt with the fixed system instruction and
// returns the completion text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	requestID := uuid.NewString()

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: requestTemperature,
		MaxTokens:   maxCompletionTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/openai/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("request_id", requestID).Msg("completion request failed")
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		_ = json.Unmarshal(body, &apiErr)

		c.log.Error().
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Str("code", apiErr.Error.Code).
			Str("message", apiErr.Error.Message).
			Msg("completion service returned an error")

		if resp.StatusCode == http.StatusUnauthorized || apiErr.Error.Code == "invalid_api_key" {
			return "", fmt.Errorf("completion request unauthorized: %w", ErrUnauthorized)
		}
		return "", fmt.Errorf("completion service error (status %d): %s", resp.StatusCode, apiErr.Error.Message)
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	c.log.Debug().Str("request_id", requestID).Msg("completion request succeeded")
	return completion.Choices[0].Message.Content, nil
}
