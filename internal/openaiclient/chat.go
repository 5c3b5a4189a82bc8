package openaiclient

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

	"github.com/ericogr/mythic-arena/internal/constants"
)

// ErrMissingAPIKey is returned when a request is attempted without a key.
var ErrMissingAPIKey = errors.New(constants.ErrOpenAIKeyNotConfigured)

// Client calls the OpenAI Chat Completions API.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
}

// New returns a client for the public OpenAI endpoint. An empty model
// selects the default chat model.
func New(apiKey, model string) *Client {
	if model == "" {
		model = constants.OpenAIChatModel
	}
	return &Client{
		BaseURL: constants.OpenAIBaseURL,
		APIKey:  strings.TrimSpace(apiKey),
		Model:   model,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Enabled reports whether the client has credentials to call the API.
func (c *Client) Enabled() bool { return c != nil && c.APIKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends a system and a user message and returns the trimmed
// content of the first choice.
func (c *Client) ChatCompletion(ctx context.Context, system, user string) (string, error) {
	if !c.Enabled() {
		return "", ErrMissingAPIKey
	}

	payload := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxCompletionTokens: constants.OpenAIMaxCompletionTokens,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.BaseURL, "/")+constants.OpenAIChatCompletionsPath, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+c.APIKey)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("openai error: %d %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode OpenAI response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
