package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// httpClient is shared by all OpenAI requests; the 30s timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// OpenAIProvider implements Provider against the chat completions endpoint.
type OpenAIProvider struct {
	apiKey string
	model  string
}

func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: missing api key")
	}
	return &OpenAIProvider{apiKey: apiKey, model: model}, nil
}

func (p *OpenAIProvider) Name() string { return "openai" }

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt to the chat completions endpoint. Failures carry
// the HTTP status through ProviderError so the caller can classify them.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt Prompt) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Message: fmt.Sprintf("do request: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", &ProviderError{Provider: p.Name(), StatusCode: resp.StatusCode, Message: fmt.Sprintf("unmarshal response: %v", err)}
	}
	if cr.Error != nil {
		return "", &ProviderError{Provider: p.Name(), StatusCode: resp.StatusCode, Message: cr.Error.Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{Provider: p.Name(), StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if len(cr.Choices) == 0 {
		return "", &ProviderError{Provider: p.Name(), StatusCode: resp.StatusCode, Message: "API returned empty choices array"}
	}

	return cr.Choices[0].Message.Content, nil
}
