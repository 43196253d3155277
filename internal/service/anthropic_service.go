package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	DefaultAnthropicVersion = "2023-06-01"
	anthropicMessagesPath   = "/v1/messages"
)

// AnthropicService calls the Claude messages API.
type AnthropicService struct {
	client  *resty.Client
	version string
}

var _ Provider = (*AnthropicService)(nil)

func NewAnthropicService(baseURL, version string) *AnthropicService {
	if version == "" {
		version = DefaultAnthropicVersion
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(RequestTimeout)

	return &AnthropicService{
		client:  client,
		version: version,
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

func (s *AnthropicService) Kind() ProviderKind {
	return ProviderClaude
}

func (s *AnthropicService) Generate(ctx context.Context, model, prompt string, creds Credentials) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", creds.APIKey).
		SetHeader("anthropic-version", s.version).
		SetHeader("Content-Type", "application/json").
		SetBody(anthropicRequest{
			Model:     model,
			MaxTokens: MaxOutputTokens,
			Messages: []anthropicMessage{
				{Role: "user", Content: prompt},
			},
		}).
		Post(anthropicMessagesPath)
	if err != nil {
		return "", &UpstreamError{Provider: ProviderClaude, Err: err}
	}

	if !resp.IsSuccess() {
		return "", &UpstreamError{
			Provider:   ProviderClaude,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	text := gjson.Get(resp.String(), "content.0.text")
	if !text.Exists() {
		return "", &UpstreamError{
			Provider:   ProviderClaude,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
			Err:        errors.New("response has no content text"),
		}
	}
	return strings.TrimSpace(text.String()), nil
}
