package service

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Generation settings shared by every provider. Calls are never retried.
const (
	RequestTimeout  = 60 * time.Second
	MaxOutputTokens = 1024
	Temperature     = 0.1
)

type ProviderKind string

const (
	ProviderGemini ProviderKind = "gemini"
	ProviderClaude ProviderKind = "claude"
)

const claudeMarker = "claude"

// ProviderForModel maps a model id to its provider family. Ids containing
// "claude" in any case go to Claude, everything else goes to Gemini.
func ProviderForModel(model string) ProviderKind {
	if strings.Contains(strings.ToLower(model), claudeMarker) {
		return ProviderClaude
	}
	return ProviderGemini
}

// APIKeyEnv is the environment variable holding the provider's default key.
func (k ProviderKind) APIKeyEnv() string {
	switch k {
	case ProviderClaude:
		return "ANTHROPIC_API_KEY"
	default:
		return "GEMINI_API_KEY"
	}
}

func (k ProviderKind) DisplayName() string {
	switch k {
	case ProviderClaude:
		return "Claude"
	default:
		return "Gemini"
	}
}

// Credentials is the key resolved for one call.
type Credentials struct {
	Provider ProviderKind
	APIKey   string
}

// String never prints the key.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Provider: %s, APIKey: [redacted]}", c.Provider)
}

// Provider is one upstream LLM vendor. Generate performs a single call and
// returns the model's raw text output.
type Provider interface {
	Kind() ProviderKind
	Generate(ctx context.Context, model, prompt string, creds Credentials) (string, error)
}
