package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/interview-evaluator/internal/service"
)

func TestProviderForModel(t *testing.T) {
	cases := map[string]service.ProviderKind{
		"gemini-2.5-flash":            service.ProviderGemini,
		"gemini/gemini-2.0-flash":     service.ProviderGemini,
		"claude-3-haiku-20240307":     service.ProviderClaude,
		"Claude-Sonnet-4-20250514":    service.ProviderClaude,
		"anthropic/CLAUDE-3-5-sonnet": service.ProviderClaude,
		"gpt-4o":                      service.ProviderGemini,
		"":                            service.ProviderGemini,
	}
	for model, want := range cases {
		require.Equal(t, want, service.ProviderForModel(model), model)
	}
}

func TestCredentialsStringRedactsKey(t *testing.T) {
	creds := service.Credentials{Provider: service.ProviderClaude, APIKey: "sk-ant-secret"}

	require.NotContains(t, creds.String(), "sk-ant-secret")
	require.NotContains(t, fmt.Sprintf("%v", creds), "sk-ant-secret")
}

func TestConfigErrorNamesEnvVar(t *testing.T) {
	require.EqualError(t, &service.ConfigError{Provider: service.ProviderGemini}, "GEMINI_API_KEY not set")
	require.EqualError(t, &service.ConfigError{Provider: service.ProviderClaude}, "ANTHROPIC_API_KEY not set")
}
