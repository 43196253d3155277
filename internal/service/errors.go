package service

import (
	"fmt"
	"unicode/utf8"
)

const maxFragmentLen = 500

// ConfigError means no API key could be resolved for the selected provider.
type ConfigError struct {
	Provider ProviderKind
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s not set", e.Provider.APIKeyEnv())
}

// UpstreamError covers transport failures and non-success responses from a
// provider.
type UpstreamError struct {
	Provider   ProviderKind
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	name := e.Provider.DisplayName()
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s API error: status %d: %v: %s", name, e.StatusCode, e.Err, fragment(e.Body))
	case e.StatusCode != 0:
		return fmt.Sprintf("%s API error: status %d: %s", name, e.StatusCode, fragment(e.Body))
	case e.Err != nil:
		return fmt.Sprintf("%s API error: %v", name, e.Err)
	default:
		return fmt.Sprintf("%s API error", name)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError means the model output could not be mapped onto the evaluation
// schema. Raw holds the text that was parsed, after fence stripping.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse LLM response: %v (response: %q)", e.Err, fragment(e.Raw))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func fragment(s string) string {
	if len(s) <= maxFragmentLen {
		return s
	}
	cut := maxFragmentLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
