package config

const DefaultAnthropicBaseURL = "https://api.anthropic.com"

type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Version string
}

// LoadAnthropicConfig reads the Anthropic settings. Values are read from the
// environment on every call.
func LoadAnthropicConfig() *AnthropicConfig {
	v := env()
	baseURL := v.GetString("anthropic_base_url")
	if baseURL == "" {
		baseURL = DefaultAnthropicBaseURL
	}
	return &AnthropicConfig{
		APIKey:  v.GetString("anthropic_api_key"),
		BaseURL: baseURL,
		Version: v.GetString("anthropic_version"),
	}
}
