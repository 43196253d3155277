package config

type GeminiConfig struct {
	APIKey string
	// BaseURL overrides the SDK endpoint. Empty means the public Gemini API.
	BaseURL string
}

// LoadGeminiConfig reads the Gemini settings. Values are read from the
// environment on every call.
func LoadGeminiConfig() *GeminiConfig {
	v := env()
	return &GeminiConfig{
		APIKey:  v.GetString("gemini_api_key"),
		BaseURL: v.GetString("gemini_base_url"),
	}
}
