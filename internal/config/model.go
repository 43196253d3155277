package config

const DefaultModel = "gemini-2.5-flash"

type ModelConfig struct {
	Default string
}

func LoadModelConfig() *ModelConfig {
	model := env().GetString("model")
	if model == "" {
		model = DefaultModel
	}
	return &ModelConfig{Default: model}
}
