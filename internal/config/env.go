package config

// apiKeyEnv lists the variables holding the Gemini key, most specific first.
var apiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// parseEnv overlays secrets that should not live in files or shell history.
func parseEnv(cfg *Config, lookupEnv func(string) (string, bool)) {
	for _, name := range apiKeyEnv {
		if v, ok := lookupEnv(name); ok && v != "" {
			cfg.GenAIAPIKey = v
			return
		}
	}
}
