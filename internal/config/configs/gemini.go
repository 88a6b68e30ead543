package configs

import "time"

// Gemini configures the generative-AI gateway client. An empty APIKey is
// allowed: every gateway call degrades to its deterministic fallback when
// the service rejects the request, so the application stays usable without
// a key.
type Gemini struct {
	// BaseURL is the API endpoint root. Overridable for tests and proxies.
	BaseURL string `env:"BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	// APIKey authenticates requests. Sent as a header, never logged.
	APIKey string `env:"API_KEY"`
	// TextModel generates campaign copy and performance analysis.
	TextModel string `env:"TEXT_MODEL" envDefault:"gemini-2.5-flash"`
	// ImageModel generates campaign visuals.
	ImageModel string `env:"IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
	// Timeout bounds each generation request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
