package openai

// Config contains OpenAI backend configuration.
// All fields map to OpenAI SDK options:
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
//
// Model and Temperature are the default generation parameters passed
// on every completion call.
type Config struct {
	APIKey      string  `env:"OPENAI_API_KEY"`
	BaseURL     string  `env:"OPENAI_BASE_URL"    envDefault:"https://api.openai.com/v1"`
	Model       string  `env:"OPENAI_MODEL"       envDefault:"gpt-4o-mini"`
	Temperature float64 `env:"OPENAI_TEMPERATURE" envDefault:"0.7"`
	Timeout     int     `env:"OPENAI_TIMEOUT"     envDefault:"60"`
}
