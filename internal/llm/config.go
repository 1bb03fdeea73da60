package llm

// Config holds the model configuration for the coach's AI path
type Config struct {
	Model           string
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// DefaultConfig returns the default Gemini configuration. The low temperature
// keeps scoring output consistent between calls.
func DefaultConfig() *Config {
	return &Config{
		Model:           "gemini-1.5-flash",
		Temperature:     0.2,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 2048,
	}
}

// WithModel returns a copy of the config with a different model name
func (c *Config) WithModel(model string) *Config {
	copied := *c
	copied.Model = model
	return &copied
}
