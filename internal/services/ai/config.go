// File: internal/services/ai/config.go
package ai

import "fmt"

type Config struct {
	// Provider Configuration
	APIKey  string
	BaseURL string
	Model   string

	// Generation Parameters - fixed by configuration, never caller-supplied
	Temperature float32
	TopP        float32
	MaxTokens   int

	// Title Generation Parameters
	TitleTemperature float32
	TitleMaxTokens   int

	// Context Window
	MaxHistoryMessages int
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	if c.Model == "" {
		return fmt.Errorf("GROQ_MODEL is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive")
	}
	if c.MaxHistoryMessages <= 0 {
		return fmt.Errorf("max history messages must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Temperature:        0.7,
		TopP:               0.95,
		MaxTokens:          2048,
		TitleTemperature:   0.5,
		TitleMaxTokens:     20,
		MaxHistoryMessages: 10,
	}
}
