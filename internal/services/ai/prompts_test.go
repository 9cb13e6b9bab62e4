// File: internal/services/ai/prompts_test.go
package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nupat-tech/nupatai/internal/domain"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Naira Exchange Rates", "Naira Exchange Rates"},
		{"surrounding quotes", `"Mobile Money In Kenya"`, "Mobile Money In Kenya"},
		{"single quotes", "'AfCFTA Trade Rules'", "AfCFTA Trade Rules"},
		{"whitespace", "   Farming Advice   ", "Farming Advice"},
		{"empty", "", domain.DefaultChatTitle},
		{"only quotes", `""`, domain.DefaultChatTitle},
		{"caps at six words", "One Two Three Four Five Six Seven Eight", "One Two Three Four Five Six"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTitle(tt.raw))
		})
	}
}

func TestSanitizeTitle_LengthCap(t *testing.T) {
	long := strings.Repeat("a", 150) + " " + strings.Repeat("b", 150)
	got := SanitizeTitle(long)

	assert.LessOrEqual(t, len(got), domain.MaxChatTitleLength)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTitleGenerationPrompt_EmbedsMessage(t *testing.T) {
	prompt := TitleGenerationPrompt("How do I register a business in Nigeria?")
	assert.Contains(t, prompt, "How do I register a business in Nigeria?")
	assert.Contains(t, prompt, "Maximum 6 words")
}
