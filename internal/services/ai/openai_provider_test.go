// File: internal/services/ai/openai_provider_test.go
package ai

import (
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nupat-tech/nupatai/internal/domain"
)

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = "llama-3.3-70b-versatile"

	_, err := NewOpenAIProvider(cfg)
	require.Error(t, err)

	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ErrTypeConfig, aiErr.Type)
}

func TestBuildChatContext_SystemFirstUserLast(t *testing.T) {
	history := []domain.Message{
		{Role: domain.MessageRoleUser, Content: "hello"},
		{Role: domain.MessageRoleAssistant, Content: "hi there"},
	}

	messages := buildChatContext("what is M-Pesa?", history, 10)
	require.Len(t, messages, 4)

	assert.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, SystemPrompt, messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, messages[1].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, messages[2].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, messages[3].Role)
	assert.Equal(t, "what is M-Pesa?", messages[3].Content)
}

func TestBuildChatContext_BoundsHistory(t *testing.T) {
	history := make([]domain.Message, 0, 24)
	for i := 0; i < 24; i++ {
		role := domain.MessageRoleUser
		if i%2 == 1 {
			role = domain.MessageRoleAssistant
		}
		history = append(history, domain.Message{Role: role, Content: fmt.Sprintf("msg-%d", i)})
	}

	messages := buildChatContext("latest question", history, 10)

	// system + 10 most recent + new user message
	require.Len(t, messages, 12)
	assert.Equal(t, "msg-14", messages[1].Content)
	assert.Equal(t, "msg-23", messages[10].Content)
	assert.Equal(t, "latest question", messages[11].Content)
}

func TestBuildChatContext_EmptyHistory(t *testing.T) {
	messages := buildChatContext("first message", nil, 10)

	require.Len(t, messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, "first message", messages[1].Content)
}
