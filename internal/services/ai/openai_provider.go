// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nupat-tech/nupatai/internal/domain"
)

// OpenAIProvider talks to any OpenAI-compatible completion endpoint
// (Groq in production). It holds no per-call state.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, NewConfigError(err.Error())
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// GenerateReply sends the system prompt, a bounded slice of history and
// the new user message to the model and returns the completion text.
func (p *OpenAIProvider) GenerateReply(ctx context.Context, userMessage string, history []domain.Message) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.config.Model,
		Messages:    buildChatContext(userMessage, history, p.config.MaxHistoryMessages),
		Temperature: p.config.Temperature,
		TopP:        p.config.TopP,
		MaxTokens:   p.config.MaxTokens,
	})
	if err != nil {
		return "", NewProviderError("completion", "failed to create completion", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "completion",
			Message:   "empty completion response",
		}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateChatTitle asks the model for a short title candidate. The raw
// text is returned; callers run it through SanitizeTitle.
func (p *OpenAIProvider) GenerateChatTitle(ctx context.Context, firstMessage string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: titleSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: TitleGenerationPrompt(firstMessage)},
		},
		Temperature: p.config.TitleTemperature,
		MaxTokens:   p.config.TitleMaxTokens,
	})
	if err != nil {
		return "", NewProviderError("title", "failed to generate title", err)
	}

	if len(resp.Choices) == 0 {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "title",
			Message:   "empty title response",
		}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildChatContext assembles the provider message sequence: fixed system
// prompt first, then at most maxHistory of the most recent prior messages
// role-for-role, then the new user content last. Older history is dropped
// from the call only, never from storage.
func buildChatContext(userMessage string, history []domain.Message, maxHistory int) []openai.ChatCompletionMessage {
	recent := history
	if len(recent) > maxHistory {
		recent = recent[len(recent)-maxHistory:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(recent)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: SystemPrompt,
	})

	for _, msg := range recent {
		role := openai.ChatMessageRoleUser
		if msg.Role == domain.MessageRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})
}
