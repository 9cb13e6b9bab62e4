// File: internal/services/ai/interface.go
package ai

import (
	"context"

	"github.com/nupat-tech/nupatai/internal/domain"
)

// Service is the text-generation surface the message workflow depends on.
// Implementations are stateless per call and safe for concurrent use; one
// instance is constructed at process start and shared.
type Service interface {
	// GenerateReply produces the assistant's answer to userMessage given
	// the chat history. Only a bounded window of the most recent history
	// is forwarded to the model.
	GenerateReply(ctx context.Context, userMessage string, history []domain.Message) (string, error)

	// GenerateChatTitle produces a short raw title candidate from the
	// first user message of a chat. Callers sanitize the result and fall
	// back to the default title on error.
	GenerateChatTitle(ctx context.Context, firstMessage string) (string, error)
}
