// File: internal/dtos/message.go
package dtos

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/nupat-tech/nupatai/internal/domain"
	"github.com/nupat-tech/nupatai/internal/services"
)

type SendMessageRequest struct {
	Content string `json:"content"`
}

func (r SendMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
	)
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chat_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessageResponse(m *domain.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		ChatID:    m.ChatID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// MessageListResponse is one page of a chat's messages in creation order.
type MessageListResponse struct {
	Messages   []MessageResponse `json:"messages"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

func NewMessageListResponse(messages []domain.Message, total int64, page, pageSize, totalPages int) MessageListResponse {
	items := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, NewMessageResponse(&messages[i]))
	}
	return MessageListResponse{
		Messages:   items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// SendMessageChat is the chat summary embedded in a send response.
type SendMessageChat struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	MessageCount   int       `json:"message_count"`
	TitleGenerated bool      `json:"title_generated"`
}

// SendMessageResponse carries both halves of the exchange plus the
// updated chat state.
type SendMessageResponse struct {
	UserMessage      MessageResponse `json:"user_message"`
	AssistantMessage MessageResponse `json:"assistant_message"`
	Chat             SendMessageChat `json:"chat"`
}

func NewSendMessageResponse(result *services.SendMessageResult) SendMessageResponse {
	return SendMessageResponse{
		UserMessage:      NewMessageResponse(result.UserMessage),
		AssistantMessage: NewMessageResponse(result.AssistantMessage),
		Chat: SendMessageChat{
			ID:             result.Chat.ID,
			Title:          result.Chat.Title,
			MessageCount:   result.Chat.MessageCount,
			TitleGenerated: result.TitleGenerated,
		},
	}
}
