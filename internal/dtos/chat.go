// File: internal/dtos/chat.go
package dtos

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/nupat-tech/nupatai/internal/domain"
)

// CreateChatRequest opens a new chat. An omitted or blank title gets the
// default.
type CreateChatRequest struct {
	Title string `json:"title,omitempty"`
}

func (r CreateChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, domain.MaxChatTitleLength)),
	)
}

type UpdateChatRequest struct {
	Title string `json:"title"`
}

func (r UpdateChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, domain.MaxChatTitleLength)),
	)
}

type ChatResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewChatResponse(c *domain.Chat) ChatResponse {
	return ChatResponse{
		ID:           c.ID,
		Title:        c.Title,
		MessageCount: c.MessageCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ChatListResponse is one page of a user's chats.
type ChatListResponse struct {
	Chats      []ChatResponse `json:"chats"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

func NewChatListResponse(chats []domain.Chat, total int64, page, pageSize, totalPages int) ChatListResponse {
	items := make([]ChatResponse, 0, len(chats))
	for i := range chats {
		items = append(items, NewChatResponse(&chats[i]))
	}
	return ChatListResponse{
		Chats:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ChatDetailResponse is a single chat plus its full message history.
type ChatDetailResponse struct {
	ChatResponse
	Messages []MessageResponse `json:"messages"`
}

func NewChatDetailResponse(c *domain.Chat, messages []domain.Message) ChatDetailResponse {
	items := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, NewMessageResponse(&messages[i]))
	}
	return ChatDetailResponse{
		ChatResponse: NewChatResponse(c),
		Messages:     items,
	}
}

type ChatDeleteResponse struct {
	Message string    `json:"message"`
	ChatID  uuid.UUID `json:"chat_id"`
}
