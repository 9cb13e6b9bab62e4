// File: internal/services/message_service.go
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nupat-tech/nupatai/internal/domain"
	"github.com/nupat-tech/nupatai/internal/repository"
	"github.com/nupat-tech/nupatai/internal/repository/message"
	"github.com/nupat-tech/nupatai/internal/services/ai"
)

// SendMessageResult carries everything a send produces: both persisted
// messages, the updated chat, and whether a title was generated.
type SendMessageResult struct {
	UserMessage      *domain.Message
	AssistantMessage *domain.Message
	Chat             *domain.Chat
	TitleGenerated   bool
}

// MessageService implements the message listing and send workflows on top
// of an owned chat (ownership is resolved through ChatService).
type MessageService struct {
	chatService *ChatService
	messageRepo message.MessageRepository
	txManager   repository.TxManager
	aiService   ai.Service
	logger      Logger
}

func NewMessageService(chatService *ChatService, messageRepo message.MessageRepository, txManager repository.TxManager, aiService ai.Service, logger Logger) *MessageService {
	return &MessageService{
		chatService: chatService,
		messageRepo: messageRepo,
		txManager:   txManager,
		aiService:   aiService,
		logger:      logger,
	}
}

// ListMessages returns one page of an owned chat's messages in creation
// order, with the total count and computed page count.
func (s *MessageService) ListMessages(ctx context.Context, chatID, userID uuid.UUID, page, pageSize int) ([]domain.Message, int64, int, error) {
	if _, err := s.chatService.GetChat(ctx, chatID, userID); err != nil {
		return nil, 0, 0, err
	}

	offset := (page - 1) * pageSize
	messages, total, err := s.messageRepo.FindByChatIDWithPagination(ctx, chatID, pageSize, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	return messages, total, TotalPages(total, pageSize), nil
}

// SendMessage appends a user message, obtains the assistant reply, and
// commits both plus the chat update atomically. A provider failure aborts
// the whole operation with nothing persisted; only the title sub-call is
// allowed to fail, degrading to the default title.
//
// Two concurrent sends against the same chat may race on ordering and on
// MessageCount (last write wins); this matches the documented behavior.
func (s *MessageService) SendMessage(ctx context.Context, chatID, userID uuid.UUID, content string) (*SendMessageResult, error) {
	conversation, err := s.chatService.GetChat(ctx, chatID, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	isFirstMessage := len(existing) == 0

	// Timestamped before the provider call so the pair always orders
	// user-then-assistant.
	userMessage := &domain.Message{
		ChatID:    conversation.ID,
		Role:      domain.MessageRoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	replyText, err := s.aiService.GenerateReply(ctx, content, existing)
	if err != nil {
		s.logger.Error("assistant reply generation failed", "error", err, "chat_id", chatID)
		return nil, err
	}

	assistantMessage := &domain.Message{
		ChatID:    conversation.ID,
		Role:      domain.MessageRoleAssistant,
		Content:   replyText,
		CreatedAt: time.Now().UTC(),
	}

	titleGenerated := false
	if isFirstMessage {
		raw, titleErr := s.aiService.GenerateChatTitle(ctx, content)
		if titleErr != nil {
			// Degrades to the default title; the send itself is unaffected.
			s.logger.Warn("title generation failed, keeping default title", "error", titleErr, "chat_id", chatID)
		} else if title := ai.SanitizeTitle(raw); title != domain.DefaultChatTitle {
			conversation.Title = title
			titleGenerated = true
		}
	}

	conversation.MessageCount = len(existing) + 2

	err = s.txManager.WithinTx(ctx, func(tx *gorm.DB) error {
		txMessages := s.messageRepo.WithTx(tx)
		if _, err := txMessages.Create(ctx, userMessage); err != nil {
			return err
		}
		if _, err := txMessages.Create(ctx, assistantMessage); err != nil {
			return err
		}
		return s.chatService.chatRepo.WithTx(tx).Update(ctx, conversation)
	})
	if err != nil {
		s.logger.Error("send transaction failed", "error", err, "chat_id", chatID)
		return nil, err
	}

	s.logger.Info("message exchange persisted",
		"chat_id", chatID,
		"message_count", conversation.MessageCount,
		"title_generated", titleGenerated)

	return &SendMessageResult{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		Chat:             conversation,
		TitleGenerated:   titleGenerated,
	}, nil
}
