// File: internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nupat-tech/nupatai/internal/domain"
	"github.com/nupat-tech/nupatai/internal/repository"
	"github.com/nupat-tech/nupatai/internal/repository/chat"
	"github.com/nupat-tech/nupatai/internal/repository/message"
)

// ErrChatAccessDenied marks a chat that exists but belongs to another
// user. Handlers translate it to 403, never to 404.
var ErrChatAccessDenied = errors.New("not authorized to access this chat")

// ChatService implements chat session CRUD with ownership enforcement.
type ChatService struct {
	chatRepo    chat.ChatRepository
	messageRepo message.MessageRepository
	txManager   repository.TxManager
	logger      Logger
}

func NewChatService(chatRepo chat.ChatRepository, messageRepo message.MessageRepository, txManager repository.TxManager, logger Logger) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateChat inserts a new chat owned by the user. A blank title falls
// back to the default.
func (s *ChatService) CreateChat(ctx context.Context, userID uuid.UUID, title string) (*domain.Chat, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = domain.DefaultChatTitle
	}

	created, err := s.chatRepo.Create(ctx, &domain.Chat{UserID: userID, Title: title})
	if err != nil {
		return nil, err
	}

	s.logger.Info("chat created", "chat_id", created.ID, "user_id", userID)
	return created, nil
}

// ListChats returns one page of the user's chats ordered by most recent
// activity, with the total count and computed page count.
func (s *ChatService) ListChats(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.Chat, int64, int, error) {
	offset := (page - 1) * pageSize
	chats, total, err := s.chatRepo.FindByUserIDWithPagination(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	return chats, total, TotalPages(total, pageSize), nil
}

// GetChat loads a chat and enforces ownership: unknown id surfaces
// chat.ErrChatNotFound, someone else's chat surfaces ErrChatAccessDenied.
func (s *ChatService) GetChat(ctx context.Context, chatID, userID uuid.UUID) (*domain.Chat, error) {
	found, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if found.UserID != userID {
		s.logger.Warn("chat access denied", "chat_id", chatID, "user_id", userID)
		return nil, ErrChatAccessDenied
	}

	return found, nil
}

// GetChatWithMessages loads an owned chat together with every message in
// creation order.
func (s *ChatService) GetChatWithMessages(ctx context.Context, chatID, userID uuid.UUID) (*domain.Chat, []domain.Message, error) {
	found, err := s.GetChat(ctx, chatID, userID)
	if err != nil {
		return nil, nil, err
	}

	messages, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}

	return found, messages, nil
}

// RenameChat updates the title of an owned chat.
func (s *ChatService) RenameChat(ctx context.Context, chatID, userID uuid.UUID, title string) (*domain.Chat, error) {
	found, err := s.GetChat(ctx, chatID, userID)
	if err != nil {
		return nil, err
	}

	found.Title = title
	if err := s.chatRepo.Update(ctx, found); err != nil {
		return nil, err
	}

	return found, nil
}

// DeleteChat permanently removes an owned chat and all of its messages in
// one transaction. Irreversible.
func (s *ChatService) DeleteChat(ctx context.Context, chatID, userID uuid.UUID) error {
	if _, err := s.GetChat(ctx, chatID, userID); err != nil {
		return err
	}

	err := s.txManager.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := s.messageRepo.WithTx(tx).DeleteByChatID(ctx, chatID); err != nil {
			return err
		}
		return s.chatRepo.WithTx(tx).Delete(ctx, chatID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("chat deleted", "chat_id", chatID, "user_id", userID)
	return nil
}

// TotalPages computes ceil(total/pageSize), or 0 for an empty set.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
