// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nupat-tech/nupatai/internal/domain"
)

var ErrMessageNotFound = errors.New("message not found")

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *gormMessageRepository) WithTx(tx *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: tx}
}

// Create - persists a message after input validation.
func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if err := r.validateMessageInput(message); err != nil {
		log.Printf("[MessageRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		// Secure logging - no conversation content exposed
		log.Printf("[MessageRepository] Database error during message creation for chat %s: %v", message.ChatID, err)
		return nil, errors.New("database error creating message")
	}

	return message, nil
}

// FindByChatID - loads every message of a chat in creation order. Used by
// the send workflow, which needs the full history for the context window.
func (r *gormMessageRepository) FindByChatID(ctx context.Context, chatID uuid.UUID) ([]domain.Message, error) {
	if chatID == uuid.Nil {
		return nil, errors.New("invalid chat ID")
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at asc").
		Find(&messages).Error

	if err != nil {
		log.Printf("[MessageRepository] Database error finding messages for chat %s: %v", chatID, err)
		return nil, errors.New("database error fetching messages")
	}

	return messages, nil
}

// FindByChatIDWithPagination - loads one page of a chat's messages in
// creation order, plus the total count for page math.
func (r *gormMessageRepository) FindByChatIDWithPagination(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]domain.Message, int64, error) {
	if chatID == uuid.Nil {
		return nil, 0, errors.New("invalid chat ID")
	}
	if limit <= 0 || limit > 1000 {
		return nil, 0, errors.New("invalid limit: must be between 1 and 1000")
	}
	if offset < 0 {
		return nil, 0, errors.New("invalid offset: must be >= 0")
	}

	var messages []domain.Message
	var total int64

	// Efficient counting without loading data
	if err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("chat_id = ?", chatID).Count(&total).Error; err != nil {
		log.Printf("[MessageRepository] Database error counting messages for chat %s: %v", chatID, err)
		return nil, 0, errors.New("database error counting messages")
	}

	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at asc").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error

	if err != nil {
		log.Printf("[MessageRepository] Database error in paginated query for chat %s: %v", chatID, err)
		return nil, 0, errors.New("database error retrieving paginated messages")
	}

	return messages, total, nil
}

// CountByChatID - efficient message counting.
func (r *gormMessageRepository) CountByChatID(ctx context.Context, chatID uuid.UUID) (int64, error) {
	if chatID == uuid.Nil {
		return 0, errors.New("invalid chat ID")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("chat_id = ?", chatID).Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages for chat %s: %v", chatID, err)
		return 0, errors.New("database error counting chat messages")
	}

	return count, nil
}

// DeleteByChatID performs a bulk deletion of all messages associated with
// a given chat. Runs inside the chat-delete transaction.
func (r *gormMessageRepository) DeleteByChatID(ctx context.Context, chatID uuid.UUID) error {
	if chatID == uuid.Nil {
		return errors.New("invalid chat ID")
	}

	result := r.db.WithContext(ctx).Where("chat_id = ?", chatID).Delete(&domain.Message{})
	if result.Error != nil {
		log.Printf("[MessageRepository] Database error deleting messages for chat %s: %v", chatID, result.Error)
		return errors.New("database error deleting messages by chat ID")
	}

	log.Printf("[MessageRepository] Deleted %d messages for chat %s", result.RowsAffected, chatID)
	return nil
}

// ===== VALIDATION HELPERS =====

func (r *gormMessageRepository) validateMessageInput(message *domain.Message) error {
	if message == nil {
		return errors.New("message cannot be nil")
	}
	if message.ChatID == uuid.Nil {
		return errors.New("chat ID is required")
	}
	if !message.Role.IsValid() {
		return errors.New("invalid message role")
	}
	if strings.TrimSpace(message.Content) == "" {
		return errors.New("message content cannot be empty")
	}
	return nil
}
