// File: internal/repository/chat/chat_repository.go
package chat

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

var ErrChatNotFound = errors.New("chat not found")

type gormChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *gormChatRepository) WithTx(tx *gorm.DB) ChatRepository {
	return &gormChatRepository{db: tx}
}

// Create - persists a chat after input validation.
func (r *gormChatRepository) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	if err := r.validateChatInput(chat); err != nil {
		log.Printf("[ChatRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(chat).Error; err != nil {
		log.Printf("[ChatRepository] Database error during chat creation for user %s: %v", chat.UserID, err)
		return nil, errors.New("database error creating chat")
	}

	return chat, nil
}

func (r *gormChatRepository) FindByID(ctx context.Context, chatID uuid.UUID) (*domain.Chat, error) {
	if chatID == uuid.Nil {
		return nil, errors.New("invalid chat ID")
	}

	var chat domain.Chat
	err := r.db.WithContext(ctx).First(&chat, "id = ?", chatID).Error
	return r.handleFindError(err, &chat, "FindByID")
}

// FindByUserIDWithPagination - loads one page of a user's chats ordered by
// most recent activity, plus the total count for page math.
func (r *gormChatRepository) FindByUserIDWithPagination(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Chat, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, errors.New("invalid user ID")
	}
	if limit <= 0 || limit > 1000 {
		return nil, 0, errors.New("invalid limit: must be between 1 and 1000")
	}
	if offset < 0 {
		return nil, 0, errors.New("invalid offset: must be >= 0")
	}

	var chats []domain.Chat
	var total int64

	// Efficient counting without loading data
	if err := r.db.WithContext(ctx).Model(&domain.Chat{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		log.Printf("[ChatRepository] Database error counting chats for user %s: %v", userID, err)
		return nil, 0, errors.New("database error counting chats")
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&chats).Error

	if err != nil {
		log.Printf("[ChatRepository] Database error in paginated query for user %s: %v", userID, err)
		return nil, 0, errors.New("database error retrieving paginated chats")
	}

	return chats, total, nil
}

// Update - saves title, message count and timestamps for an existing chat.
func (r *gormChatRepository) Update(ctx context.Context, chat *domain.Chat) error {
	if chat == nil || chat.ID == uuid.Nil {
		return errors.New("invalid chat ID")
	}
	if err := r.validateChatInput(chat); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result := r.db.WithContext(ctx).Save(chat)
	if result.Error != nil {
		log.Printf("[ChatRepository] Database error updating chat %s: %v", chat.ID, result.Error)
		return errors.New("database error updating chat")
	}
	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}

	return nil
}

// Delete - removes a chat row. Ownership is checked by the service layer;
// message cleanup happens in the same transaction via the message repository.
func (r *gormChatRepository) Delete(ctx context.Context, chatID uuid.UUID) error {
	if chatID == uuid.Nil {
		return errors.New("invalid chat ID")
	}

	result := r.db.WithContext(ctx).Where("id = ?", chatID).Delete(&domain.Chat{})
	if result.Error != nil {
		log.Printf("[ChatRepository] Database error deleting chat %s: %v", chatID, result.Error)
		return errors.New("database error deleting chat")
	}
	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}

	return nil
}

// ===== VALIDATION HELPERS =====

func (r *gormChatRepository) validateChatInput(chat *domain.Chat) error {
	if chat == nil {
		return errors.New("chat cannot be nil")
	}
	if chat.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if err := r.validateChatTitle(chat.Title); err != nil {
		return fmt.Errorf("title validation: %w", err)
	}
	return nil
}

func (r *gormChatRepository) validateChatTitle(title string) error {
	if len(title) > domain.MaxChatTitleLength {
		return errors.New("title must be 200 characters or less")
	}

	// Basic XSS protection
	if strings.Contains(title, "<script") || strings.Contains(title, "javascript:") {
		return errors.New("invalid characters detected in title")
	}

	return nil
}

// ===== ERROR HANDLING HELPERS =====

// handleFindError - secure error handling without data leakage.
func (r *gormChatRepository) handleFindError(err error, chat *domain.Chat, operation string) (*domain.Chat, error) {
	if err == nil {
		return chat, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChatNotFound
	}

	log.Printf("[ChatRepository] %s database error: %v", operation, err)
	return nil, errors.New("database query failed")
}
