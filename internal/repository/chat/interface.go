package chat

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nupat-tech/nupatai/internal/domain"
)

// ChatRepository handles chat data operations.
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	FindByID(ctx context.Context, chatID uuid.UUID) (*domain.Chat, error)
	FindByUserIDWithPagination(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Chat, int64, error)
	Update(ctx context.Context, chat *domain.Chat) error
	Delete(ctx context.Context, chatID uuid.UUID) error

	// WithTx rebinds the repository to a transaction handle so multiple
	// writes can share one commit.
	WithTx(tx *gorm.DB) ChatRepository
}
