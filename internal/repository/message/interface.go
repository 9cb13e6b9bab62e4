// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nupat-tech/nupatai/internal/domain"
)

// MessageRepository handles message data operations. Messages are
// append-only: there is no update path.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByChatID(ctx context.Context, chatID uuid.UUID) ([]domain.Message, error)
	FindByChatIDWithPagination(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]domain.Message, int64, error)
	CountByChatID(ctx context.Context, chatID uuid.UUID) (int64, error)
	DeleteByChatID(ctx context.Context, chatID uuid.UUID) error

	// WithTx rebinds the repository to a transaction handle so multiple
	// writes can share one commit.
	WithTx(tx *gorm.DB) MessageRepository
}
