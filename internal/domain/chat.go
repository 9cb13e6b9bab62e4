// File: internal/domain/chat.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultChatTitle is the title every chat starts with until a real one
// is supplied or generated from the first message.
const DefaultChatTitle = "New Chat"

// MaxChatTitleLength is the storage limit for chat titles.
const MaxChatTitleLength = 200

// Chat represents a single conversation thread owned by one user.
// MessageCount is denormalized and kept in step with the persisted
// messages by the send-message transaction.
type Chat struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Title        string    `json:"title" gorm:"size:200;not null;default:'New Chat'"`
	MessageCount int       `json:"message_count" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Messages []Message `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key and the default title.
func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Title == "" {
		c.Title = DefaultChatTitle
	}
	return nil
}
