// File: internal/domain/message.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRole is the closed set of speakers a message can belong to.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// IsValid reports whether the role is one of the known values.
func (r MessageRole) IsValid() bool {
	return r == MessageRoleUser || r == MessageRoleAssistant
}

// Message represents a single message within a chat. Messages are
// immutable once created and ordered by CreatedAt.
type Message struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	ChatID    uuid.UUID   `json:"chat_id" gorm:"type:uuid;index;not null"`
	Role      MessageRole `json:"role" gorm:"size:20;not null"`
	Content   string      `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time   `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
