// File: internal/services/helpers_test.go
package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nupat-tech/nupatai/internal/domain"
	"github.com/nupat-tech/nupatai/internal/repository"
	chatrepo "github.com/nupat-tech/nupatai/internal/repository/chat"
	messagerepo "github.com/nupat-tech/nupatai/internal/repository/message"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Chat{}, &domain.Message{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	u := &domain.User{Email: fmt.Sprintf("%s@example.com", uuid.New()), Password: "hashed"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func newTestChatService(t *testing.T, db *gorm.DB) *ChatService {
	t.Helper()
	return NewChatService(
		chatrepo.NewChatRepository(db),
		messagerepo.NewMessageRepository(db),
		repository.NewTxManager(db),
		&NoOpLogger{},
	)
}

// fakeAIService is a canned-response stand-in for the completion
// provider, recording calls so tests can assert on the workflow.
type fakeAIService struct {
	reply    string
	replyErr error
	title    string
	titleErr error

	replyCalls  int
	titleCalls  int
	lastHistory []domain.Message
	lastMessage string
}

func (f *fakeAIService) GenerateReply(ctx context.Context, userMessage string, history []domain.Message) (string, error) {
	f.replyCalls++
	f.lastMessage = userMessage
	f.lastHistory = history
	if f.replyErr != nil {
		return "", f.replyErr
	}
	return f.reply, nil
}

func (f *fakeAIService) GenerateChatTitle(ctx context.Context, firstMessage string) (string, error) {
	f.titleCalls++
	if f.titleErr != nil {
		return "", f.titleErr
	}
	return f.title, nil
}

func newTestMessageService(t *testing.T, db *gorm.DB, fake *fakeAIService) *MessageService {
	t.Helper()
	return NewMessageService(
		newTestChatService(t, db),
		messagerepo.NewMessageRepository(db),
		repository.NewTxManager(db),
		fake,
		&NoOpLogger{},
	)
}
