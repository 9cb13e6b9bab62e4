// File: internal/services/message_service_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nupat-tech/nupatai/internal/domain"
	chatrepo "github.com/nupat-tech/nupatai/internal/repository/chat"
)

func TestMessageService_SendMessage_FirstExchange(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeAIService{reply: "Jollof rice origins are debated.", title: `"Jollof Rice History"`}
	svc := newTestMessageService(t, db, fake)
	owner := createTestUser(t, db)
	ctx := context.Background()

	conversation, err := svc.chatService.CreateChat(ctx, owner.ID, "")
	require.NoError(t, err)

	result, err := svc.SendMessage(ctx, conversation.ID, owner.ID, "Where does jollof rice come from?")
	require.NoError(t, err)

	assert.Equal(t, domain.MessageRoleUser, result.UserMessage.Role)
	assert.Equal(t, "Where does jollof rice come from?", result.UserMessage.Content)
	assert.Equal(t, domain.MessageRoleAssistant, result.AssistantMessage.Role)
	assert.Equal(t, "Jollof rice origins are debated.", result.AssistantMessage.Content)
	assert.False(t, result.AssistantMessage.CreatedAt.Before(result.UserMessage.CreatedAt))

	assert.Equal(t, 2, result.Chat.MessageCount)
	assert.True(t, result.TitleGenerated)
	assert.Equal(t, "Jollof Rice History", result.Chat.Title)

	assert.Equal(t, 1, fake.replyCalls)
	assert.Equal(t, 1, fake.titleCalls)
	assert.Empty(t, fake.lastHistory)

	// Persisted state matches the returned result.
	stored, err := svc.chatService.GetChat(ctx, conversation.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jollof Rice History", stored.Title)
	assert.Equal(t, 2, stored.MessageCount)

	messages, err := svc.messageRepo.FindByChatID(ctx, conversation.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, domain.MessageRoleUser, messages[0].Role)
	assert.Equal(t, domain.MessageRoleAssistant, messages[1].Role)
}

func TestMessageService_SendMessage_TitleFailureDegrades(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeAIService{reply: "answer", titleErr: errors.New("title model down")}
	svc := newTestMessageService(t, db, fake)
	owner := createTestUser(t, db)
	ctx := context.Background()

	conversation, err := svc.chatService.CreateChat(ctx, owner.ID, "")
	require.NoError(t, err)

	result, err := svc.SendMessage(ctx, conversation.ID, owner.ID, "hello")
	require.NoError(t, err)

	assert.False(t, result.TitleGenerated)
	assert.Equal(t, domain.DefaultChatTitle, result.Chat.Title)
	assert.Equal(t, 2, result.Chat.MessageCount)
}

func TestMessageService_SendMessage_UnusableTitle(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeAIService{reply: "answer", title: `""`}
	svc := newTestMessageService(t, db, fake)
	owner := createTestUser(t, db)
	ctx := context.Background()

	conversation, err := svc.chatService.CreateChat(ctx, owner.ID, "")
	require.NoError(t, err)

	result, err := svc.SendMessage(ctx, conversation.ID, owner.ID, "hello")
	require.NoError(t, err)

	assert.False(t, result.TitleGenerated)
	assert.Equal(t, domain.DefaultChatTitle, result.Chat.Title)
}

func TestMessageService_SendMessage_SubsequentExchange(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeAIService{reply: "second answer", title: "Should Not Be Used"}
	svc := newTestMessageService(t, db, fake)
	owner := createTestUser(t, db)
	ctx := context.Background()

	conversation, err := svc.chatService.CreateChat(ctx, owner.ID, "Existing Title")
	require.NoError(t, err)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	prior := []domain.Message{
		{ChatID: conversation.ID, Role: domain.MessageRoleUser, Content: "q1", CreatedAt: base},
		{ChatID: conversation.ID, Role: domain.MessageRoleAssistant, Content: "a1", CreatedAt: base.Add(time.Second)},
	}
	for i := range prior {
		require.NoError(t, db.Create(&prior[i]).Error)
	}

	result, err := svc.SendMessage(ctx, conversation.ID, owner.ID, "q2")
	require.NoError(t, err)

	assert.Equal(t, 4, result.Chat.MessageCount)
	assert.Equal(t, "Existing Title", result.Chat.Title)
	assert.False(t, result.TitleGenerated)
	assert.Zero(t, fake.titleCalls)

	// The provider saw the stored history, oldest first.
	require.Len(t, fake.lastHistory, 2)
	assert.Equal(t, "q1", fake.lastHistory[0].Content)
	assert.Equal(t, "a1", fake.lastHistory[1].Content)
	assert.Equal(t, "q2", fake.lastMessage)
}

func TestMessageService_SendMessage_ProviderFailurePersistsNothing(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeAIService{replyErr: errors.New("provider unavailable")}
	svc := newTestMessageService(t, db, fake)
	owner := createTestUser(t, db)
	ctx := context.Background()

	conversation, err := svc.chatService.CreateChat(ctx, owner.ID, "")
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, conversation.ID, owner.ID, "hello")
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.Message{}).Where("chat_id = ?", conversation.ID).Count(&count).Error)
	assert.Zero(t, count)

	stored, err := svc.chatService.GetChat(ctx, conversation.ID, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.MessageCount)
	assert.Equal(t, domain.DefaultChatTitle, stored.Title)
	assert.Zero(t, fake.titleCalls)
}

func TestMessageService_SendMessage_Ownership(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeAIService{reply: "answer"}
	svc := newTestMessageService(t, db, fake)
	owner := createTestUser(t, db)
	intruder := createTestUser(t, db)
	ctx := context.Background()

	conversation, err := svc.chatService.CreateChat(ctx, owner.ID, "")
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, conversation.ID, intruder.ID, "hello")
	assert.ErrorIs(t, err, ErrChatAccessDenied)

	_, err = svc.SendMessage(ctx, uuid.New(), owner.ID, "hello")
	assert.ErrorIs(t, err, chatrepo.ErrChatNotFound)

	assert.Zero(t, fake.replyCalls)
}

func TestMessageService_ListMessages(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeAIService{reply: "answer"}
	svc := newTestMessageService(t, db, fake)
	owner := createTestUser(t, db)
	intruder := createTestUser(t, db)
	ctx := context.Background()

	conversation, err := svc.chatService.CreateChat(ctx, owner.ID, "")
	require.NoError(t, err)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		m := &domain.Message{
			ChatID:    conversation.ID,
			Role:      domain.MessageRoleUser,
			Content:   fmt.Sprintf("m-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, db.Create(m).Error)
	}

	messages, total, totalPages, err := svc.ListMessages(ctx, conversation.ID, owner.ID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, 3, totalPages)
	require.Len(t, messages, 2)
	assert.Equal(t, "m-2", messages[0].Content)

	_, _, _, err = svc.ListMessages(ctx, conversation.ID, intruder.ID, 1, 20)
	assert.ErrorIs(t, err, ErrChatAccessDenied)
}
