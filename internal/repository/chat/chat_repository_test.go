// File: internal/repository/chat/chat_repository_test.go
package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nupat-tech/nupatai/internal/domain"
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

func TestChatRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	owner := createTestUser(t, db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Chat{UserID: owner.ID, Title: "Paystack Integration"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paystack Integration", found.Title)
	assert.Equal(t, owner.ID, found.UserID)
}

func TestChatRepository_Create_DefaultTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	owner := createTestUser(t, db)

	created, err := repo.Create(context.Background(), &domain.Chat{UserID: owner.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultChatTitle, created.Title)
}

func TestChatRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestChatRepository_Pagination_RecentFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	owner := createTestUser(t, db)
	other := createTestUser(t, db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		c := &domain.Chat{
			UserID:    owner.ID,
			Title:     fmt.Sprintf("chat-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(c).Error)
	}
	// Another user's chat must never leak into the page.
	require.NoError(t, db.Create(&domain.Chat{UserID: other.ID, Title: "foreign"}).Error)

	chats, total, err := repo.FindByUserIDWithPagination(ctx, owner.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, chats, 2)
	assert.Equal(t, "chat-4", chats[0].Title)
	assert.Equal(t, "chat-3", chats[1].Title)

	chats, total, err = repo.FindByUserIDWithPagination(ctx, owner.ID, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, chats, 1)
	assert.Equal(t, "chat-0", chats[0].Title)
}

func TestChatRepository_Pagination_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)

	chats, total, err := repo.FindByUserIDWithPagination(context.Background(), uuid.New(), 20, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, chats)
}

func TestChatRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	owner := createTestUser(t, db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Chat{UserID: owner.ID})
	require.NoError(t, err)

	created.Title = "Renamed"
	created.MessageCount = 4
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Title)
	assert.Equal(t, 4, found.MessageCount)
}

func TestChatRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	owner := createTestUser(t, db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Chat{UserID: owner.ID})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrChatNotFound)
}
