// File: internal/domain/user_test.go
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_HashPassword(t *testing.T) {
	u := &User{Email: "amina@example.com"}

	require.NoError(t, u.HashPassword("correct-horse-battery"))
	assert.NotEmpty(t, u.Password)
	assert.NotEqual(t, "correct-horse-battery", u.Password)

	assert.NoError(t, u.ValidatePassword("correct-horse-battery"))
	assert.Error(t, u.ValidatePassword("wrong-password"))
}

func TestUser_HashPassword_TooShort(t *testing.T) {
	u := &User{}
	err := u.HashPassword("short")
	require.Error(t, err)
	assert.Empty(t, u.Password)
}

func TestUser_BeforeCreate_AssignsID(t *testing.T) {
	u := &User{Email: "amina@example.com"}
	require.NoError(t, u.BeforeCreate(nil))
	assert.NotEqual(t, u.ID.String(), "00000000-0000-0000-0000-000000000000")

	existing := u.ID
	require.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, existing, u.ID)
}
