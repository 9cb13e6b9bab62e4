// File: internal/repository/user/gorm_user_repository.go
package user

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nupat-tech/nupatai/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// Create - persists a new user; the caller is responsible for uniqueness
// checks, but a constraint violation is still reported as a generic error.
func (r *gormUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.validateUserInput(user); err != nil {
		log.Printf("[UserRepository] Validation failed: %v", err)
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// Secure logging - no credentials exposed
		log.Printf("[UserRepository] Database error during user creation: %v", err)
		return nil, errors.New("database error creating user")
	}

	log.Printf("[UserRepository] User created successfully with ID: %s", user.ID)
	return user, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if id == uuid.Nil {
		return nil, errors.New("invalid user ID")
	}

	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return r.handleFindError(err, &user, "FindByID")
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("email is required")
	}

	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return r.handleFindError(err, &user, "FindByEmail")
}

func (r *gormUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, errors.New("phone is required")
	}

	var user domain.User
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	return r.handleFindError(err, &user, "FindByPhone")
}

// ===== VALIDATION HELPERS =====

func (r *gormUserRepository) validateUserInput(user *domain.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	if strings.TrimSpace(user.Email) == "" {
		return errors.New("email is required")
	}
	if user.Password == "" {
		return errors.New("password hash is required")
	}
	return nil
}

// ===== ERROR HANDLING HELPERS =====

// handleFindError - secure error handling without data leakage.
func (r *gormUserRepository) handleFindError(err error, user *domain.User, operation string) (*domain.User, error) {
	if err == nil {
		return user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	log.Printf("[UserRepository] %s database error: %v", operation, err)
	return nil, errors.New("database query failed")
}
