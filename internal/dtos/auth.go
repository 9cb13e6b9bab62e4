// File: internal/dtos/auth.go
package dtos

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/nupat-tech/nupatai/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// SignupRequest is the registration payload. Phone is optional but must
// look like a phone number when present.
type SignupRequest struct {
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
		validation.Field(&r.Phone, validation.By(func(value interface{}) error {
			phone, _ := value.(*string)
			if phone == nil || *phone == "" {
				return nil
			}
			return validation.Validate(*phone, validation.Match(phonePattern))
		})),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// UserResponse is the public view of an account. The password hash never
// leaves the domain layer.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(account *domain.User) UserResponse {
	return UserResponse{
		ID:        account.ID,
		Email:     account.Email,
		Phone:     account.Phone,
		CreatedAt: account.CreatedAt,
	}
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

func NewAuthResponse(account *domain.User, token string) AuthResponse {
	return AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        NewUserResponse(account),
	}
}
