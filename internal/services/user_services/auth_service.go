// File: internal/services/user_services/auth_service.go
package user_services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nupat-tech/nupatai/internal/domain"
	"github.com/nupat-tech/nupatai/internal/repository/user"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	ErrPhoneTaken = errors.New("phone number already registered")
	// ErrInvalidCredentials is deliberately generic: callers must not be
	// able to tell an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
)

type AuthService struct {
	userRepo     user.UserRepository
	jwtSecretKey string
	jwtAlgorithm string
	tokenTTL     time.Duration
	logger       Logger
}

func NewAuthService(userRepo user.UserRepository, jwtSecretKey, jwtAlgorithm string, tokenTTL time.Duration, logger Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		jwtAlgorithm: jwtAlgorithm,
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

// Signup registers a new user and returns the created profile plus a
// signed bearer token. Duplicate email or phone fails before any write.
func (s *AuthService) Signup(ctx context.Context, email string, phone *string, password string) (*domain.User, string, error) {
	s.logger.Info("user signup attempt", "email", mask(email))

	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		s.logger.Warn("signup failed - email already exists", "email", mask(email))
		return nil, "", ErrEmailTaken
	}

	if phone != nil && *phone != "" {
		if existing, err := s.userRepo.FindByPhone(ctx, *phone); err == nil && existing != nil {
			s.logger.Warn("signup failed - phone already exists", "phone", mask(*phone))
			return nil, "", ErrPhoneTaken
		}
	}

	newUser := &domain.User{Email: email, Phone: phone}
	if err := newUser.HashPassword(password); err != nil {
		s.logger.Error("password hashing failed", "error", err, "email", mask(email))
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		s.logger.Error("user creation failed", "error", err, "email", mask(email))
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.GenerateToken(created)
	if err != nil {
		s.logger.Error("token generation failed", "error", err, "user_id", created.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered successfully", "email", mask(email), "user_id", created.ID)
	return created, token, nil
}

// Login authenticates a user by email and password and returns a bearer
// token. All failures collapse into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	s.logger.Info("user login attempt", "email", mask(email))

	account, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("login failed - user not found", "email", mask(email))
		return nil, "", ErrInvalidCredentials
	}

	if err := account.ValidatePassword(password); err != nil {
		s.logger.Warn("login failed - invalid password", "email", mask(email), "user_id", account.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(account)
	if err != nil {
		s.logger.Error("token generation failed", "error", err, "user_id", account.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("login successful", "email", mask(email), "user_id", account.ID)
	return account, token, nil
}

// ResolveUser is the sole authentication gate: it validates the token and
// loads the matching user, failing with ErrInvalidToken on any defect.
func (s *AuthService) ResolveUser(ctx context.Context, tokenString string) (*domain.User, error) {
	userID, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	account, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("token subject has no matching user", "user_id", userID)
		return nil, ErrInvalidToken
	}

	return account, nil
}

// GenerateToken creates a signed token whose subject is the user's ID.
func (s *AuthService) GenerateToken(account *domain.User) (string, error) {
	method := jwt.GetSigningMethod(s.jwtAlgorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm %q", s.jwtAlgorithm)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.ID.String(),
		"email": account.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(s.jwtSecretKey))
}

// ValidateToken checks signature, expiry and subject shape, returning the
// user ID carried in the subject claim.
func (s *AuthService) ValidateToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil {
		s.logger.Warn("token validation failed", "error", err)
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		s.logger.Warn("token missing subject claim")
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		s.logger.Warn("token subject is not a valid identifier")
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
