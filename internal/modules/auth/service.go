package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marcus/internal/domain"
	jwtsvc "marcus/internal/pkg/jwt"
	"marcus/internal/repository"
)

type tokenIssuer interface {
	GeneratePair(userID int64, username string) (*jwtsvc.TokenPair, error)
	Refresh(refreshStr string) (string, error)
}

// Service handles registration and token issuance. Session mechanics are
// fully delegated to the JWT service; nothing is stored per login.
type Service struct {
	users repository.UserRepository
	jwt   tokenIssuer
}

func NewService(users repository.UserRepository, jwt tokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates a user with a bcrypt-hashed password. A taken username
// is a conflict, never an overwrite.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Token verifies credentials and returns an access + refresh pair.
func (s *Service) Token(ctx context.Context, req TokenRequest) (*jwtsvc.TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.jwt.GeneratePair(user.ID, user.Username)
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *Service) Refresh(req RefreshRequest) (string, error) {
	access, err := s.jwt.Refresh(req.Refresh)
	if err != nil {
		return "", ErrInvalidToken
	}
	return access, nil
}

// Users lists every account; exposed to authenticated callers only.
func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
