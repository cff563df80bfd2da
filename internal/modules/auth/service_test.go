package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marcus/internal/domain"
	jwtsvc "marcus/internal/pkg/jwt"
)

// Mock user repository implementing repository.UserRepository
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// Mock token issuer
type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) GeneratePair(userID int64, username string) (*jwtsvc.TokenPair, error) {
	args := m.Called(userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwtsvc.TokenPair), args.Error(1)
}

func (m *mockIssuer) Refresh(refreshStr string) (string, error) {
	args := m.Called(refreshStr)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(mockUserRepo)
	issuer := new(mockIssuer)

	users.On("ExistsByUsername", mock.Anything, "testuser").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(users, issuer)
	user, err := svc.Register(context.Background(), RegisterRequest{
		Username: "testuser",
		Password: "password",
	})

	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.NotEqual(t, "password", user.PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Register_UsernameTaken(t *testing.T) {
	users := new(mockUserRepo)
	issuer := new(mockIssuer)

	users.On("ExistsByUsername", mock.Anything, "testuser").Return(true, nil)

	svc := NewService(users, issuer)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "testuser",
		Password: "password",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Token_Success(t *testing.T) {
	users := new(mockUserRepo)
	issuer := new(mockIssuer)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.On("GetByUsername", mock.Anything, "testuser").Return(&domain.User{
		ID:           7,
		Username:     "testuser",
		PasswordHash: string(hash),
	}, nil)
	issuer.On("GeneratePair", int64(7), "testuser").Return(&jwtsvc.TokenPair{
		Access:  "fake-access",
		Refresh: "fake-refresh",
	}, nil)

	svc := NewService(users, issuer)
	pair, err := svc.Token(context.Background(), TokenRequest{
		Username: "testuser",
		Password: "password",
	})

	require.NoError(t, err)
	assert.Equal(t, "fake-access", pair.Access)
	assert.Equal(t, "fake-refresh", pair.Refresh)
}

func TestService_Token_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	issuer := new(mockIssuer)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.On("GetByUsername", mock.Anything, "testuser").Return(&domain.User{
		ID:           7,
		Username:     "testuser",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(users, issuer)
	_, err = svc.Token(context.Background(), TokenRequest{
		Username: "testuser",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	issuer.AssertNotCalled(t, "GeneratePair", mock.Anything, mock.Anything)
}

func TestService_Token_UnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	issuer := new(mockIssuer)

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, issuer)
	_, err := svc.Token(context.Background(), TokenRequest{
		Username: "ghost",
		Password: "password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Refresh(t *testing.T) {
	users := new(mockUserRepo)
	issuer := new(mockIssuer)

	issuer.On("Refresh", "good-refresh").Return("new-access", nil)
	issuer.On("Refresh", "bad-refresh").Return("", jwtsvc.ErrInvalidToken)

	svc := NewService(users, issuer)

	access, err := svc.Refresh(RefreshRequest{Refresh: "good-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", access)

	_, err = svc.Refresh(RefreshRequest{Refresh: "bad-refresh"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
