package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Service issues and validates HS256 token pairs. Refresh tokens are
// stateless: a refresh is valid until it expires, no server-side state.
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type Claims struct {
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	TokenType string `json:"token_type"`
	jwtlib.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func New(secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GeneratePair returns a fresh access + refresh token pair for the user.
// The username travels in the "name" claim so clients can display it
// without an extra lookup.
func (s *Service) GeneratePair(userID int64, username string) (*TokenPair, error) {
	access, err := s.sign(userID, username, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, username, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// ValidateAccess parses an access token and returns its claims.
func (s *Service) ValidateAccess(tokenStr string) (*Claims, error) {
	return s.validate(tokenStr, tokenTypeAccess)
}

// Refresh validates a refresh token and issues a new access token.
func (s *Service) Refresh(refreshStr string) (string, error) {
	claims, err := s.validate(refreshStr, tokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return s.sign(claims.UserID, claims.Name, tokenTypeAccess, s.accessTTL)
}

func (s *Service) sign(userID int64, username, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		Name:      username,
		TokenType: tokenType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) validate(tokenStr, wantType string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
