package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/comitanigiacomo/kanso-finance/internal/core/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenRevoked means the signature is fine but the account behind it is gone,
	// taking its profile, ledger and challenges with it.
	ErrTokenRevoked = errors.New("token subject no longer exists")
)

const (
	// TokenAudience scopes session tokens to this API.
	TokenAudience = "kanso-finance-api"

	clockSkew     = 30 * time.Second
	lookupTimeout = 2 * time.Second
)

// TokenService issues HS256 session tokens for the dashboard and resolves them back to
// a user that still owns data.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	users  domain.UserRepository
	parser *jwt.Parser
}

func NewTokenService(secret, issuer string, ttl time.Duration, users domain.UserRepository) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		users:  users,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(TokenAudience),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

func (s *TokenService) GenerateToken(userID string) (string, error) {
	if userID == "" {
		return "", domain.ErrUserIDRequired
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID,
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{TokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token service: failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken returns the subject of a well-formed, unexpired token from this issuer
// whose user still exists. Rejections wrap ErrInvalidToken or ErrTokenRevoked.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(tokenString, &claims, s.key); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if _, err := s.users.GetByID(ctx, claims.Subject); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", ErrTokenRevoked
		}
		return "", fmt.Errorf("token service: user lookup failed: %w", err)
	}

	return claims.Subject, nil
}

func (s *TokenService) key(*jwt.Token) (interface{}, error) {
	return s.secret, nil
}
