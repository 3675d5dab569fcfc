package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oryizon/storefront/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// adminSubject is the subject carried by every admin session token.
const adminSubject = "admin"

// Claims represents the admin session token claims.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// AdminTokenService issues and validates admin session tokens.
type AdminTokenService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewAdminTokenService creates a token service from the admin configuration.
// When no dedicated token secret is configured, the login secret is reused.
func NewAdminTokenService(cfg config.AdminConfig) *AdminTokenService {
	secret := []byte(cfg.TokenSecret)
	if cfg.TokenSecret == "" {
		secret = []byte(cfg.Secret)
	}

	return &AdminTokenService{
		secret:     secret,
		expiration: cfg.TokenTTL,
		issuer:     cfg.Issuer,
	}
}

// Generate issues a signed admin session token together with its expiry.
func (s *AdminTokenService) Generate() (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   adminSubject,
			Audience:  jwt.ClaimStrings{s.issuer},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: adminSubject,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Validate parses a session token and returns its claims.
func (s *AdminTokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.Subject != adminSubject {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
