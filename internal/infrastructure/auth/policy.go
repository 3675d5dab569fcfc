package auth

import (
	"crypto/subtle"

	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/infrastructure/config"
)

// AuthPolicy decides whether a presented admin credential grants access.
// The storefront currently runs on a single shared secret; richer policies
// (per-user accounts, OIDC, hardware tokens) can replace StaticSecretPolicy
// without touching the login handler, which only depends on this interface.
type AuthPolicy interface {
	// Authenticate returns nil when the credential is valid, and
	// shared.ErrUnauthorized otherwise.
	Authenticate(credential string) error
}

// StaticSecretPolicy authenticates against a single configured secret.
type StaticSecretPolicy struct {
	secret []byte
}

var _ AuthPolicy = (*StaticSecretPolicy)(nil)

// NewStaticSecretPolicy creates a policy backed by the configured admin secret.
func NewStaticSecretPolicy(cfg config.AdminConfig) *StaticSecretPolicy {
	return &StaticSecretPolicy{secret: []byte(cfg.Secret)}
}

// Authenticate compares the credential in constant time.
func (p *StaticSecretPolicy) Authenticate(credential string) error {
	if len(p.secret) == 0 {
		return shared.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(credential), p.secret) != 1 {
		return shared.ErrUnauthorized
	}
	return nil
}
