package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"

	"github.com/dmitrymomot/jobboard/core"
)

// Identity is the authenticated subject carried by a token.
type Identity struct {
	Username string
	IsAdmin  bool
	IssuedAt time.Time
}

// Claims is the token payload.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	gojwt.RegisteredClaims
}

// Service issues and verifies HS256 tokens. It is safe for concurrent use;
// the signing key never changes after New.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTTL sets the token lifetime. Zero issues tokens without an expiry.
func WithTTL(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.ttl = d
		}
	}
}

// WithClock overrides the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a token service for the given signing key.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	key := make([]byte, len(signingKey))
	copy(key, signingKey)

	s := &Service{
		signingKey: key,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewFromString creates a token service from a string signing key.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// Issue signs a token for id. IssuedAt is always set to the current time.
func (s *Service) Issue(id Identity) (string, error) {
	if id.Username == "" {
		return "", ErrMissingUsername
	}

	now := s.now()
	claims := Claims{
		Username: id.Username,
		IsAdmin:  id.IsAdmin,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt: gojwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = gojwt.NewNumericDate(now.Add(s.ttl))
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Verify checks the token signature and expiry and returns the identity it
// carries.
func (s *Service) Verify(token string) (Identity, error) {
	if token == "" {
		return Identity{}, unauthenticated(ErrInvalidToken)
	}

	var claims Claims
	_, err := gojwt.ParseWithClaims(token, &claims, s.keyFunc, gojwt.WithoutClaimsValidation())
	if err != nil {
		return Identity{}, unauthenticated(classify(err))
	}

	if !claims.VerifyExpiresAt(s.now(), false) {
		return Identity{}, unauthenticated(ErrExpiredToken)
	}
	if claims.Username == "" {
		return Identity{}, unauthenticated(ErrInvalidClaims)
	}

	id := Identity{
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}

	return id, nil
}

func (s *Service) keyFunc(t *gojwt.Token) (any, error) {
	if t.Method != gojwt.SigningMethodHS256 {
		return nil, ErrUnexpectedSigningMethod
	}
	return s.signingKey, nil
}

// classify maps library parse errors onto package sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrUnexpectedSigningMethod):
		return ErrUnexpectedSigningMethod
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, gojwt.ErrTokenUnverifiable):
		return ErrUnexpectedSigningMethod
	default:
		return ErrInvalidToken
	}
}

func unauthenticated(err error) error {
	return errors.Join(err, core.ErrUnauthenticated)
}
