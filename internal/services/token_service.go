package services

import (
	"errors"
	"strings"
	"time"

	"resellx/internal/repos"

	"github.com/golang-jwt/jwt/v5"
)

const TokenTTL = 7 * time.Hour

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed identity tokens that
// gate the seller/user routes. Tokens carry only the email; role is
// always resolved live against the identity store.
type TokenService struct {
	Secret     []byte
	TTL        time.Duration
	Identities *repos.IdentityRepo
}

func NewTokenService(secret string, identities *repos.IdentityRepo) *TokenService {
	return &TokenService{Secret: []byte(secret), TTL: TokenTTL, Identities: identities}
}

// Issue signs a token for an already-registered email. Unregistered
// emails get ErrNotFound; registration must happen first.
func (s *TokenService) Issue(email string) (string, error) {
	id, err := s.Identities.ByEmail(email)
	if err != nil {
		return "", err
	}
	if id == nil {
		return "", ErrNotFound
	}

	now := time.Now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Verify validates signature and expiry and returns the embedded
// email. Expiry is reported distinctly for logging, but handlers must
// collapse both failures into one forbidden response.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}

// ExtractBearer pulls the token out of an "Authorization: Bearer x"
// header. Only a fully absent header is a missing credential; a
// malformed header passes through and fails Verify instead, keeping
// the 401/403 split of the two failure classes.
func (s *TokenService) ExtractBearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissingCredential
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) < 2 {
		return "", nil
	}
	return parts[1], nil
}
