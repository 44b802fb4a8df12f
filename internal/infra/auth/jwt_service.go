// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Felix-Hz/cofr/config"
	"github.com/Felix-Hz/cofr/internal/domain/service"
)

// sessionTTL is the lifetime of an issued session token.
const sessionTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    sessionTTL,
	}, nil
}

// Issue creates a signed session token for a given account.
func (s *jwtService) Issue(accountID uuid.UUID, label string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      accountID.String(),    // Subject (who the token is for)
		"username": label,                 // Display label carried for convenience
		"iat":      now.Unix(),            // Issued At
		"exp":      now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a session token. It reports ok=false for any
// failure: bad signature, expiry, malformed claims. Callers never learn which.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, false
	}
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, false
	}

	label, _ := claims["username"].(string)

	return &service.SessionClaims{
		AccountID: accountID,
		Label:     label,
	}, true
}
