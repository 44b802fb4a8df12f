package service

import (
	"github.com/google/uuid"
)

// SessionClaims is the identity asserted by a verified session token.
type SessionClaims struct {
	AccountID uuid.UUID // The internal account the token was issued for.
	Label     string    // Display label captured at issuance, e.g. the username.
}

// TokenService defines the interface for issuing and verifying the signed
// session credential used by all other API surfaces to identify the caller.
type TokenService interface {
	// Issue mints a signed token embedding the account id and display label,
	// valid for a fixed window from issuance.
	Issue(accountID uuid.UUID, label string) (string, error)

	// Verify checks signature and expiry. It reports ok=false on ANY failure
	// (expired, tampered, malformed) without distinguishing the cause, so the
	// caller cannot become a timing or error oracle.
	Verify(token string) (*SessionClaims, bool)
}
