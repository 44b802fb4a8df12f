package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an external identity issuer.
type ProviderType string

const (
	ProviderTypeTelegram ProviderType = "telegram"
	ProviderTypeGoogle   ProviderType = "google"
	ProviderTypeGithub   ProviderType = "github"
	ProviderTypeApple    ProviderType = "apple"
)

// KnownProviders lists every provider the system can authenticate against.
var KnownProviders = []ProviderType{
	ProviderTypeTelegram,
	ProviderTypeGoogle,
	ProviderTypeGithub,
	ProviderTypeApple,
}

// Valid reports whether the provider is one the system knows about.
func (p ProviderType) Valid() bool {
	switch p {
	case ProviderTypeTelegram, ProviderTypeGoogle, ProviderTypeGithub, ProviderTypeApple:
		return true
	}

	return false
}

// ProviderLink is one external credential bound to exactly one Account.
// The pair (Provider, ProviderUserID) is globally unique: no two accounts
// may claim the same external identity.
type ProviderLink struct {
	ID             uuid.UUID    // The unique ID for this specific link record.
	AccountID      uuid.UUID    // The Account owning this credential.
	Provider       ProviderType // The external identity issuer.
	ProviderUserID string       // The provider's own stable subject id, opaque outside that provider.
	Email          string       // Email asserted by the provider, may be empty.
	DisplayName    string       // Display name asserted by the provider, may be empty.
	CreatedAt      time.Time
}
