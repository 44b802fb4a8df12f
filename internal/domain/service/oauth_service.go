package service

import (
	"context"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
)

// NormalizedIdentity is the common shape every provider's login resolves to
// before identity resolution runs. SubjectID is mandatory; Email and
// DisplayName are best-effort.
type NormalizedIdentity struct {
	Provider    entity.ProviderType
	SubjectID   string // The provider's stable user id ('sub' claim or numeric id as string).
	Email       string
	DisplayName string
}

// OAuthExchanger drives one provider's authorization-code flow: building the
// consent-page URL and exchanging the single-use code for a normalized
// identity.
type OAuthExchanger interface {
	// Provider returns the provider this exchanger serves.
	Provider() entity.ProviderType

	// AuthorizationURL builds the provider consent-page URL carrying the
	// given CSRF state parameter.
	AuthorizationURL(state string) string

	// Exchange completes the code-for-token exchange and fetches or derives
	// the user's subject id, email and display name. The authorization code
	// is single-use: implementations never retry.
	Exchange(ctx context.Context, code string) (*NormalizedIdentity, error)
}

// StateStore issues and validates single-use CSRF state parameters for the
// OAuth redirect flow. States are bound to the provider whose login URL they
// were issued for.
type StateStore interface {
	// Issue generates and records a fresh state parameter for the provider.
	Issue(provider entity.ProviderType) string

	// Consume validates a state parameter and invalidates it. Returns false
	// for unknown, expired or already-used states, and for states issued to
	// a different provider.
	Consume(state string, provider entity.ProviderType) bool
}
