// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
)

// --- Input DTOs ---

// TelegramLoginInput carries the raw Telegram Login Widget payload. Fields
// holds every widget field except the hash, which travels separately.
type TelegramLoginInput struct {
	Fields map[string]string
	Hash   string
}

// OAuthCallbackInput carries the provider redirect parameters.
type OAuthCallbackInput struct {
	Provider entity.ProviderType
	Code     string
	State    string
}

// --- Output DTOs ---

// LoginOutput returns the session token and resolved account after any login.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// IdentityUsecase defines the login flows: widget verification, OAuth code
// exchange, identity resolution and session issuance.
type IdentityUsecase interface {
	// TelegramLogin verifies a Login Widget payload, resolves it to an
	// account (creating one on first contact) and issues a session token.
	TelegramLogin(ctx context.Context, input TelegramLoginInput) (*LoginOutput, error)

	// OAuthAuthorizeURL issues a CSRF state and builds the provider's
	// consent-page URL to redirect the browser to.
	OAuthAuthorizeURL(ctx context.Context, provider entity.ProviderType) (string, error)

	// OAuthCallback consumes the state, exchanges the authorization code,
	// resolves the identity and issues a session token.
	OAuthCallback(ctx context.Context, input OAuthCallbackInput) (*LoginOutput, error)
}
