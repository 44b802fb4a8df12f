package repository

import (
	"context"
	"errors"

	"github.com/Felix-Hz/cofr/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for provider-link persistence. These let the
// application layer branch on outcomes without knowing database errors.
var (
	// ErrLinkNotFound is returned when a provider link is not found.
	ErrLinkNotFound = errors.New("provider link not found")
	// ErrLinkConflict is returned when creating a link that would violate the
	// (provider, provider_user_id) uniqueness constraint.
	ErrLinkConflict = errors.New("provider link already exists")
)

// LinkRepository defines the standard operations for provider-link persistence.
type LinkRepository interface {
	// Create persists a new provider link. Returns ErrLinkConflict when the
	// (provider, provider_user_id) pair is already claimed.
	Create(ctx context.Context, link *entity.ProviderLink) error

	// FindByProviderAndSubject retrieves a link by its provider and the
	// provider-issued subject id.
	FindByProviderAndSubject(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.ProviderLink, error)

	// FindByEmail retrieves any link carrying the given email, regardless of
	// provider. Used by the login auto-link path.
	FindByEmail(ctx context.Context, email string) (*entity.ProviderLink, error)

	// FindByID retrieves a link by its own id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProviderLink, error)

	// ListByAccountID returns all links owned by the given account.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.ProviderLink, error)

	// CountByAccountID returns how many links the account currently holds.
	CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)

	// Delete removes a link by its id. Returns ErrLinkNotFound when no row
	// was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
