package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
)

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	FirstName         *string
	LastName          *string
	Username          *string
	PreferredCurrency *string
}

// AccountUsecase defines profile operations for an authenticated account.
type AccountUsecase interface {
	// GetProfile returns the account with its provider links loaded.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// UpdateProfile applies a partial update and returns the updated account.
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input UpdateProfileInput) (*entity.Account, error)
}
