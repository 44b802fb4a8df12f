package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
)

// --- Input DTOs ---

// ConfirmDeepLinkInput carries the bot-side confirmation of a pending
// Telegram deep link: the code from /start plus the sender's identity.
type ConfirmDeepLinkInput struct {
	Code           string
	TelegramUserID string
	Username       string
	FirstName      string
	LastName       string
}

// --- Output DTOs ---

// InitDeepLinkOutput describes a freshly minted Telegram deep link.
type InitDeepLinkOutput struct {
	Code      string
	DeepLink  string
	QRCodePNG []byte
	ExpiresAt time.Time
}

// LinkUsecase defines provider-link management for an authenticated account.
type LinkUsecase interface {
	// ListLinks returns the account's provider links, oldest first.
	ListLinks(ctx context.Context, accountID uuid.UUID) ([]*entity.ProviderLink, error)

	// LinkTelegramWidget binds a verified Login Widget payload to the
	// authenticated account, the browser-side alternative to the deep link.
	LinkTelegramWidget(ctx context.Context, accountID uuid.UUID, input TelegramLoginInput) (*entity.ProviderLink, error)

	// Unlink removes one of the account's links by its id. It refuses to
	// remove a link the account does not own, or the last remaining link.
	Unlink(ctx context.Context, accountID uuid.UUID, linkID uuid.UUID) error

	// InitTelegramDeepLink mints a short-lived code the account holder can
	// redeem from Telegram, plus the t.me deep link and its QR image.
	InitTelegramDeepLink(ctx context.Context, accountID uuid.UUID) (*InitDeepLinkOutput, error)

	// ConfirmTelegramDeepLink redeems a deep-link code on behalf of a
	// Telegram user, binding that Telegram identity to the code's account.
	ConfirmTelegramDeepLink(ctx context.Context, input ConfirmDeepLinkInput) (*entity.Account, error)
}
