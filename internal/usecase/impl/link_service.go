package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/Felix-Hz/cofr/config"
	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	"github.com/Felix-Hz/cofr/internal/domain/service"
	"github.com/Felix-Hz/cofr/internal/infra/metrics"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

// linkCodeTTL is how long a minted deep-link code stays redeemable.
const linkCodeTTL = 10 * time.Minute

// linkService implements the LinkUsecase interface.
type linkService struct {
	txManager      repository.TransactionManager
	linkRepo       repository.LinkRepository
	widgetVerifier service.WidgetVerifier
	qrcodeService  service.QRCodeService
	collector      *metrics.Collector
	botName        string
	logger         *slog.Logger
}

// LinkServiceParams holds dependencies for linkService, injected by Fx.
type LinkServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	LinkRepo       repository.LinkRepository
	WidgetVerifier service.WidgetVerifier
	QRCodeService  service.QRCodeService
	Collector      *metrics.Collector
	Config         *config.Config
	Logger         *slog.Logger
}

// NewLinkService is the constructor for linkService.
func NewLinkService(params LinkServiceParams) usecase.LinkUsecase {
	botName := ""
	if params.Config != nil && params.Config.Telegram != nil {
		botName = params.Config.Telegram.BotName
	}

	return &linkService{
		txManager:      params.TxManager,
		linkRepo:       params.LinkRepo,
		widgetVerifier: params.WidgetVerifier,
		qrcodeService:  params.QRCodeService,
		collector:      params.Collector,
		botName:        botName,
		logger:         params.Logger,
	}
}

// ListLinks returns the account's provider links, oldest first.
func (srv *linkService) ListLinks(ctx context.Context, accountID uuid.UUID) ([]*entity.ProviderLink, error) {
	links, err := srv.linkRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider links")
	}

	return links, nil
}

// LinkTelegramWidget binds a verified Login Widget payload to the account.
// Unlike the login flow this never creates an account: the caller is already
// authenticated and only gains a new provider credential.
func (srv *linkService) LinkTelegramWidget(ctx context.Context, accountID uuid.UUID, input usecase.TelegramLoginInput) (*entity.ProviderLink, error) {
	if !srv.widgetVerifier.VerifySignature(input.Fields, input.Hash) {
		return nil, domainerrors.ErrInvalidSignature
	}
	if !widgetAuthFresh(input.Fields["auth_date"], time.Now()) {
		return nil, domainerrors.ErrInvalidSignature
	}
	telegramUserID := input.Fields["id"]
	if telegramUserID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("widget payload missing id")
	}

	var created *entity.ProviderLink
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		accountRepo := repos.AccountRepo()
		linkRepo := repos.LinkRepo()

		// The account row lock serializes this check-then-insert against
		// concurrent link and unlink operations on the same account.
		if err := accountRepo.Lock(ctx, accountID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to lock account")
		}

		existing, err := linkRepo.FindByProviderAndSubject(ctx, entity.ProviderTypeTelegram, telegramUserID)
		if err == nil {
			if existing.AccountID == accountID {
				return domainerrors.ErrAlreadyLinkedSameAccount
			}

			return domainerrors.ErrAlreadyLinkedOtherAccount
		}
		if !errors.Is(err, repository.ErrLinkNotFound) {
			return errors.Wrap(err, "failed to look up telegram link")
		}

		if err := rejectProviderOnAccount(ctx, linkRepo, accountID, entity.ProviderTypeTelegram); err != nil {
			return err
		}

		created = &entity.ProviderLink{
			AccountID:      accountID,
			Provider:       entity.ProviderTypeTelegram,
			ProviderUserID: telegramUserID,
			DisplayName:    telegramDisplayName(input.Fields),
		}
		if err := linkRepo.Create(ctx, created); err != nil {
			if errors.Is(err, repository.ErrLinkConflict) {
				return domainerrors.ErrAlreadyLinkedOtherAccount
			}

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.collector.RecordLinkCreated(entity.ProviderTypeTelegram)
	srv.logger.Info("Telegram widget link added", slog.Any("accountID", accountID))

	return created, nil
}

// Unlink removes one of the account's links by its id. The account row lock
// serializes concurrent unlinks so the count check below cannot let two
// removals race past each other and strand the account with zero links.
func (srv *linkService) Unlink(ctx context.Context, accountID uuid.UUID, linkID uuid.UUID) error {
	var removed entity.ProviderType

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		accountRepo := repos.AccountRepo()
		linkRepo := repos.LinkRepo()

		if err := accountRepo.Lock(ctx, accountID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to lock account")
		}

		links, err := linkRepo.ListByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to list provider links")
		}

		var target *entity.ProviderLink
		for _, link := range links {
			if link.ID == linkID {
				target = link

				break
			}
		}
		if target == nil {
			// Covers both unknown ids and links owned by another account.
			return domainerrors.ErrLinkNotFound
		}

		if len(links) <= 1 {
			return domainerrors.ErrLastProviderLink
		}

		removed = target.Provider

		return linkRepo.Delete(ctx, target.ID)
	})
	if err != nil {
		return err
	}

	srv.collector.RecordLinkRemoved(removed)
	srv.logger.Info("Provider link removed",
		slog.Any("accountID", accountID),
		slog.String("provider", string(removed)))

	return nil
}

// InitTelegramDeepLink mints a short-lived code and renders the t.me deep
// link the account holder opens from their phone.
func (srv *linkService) InitTelegramDeepLink(ctx context.Context, accountID uuid.UUID) (*usecase.InitDeepLinkOutput, error) {
	code := newLinkCode()
	expiresAt := time.Now().Add(linkCodeTTL)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		accountRepo := repos.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return err
		}

		// A fresh code displaces any still-pending one.
		account.LinkCode = code
		account.LinkCodeExpires = &expiresAt

		return accountRepo.Update(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	deepLink := "https://t.me/" + srv.botName + "?start=" + code

	qrPNG, err := srv.qrcodeService.GenerateLinkQR(deepLink)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render deep-link QR code")
	}

	srv.logger.Info("Telegram deep link minted", slog.Any("accountID", accountID))

	return &usecase.InitDeepLinkOutput{
		Code:      code,
		DeepLink:  deepLink,
		QRCodePNG: qrPNG,
		ExpiresAt: expiresAt,
	}, nil
}

// ConfirmTelegramDeepLink redeems a deep-link code, binding the Telegram
// sender to the code's account.
func (srv *linkService) ConfirmTelegramDeepLink(ctx context.Context, input usecase.ConfirmDeepLinkInput) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		accountRepo := repos.AccountRepo()
		linkRepo := repos.LinkRepo()

		var err error
		account, err = accountRepo.FindByLinkCode(ctx, input.Code)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrLinkCodeInvalid
			}

			return err
		}

		if err := accountRepo.Lock(ctx, account.ID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrLinkCodeInvalid
			}

			return errors.Wrap(err, "failed to lock account")
		}

		// Re-read under the lock: a concurrent confirmation may have burned
		// the code while this transaction waited.
		account, err = accountRepo.FindByLinkCode(ctx, input.Code)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrLinkCodeInvalid
			}

			return err
		}

		existing, err := linkRepo.FindByProviderAndSubject(ctx, entity.ProviderTypeTelegram, input.TelegramUserID)
		if err == nil {
			if existing.AccountID == account.ID {
				return domainerrors.ErrAlreadyLinkedSameAccount
			}

			return domainerrors.ErrAlreadyLinkedOtherAccount
		}
		if !errors.Is(err, repository.ErrLinkNotFound) {
			return errors.Wrap(err, "failed to look up telegram link")
		}

		if err := rejectProviderOnAccount(ctx, linkRepo, account.ID, entity.ProviderTypeTelegram); err != nil {
			return err
		}

		displayName := input.Username
		if displayName == "" {
			displayName = strings.TrimSpace(input.FirstName + " " + input.LastName)
		}

		if err := linkRepo.Create(ctx, &entity.ProviderLink{
			AccountID:      account.ID,
			Provider:       entity.ProviderTypeTelegram,
			ProviderUserID: input.TelegramUserID,
			DisplayName:    displayName,
		}); err != nil {
			if errors.Is(err, repository.ErrLinkConflict) {
				return domainerrors.ErrAlreadyLinkedOtherAccount
			}

			return err
		}

		// The code is single-use.
		account.LinkCode = ""
		account.LinkCodeExpires = nil

		return accountRepo.Update(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	srv.collector.RecordLinkCreated(entity.ProviderTypeTelegram)
	srv.logger.Info("Telegram deep link confirmed", slog.Any("accountID", account.ID))

	return account, nil
}

// rejectProviderOnAccount refuses an explicit link when the account already
// carries a link for that provider, even one with another subject id.
func rejectProviderOnAccount(ctx context.Context, linkRepo repository.LinkRepository, accountID uuid.UUID, provider entity.ProviderType) error {
	links, err := linkRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return errors.Wrap(err, "failed to list provider links")
	}
	for _, link := range links {
		if link.Provider == provider {
			return domainerrors.ErrAlreadyLinkedSameAccount
		}
	}

	return nil
}

// newLinkCode returns a 32-hex-char random confirmation code.
func newLinkCode() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)

	return hex.EncodeToString(bytes)
}
