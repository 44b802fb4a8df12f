package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	linkRepo    repository.LinkRepository
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	LinkRepo    repository.LinkRepository
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		linkRepo:    params.LinkRepo,
		logger:      params.Logger,
	}
}

// GetProfile returns the account with its provider links loaded.
func (srv *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	links, err := srv.linkRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load provider links")
	}
	account.Links = make([]entity.ProviderLink, 0, len(links))
	for _, link := range links {
		account.Links = append(account.Links, *link)
	}

	return account, nil
}

// UpdateProfile applies a partial update and returns the updated account.
func (srv *accountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		accountRepo := repos.AccountRepo()

		var err error
		account, err = accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return err
		}

		if input.FirstName != nil {
			account.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			account.LastName = *input.LastName
		}
		if input.Username != nil {
			account.Username = *input.Username
		}
		if input.PreferredCurrency != nil {
			account.PreferredCurrency = *input.PreferredCurrency
		}

		return accountRepo.Update(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Profile updated", slog.Any("accountID", accountID))

	return account, nil
}
