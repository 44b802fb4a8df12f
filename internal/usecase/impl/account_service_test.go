package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	mockRepo "github.com/Felix-Hz/cofr/internal/mocks/repository"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

type accountFixture struct {
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	linkRepo    *mockRepo.MockLinkRepository
	service     usecase.AccountUsecase
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()

	f := &accountFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		linkRepo:    mockRepo.NewMockLinkRepository(t),
	}
	f.service = NewAccountService(AccountServiceParams{
		TxManager:   f.txManager,
		AccountRepo: f.accountRepo,
		LinkRepo:    f.linkRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func TestAccountService_GetProfile(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Username: "alice", PreferredCurrency: "NZD"}
	links := []*entity.ProviderLink{
		{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeTelegram},
		{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeGoogle},
	}

	f.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	f.linkRepo.EXPECT().ListByAccountID(ctx, accountID).Return(links, nil)

	got, err := f.service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	require.Len(t, got.Links, 2)
	assert.Equal(t, entity.ProviderTypeTelegram, got.Links[0].Provider)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	f.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	_, err := f.service.GetProfile(ctx, accountID)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	stored := &entity.Account{
		ID:                accountID,
		FirstName:         "Alice",
		LastName:          "Liddell",
		Username:          "alice",
		PreferredCurrency: "NZD",
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(stored, nil)
			mockAccountRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Account")).
				Return(nil)

			assert.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	currency := "EUR"
	firstName := "Alicia"
	got, err := f.service.UpdateProfile(ctx, accountID, usecase.UpdateProfileInput{
		FirstName:         &firstName,
		PreferredCurrency: &currency,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.FirstName)
	assert.Equal(t, "EUR", got.PreferredCurrency)
	// Fields not in the patch keep their values.
	assert.Equal(t, "Liddell", got.LastName)
	assert.Equal(t, "alice", got.Username)
}

func TestAccountService_UpdateProfile_NotFound(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	accountID := uuid.New()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

			assert.ErrorIs(t, fn(mockFactory), domainerrors.ErrAccountNotFound)
		}).
		Return(domainerrors.ErrAccountNotFound)

	username := "ghost"
	_, err := f.service.UpdateProfile(ctx, accountID, usecase.UpdateProfileInput{Username: &username})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
