package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Felix-Hz/cofr/config"
	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	"github.com/Felix-Hz/cofr/internal/infra/metrics"
	mockRepo "github.com/Felix-Hz/cofr/internal/mocks/repository"
	mockService "github.com/Felix-Hz/cofr/internal/mocks/service"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

type linkFixture struct {
	txManager *mockRepo.MockTransactionManager
	linkRepo  *mockRepo.MockLinkRepository
	verifier  *mockService.MockWidgetVerifier
	qrcode    *mockService.MockQRCodeService
	service   usecase.LinkUsecase
}

func newLinkFixture(t *testing.T) *linkFixture {
	t.Helper()

	f := &linkFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		linkRepo:  mockRepo.NewMockLinkRepository(t),
		verifier:  mockService.NewMockWidgetVerifier(t),
		qrcode:    mockService.NewMockQRCodeService(t),
	}
	f.service = NewLinkService(LinkServiceParams{
		TxManager:      f.txManager,
		LinkRepo:       f.linkRepo,
		WidgetVerifier: f.verifier,
		QRCodeService:  f.qrcode,
		Collector:      metrics.NewCollector(),
		Config: &config.Config{
			Telegram: &config.TelegramConfig{BotName: "cofr_test_bot"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func TestLinkService_ListLinks(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	links := []*entity.ProviderLink{
		{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeTelegram},
		{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeGoogle},
	}
	f.linkRepo.EXPECT().ListByAccountID(ctx, accountID).Return(links, nil)

	got, err := f.service.ListLinks(ctx, accountID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLinkService_Unlink(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	telegramLink := &entity.ProviderLink{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeTelegram}
	googleLink := &entity.ProviderLink{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeGoogle}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockAccountRepo.EXPECT().Lock(ctx, accountID).Return(nil)
			mockLinkRepo.EXPECT().
				ListByAccountID(ctx, accountID).
				Return([]*entity.ProviderLink{telegramLink, googleLink}, nil)
			mockLinkRepo.EXPECT().Delete(ctx, googleLink.ID).Return(nil)

			assert.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := f.service.Unlink(ctx, accountID, googleLink.ID)

	assert.NoError(t, err)
}

func TestLinkService_Unlink_LastLink(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	onlyLink := &entity.ProviderLink{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeTelegram}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockAccountRepo.EXPECT().Lock(ctx, accountID).Return(nil)
			mockLinkRepo.EXPECT().
				ListByAccountID(ctx, accountID).
				Return([]*entity.ProviderLink{onlyLink}, nil)

			assert.ErrorIs(t, fn(mockFactory), domainerrors.ErrLastProviderLink)
		}).
		Return(domainerrors.ErrLastProviderLink)

	err := f.service.Unlink(ctx, accountID, onlyLink.ID)

	assert.ErrorIs(t, err, domainerrors.ErrLastProviderLink)
}

func TestLinkService_Unlink_NotOwned(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	telegramLink := &entity.ProviderLink{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeTelegram}
	foreignLinkID := uuid.New()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockAccountRepo.EXPECT().Lock(ctx, accountID).Return(nil)
			mockLinkRepo.EXPECT().
				ListByAccountID(ctx, accountID).
				Return([]*entity.ProviderLink{telegramLink}, nil)

			assert.ErrorIs(t, fn(mockFactory), domainerrors.ErrLinkNotFound)
		}).
		Return(domainerrors.ErrLinkNotFound)

	err := f.service.Unlink(ctx, accountID, foreignLinkID)

	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}

func TestLinkService_InitTelegramDeepLink(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Username: "alice"}

	var storedCode string
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockAccountRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					storedCode = account.LinkCode
					require.NotNil(t, account.LinkCodeExpires)
				}).
				Return(nil)

			assert.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	f.qrcode.EXPECT().
		GenerateLinkQR(mock.AnythingOfType("string")).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	out, err := f.service.InitTelegramDeepLink(ctx, accountID)

	require.NoError(t, err)
	assert.Len(t, out.Code, 32)
	assert.Equal(t, storedCode, out.Code)
	assert.Equal(t, "https://t.me/cofr_test_bot?start="+out.Code, out.DeepLink)
	assert.NotEmpty(t, out.QRCodePNG)
	assert.WithinDuration(t, time.Now().Add(linkCodeTTL), out.ExpiresAt, time.Minute)
}

func TestLinkService_ConfirmTelegramDeepLink(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	expiresAt := time.Now().Add(5 * time.Minute)
	pending := &entity.Account{
		ID:              accountID,
		Username:        "alice",
		LinkCode:        "c0de",
		LinkCodeExpires: &expiresAt,
	}

	var createdLink *entity.ProviderLink
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockAccountRepo.EXPECT().FindByLinkCode(ctx, "c0de").Return(pending, nil).Twice()
			mockAccountRepo.EXPECT().Lock(ctx, accountID).Return(nil)
			mockLinkRepo.EXPECT().
				FindByProviderAndSubject(ctx, entity.ProviderTypeTelegram, "424242").
				Return(nil, repository.ErrLinkNotFound)
			mockLinkRepo.EXPECT().
				ListByAccountID(ctx, accountID).
				Return([]*entity.ProviderLink{
					{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeGoogle},
				}, nil)
			mockLinkRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ProviderLink")).
				Run(func(ctx context.Context, link *entity.ProviderLink) {
					createdLink = link
				}).
				Return(nil)
			mockAccountRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					// The code is burned on redemption.
					assert.Empty(t, account.LinkCode)
					assert.Nil(t, account.LinkCodeExpires)
				}).
				Return(nil)

			assert.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	account, err := f.service.ConfirmTelegramDeepLink(ctx, usecase.ConfirmDeepLinkInput{
		Code:           "c0de",
		TelegramUserID: "424242",
		Username:       "alice_tg",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	require.NotNil(t, createdLink)
	assert.Equal(t, accountID, createdLink.AccountID)
	assert.Equal(t, "424242", createdLink.ProviderUserID)
	assert.Equal(t, "alice_tg", createdLink.DisplayName)
}

func TestLinkService_ConfirmTelegramDeepLink_CodeBurnedWhileWaiting(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	expiresAt := time.Now().Add(5 * time.Minute)
	pending := &entity.Account{ID: accountID, LinkCode: "c0de", LinkCodeExpires: &expiresAt}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			// A concurrent confirmation redeemed the code between the first
			// lookup and the lock, so the locked re-read comes back empty.
			mockAccountRepo.EXPECT().FindByLinkCode(ctx, "c0de").Return(pending, nil).Once()
			mockAccountRepo.EXPECT().Lock(ctx, accountID).Return(nil)
			mockAccountRepo.EXPECT().
				FindByLinkCode(ctx, "c0de").
				Return(nil, repository.ErrAccountNotFound).
				Once()

			assert.ErrorIs(t, fn(mockFactory), domainerrors.ErrLinkCodeInvalid)
		}).
		Return(domainerrors.ErrLinkCodeInvalid)

	_, err := f.service.ConfirmTelegramDeepLink(ctx, usecase.ConfirmDeepLinkInput{
		Code:           "c0de",
		TelegramUserID: "555000",
	})

	assert.ErrorIs(t, err, domainerrors.ErrLinkCodeInvalid)
}

func TestLinkService_LinkTelegramWidget(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	fields := freshWidgetFields()

	f.verifier.EXPECT().VerifySignature(fields, "deadbeef").Return(true)

	var createdLink *entity.ProviderLink
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockAccountRepo.EXPECT().Lock(ctx, accountID).Return(nil)
			mockLinkRepo.EXPECT().
				FindByProviderAndSubject(ctx, entity.ProviderTypeTelegram, "99887766").
				Return(nil, repository.ErrLinkNotFound)
			mockLinkRepo.EXPECT().
				ListByAccountID(ctx, accountID).
				Return([]*entity.ProviderLink{
					{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeGoogle},
				}, nil)
			mockLinkRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ProviderLink")).
				Run(func(ctx context.Context, link *entity.ProviderLink) {
					createdLink = link
				}).
				Return(nil)

			assert.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	link, err := f.service.LinkTelegramWidget(ctx, accountID, usecase.TelegramLoginInput{
		Fields: fields,
		Hash:   "deadbeef",
	})

	require.NoError(t, err)
	require.NotNil(t, createdLink)
	assert.Equal(t, accountID, link.AccountID)
	assert.Equal(t, "99887766", link.ProviderUserID)
	assert.Equal(t, "alice", link.DisplayName)
}

func TestLinkService_ConfirmTelegramDeepLink_ProviderAlreadyOnAccount(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	expiresAt := time.Now().Add(5 * time.Minute)
	pending := &entity.Account{ID: accountID, LinkCode: "c0de", LinkCodeExpires: &expiresAt}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockAccountRepo.EXPECT().FindByLinkCode(ctx, "c0de").Return(pending, nil).Twice()
			mockAccountRepo.EXPECT().Lock(ctx, accountID).Return(nil)
			mockLinkRepo.EXPECT().
				FindByProviderAndSubject(ctx, entity.ProviderTypeTelegram, "555000").
				Return(nil, repository.ErrLinkNotFound)
			// The account already holds a telegram link under another subject.
			mockLinkRepo.EXPECT().
				ListByAccountID(ctx, accountID).
				Return([]*entity.ProviderLink{
					{ID: uuid.New(), AccountID: accountID, Provider: entity.ProviderTypeTelegram, ProviderUserID: "424242"},
				}, nil)

			assert.ErrorIs(t, fn(mockFactory), domainerrors.ErrAlreadyLinkedSameAccount)
		}).
		Return(domainerrors.ErrAlreadyLinkedSameAccount)

	_, err := f.service.ConfirmTelegramDeepLink(ctx, usecase.ConfirmDeepLinkInput{
		Code:           "c0de",
		TelegramUserID: "555000",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyLinkedSameAccount)
}

func TestLinkService_LinkTelegramWidget_BadSignature(t *testing.T) {
	f := newLinkFixture(t)

	fields := freshWidgetFields()
	f.verifier.EXPECT().VerifySignature(fields, "bad").Return(false)

	_, err := f.service.LinkTelegramWidget(context.Background(), uuid.New(), usecase.TelegramLoginInput{
		Fields: fields,
		Hash:   "bad",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
}

func TestLinkService_ConfirmTelegramDeepLink_UnknownCode(t *testing.T) {
	f := newLinkFixture(t)
	ctx := context.Background()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockAccountRepo.EXPECT().
				FindByLinkCode(ctx, "expired").
				Return(nil, repository.ErrAccountNotFound)

			assert.ErrorIs(t, fn(mockFactory), domainerrors.ErrLinkCodeInvalid)
		}).
		Return(domainerrors.ErrLinkCodeInvalid)

	_, err := f.service.ConfirmTelegramDeepLink(ctx, usecase.ConfirmDeepLinkInput{
		Code:           "expired",
		TelegramUserID: "424242",
	})

	assert.ErrorIs(t, err, domainerrors.ErrLinkCodeInvalid)
}

func TestLinkService_ConfirmTelegramDeepLink_AlreadyLinked(t *testing.T) {
	accountID := uuid.New()
	otherID := uuid.New()

	cases := []struct {
		name        string
		linkedTo    uuid.UUID
		expectedErr error
	}{
		{"SameAccount", accountID, domainerrors.ErrAlreadyLinkedSameAccount},
		{"OtherAccount", otherID, domainerrors.ErrAlreadyLinkedOtherAccount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newLinkFixture(t)
			ctx := context.Background()

			expiresAt := time.Now().Add(5 * time.Minute)
			pending := &entity.Account{ID: accountID, LinkCode: "c0de", LinkCodeExpires: &expiresAt}
			existing := &entity.ProviderLink{
				ID:             uuid.New(),
				AccountID:      tc.linkedTo,
				Provider:       entity.ProviderTypeTelegram,
				ProviderUserID: "424242",
			}

			f.txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockAccountRepo := mockRepo.NewMockAccountRepository(t)
					mockLinkRepo := mockRepo.NewMockLinkRepository(t)

					mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
					mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

					mockAccountRepo.EXPECT().FindByLinkCode(ctx, "c0de").Return(pending, nil).Twice()
					mockAccountRepo.EXPECT().Lock(ctx, accountID).Return(nil)
					mockLinkRepo.EXPECT().
						FindByProviderAndSubject(ctx, entity.ProviderTypeTelegram, "424242").
						Return(existing, nil)

					assert.ErrorIs(t, fn(mockFactory), tc.expectedErr)
				}).
				Return(tc.expectedErr)

			_, err := f.service.ConfirmTelegramDeepLink(ctx, usecase.ConfirmDeepLinkInput{
				Code:           "c0de",
				TelegramUserID: "424242",
			})

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
