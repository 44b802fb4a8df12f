package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	"github.com/Felix-Hz/cofr/internal/domain/service"
	"github.com/Felix-Hz/cofr/internal/infra/metrics"
	mockRepo "github.com/Felix-Hz/cofr/internal/mocks/repository"
	mockService "github.com/Felix-Hz/cofr/internal/mocks/service"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

type identityFixture struct {
	txManager  *mockRepo.MockTransactionManager
	verifier   *mockService.MockWidgetVerifier
	exchanger  *mockService.MockOAuthExchanger
	stateStore *mockService.MockStateStore
	tokens     *mockService.MockTokenService
	service    usecase.IdentityUsecase
}

func newIdentityFixture(t *testing.T) *identityFixture {
	t.Helper()

	f := &identityFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		verifier:   mockService.NewMockWidgetVerifier(t),
		exchanger:  mockService.NewMockOAuthExchanger(t),
		stateStore: mockService.NewMockStateStore(t),
		tokens:     mockService.NewMockTokenService(t),
	}
	f.service = NewIdentityService(IdentityServiceParams{
		TxManager:      f.txManager,
		WidgetVerifier: f.verifier,
		Exchangers: map[entity.ProviderType]service.OAuthExchanger{
			entity.ProviderTypeGoogle: f.exchanger,
		},
		StateStore:   f.stateStore,
		TokenService: f.tokens,
		Collector:    metrics.NewCollector(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func freshWidgetFields() map[string]string {
	return map[string]string{
		"id":         "99887766",
		"first_name": "Alice",
		"last_name":  "Liddell",
		"username":   "alice",
		"auth_date":  strconv.FormatInt(time.Now().Unix(), 10),
	}
}

func TestIdentityService_TelegramLogin_ExistingLink(t *testing.T) {
	f := newIdentityFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Username: "alice"}
	link := &entity.ProviderLink{
		ID:             uuid.New(),
		AccountID:      accountID,
		Provider:       entity.ProviderTypeTelegram,
		ProviderUserID: "99887766",
	}

	fields := freshWidgetFields()
	f.verifier.EXPECT().VerifySignature(fields, "deadbeef").Return(true)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockLinkRepo.EXPECT().
				FindByProviderAndSubject(ctx, entity.ProviderTypeTelegram, "99887766").
				Return(link, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	f.tokens.EXPECT().Issue(accountID, "alice").Return("session-token", nil)

	out, err := f.service.TelegramLogin(ctx, usecase.TelegramLoginInput{Fields: fields, Hash: "deadbeef"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", out.Token)
	assert.Equal(t, accountID, out.Account.ID)
}

func TestIdentityService_TelegramLogin_InvalidSignature(t *testing.T) {
	f := newIdentityFixture(t)

	fields := freshWidgetFields()
	f.verifier.EXPECT().VerifySignature(fields, "bad").Return(false)

	_, err := f.service.TelegramLogin(context.Background(), usecase.TelegramLoginInput{Fields: fields, Hash: "bad"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
}

func TestIdentityService_TelegramLogin_StaleAuthDate(t *testing.T) {
	f := newIdentityFixture(t)

	fields := freshWidgetFields()
	fields["auth_date"] = strconv.FormatInt(time.Now().Add(-25*time.Hour).Unix(), 10)
	f.verifier.EXPECT().VerifySignature(fields, "deadbeef").Return(true)

	_, err := f.service.TelegramLogin(context.Background(), usecase.TelegramLoginInput{Fields: fields, Hash: "deadbeef"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
}

func TestIdentityService_TelegramLogin_FirstContactCreatesAccount(t *testing.T) {
	f := newIdentityFixture(t)
	ctx := context.Background()

	fields := freshWidgetFields()
	f.verifier.EXPECT().VerifySignature(fields, "deadbeef").Return(true)

	var createdAccount *entity.Account
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockLinkRepo.EXPECT().
				FindByProviderAndSubject(ctx, entity.ProviderTypeTelegram, "99887766").
				Return(nil, repository.ErrLinkNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
					createdAccount = account
				}).
				Return(nil)
			mockLinkRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ProviderLink")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	f.tokens.EXPECT().Issue(mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string")).Return("session-token", nil)

	out, err := f.service.TelegramLogin(ctx, usecase.TelegramLoginInput{Fields: fields, Hash: "deadbeef"})

	require.NoError(t, err)
	require.NotNil(t, createdAccount)
	// No email available, so the username is synthesized from the provider identity.
	assert.Equal(t, "telegram_99887766", createdAccount.Username)
	assert.Equal(t, "Alice", createdAccount.FirstName)
	assert.Equal(t, "Liddell", createdAccount.LastName)
	assert.Equal(t, entity.DefaultCurrency, createdAccount.PreferredCurrency)
	assert.Equal(t, "session-token", out.Token)
}

func TestIdentityService_OAuthAuthorizeURL(t *testing.T) {
	f := newIdentityFixture(t)

	f.stateStore.EXPECT().Issue(entity.ProviderTypeGoogle).Return("fresh-state")
	f.exchanger.EXPECT().AuthorizationURL("fresh-state").Return("https://accounts.google.com/o/oauth2/v2/auth?state=fresh-state")

	url, err := f.service.OAuthAuthorizeURL(context.Background(), entity.ProviderTypeGoogle)

	require.NoError(t, err)
	assert.Contains(t, url, "state=fresh-state")
}

func TestIdentityService_OAuthAuthorizeURL_UnknownProvider(t *testing.T) {
	f := newIdentityFixture(t)

	_, err := f.service.OAuthAuthorizeURL(context.Background(), entity.ProviderTypeGithub)

	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConfigured)
}

func TestIdentityService_OAuthCallback_InvalidState(t *testing.T) {
	f := newIdentityFixture(t)

	f.stateStore.EXPECT().Consume("stale", entity.ProviderTypeGoogle).Return(false)

	_, err := f.service.OAuthCallback(context.Background(), usecase.OAuthCallbackInput{
		Provider: entity.ProviderTypeGoogle,
		Code:     "auth-code",
		State:    "stale",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestIdentityService_OAuthCallback_ExchangeFails(t *testing.T) {
	f := newIdentityFixture(t)
	ctx := context.Background()

	f.stateStore.EXPECT().Consume("good-state", entity.ProviderTypeGoogle).Return(true)
	f.exchanger.EXPECT().Exchange(ctx, "auth-code").Return(nil, assert.AnError)

	_, err := f.service.OAuthCallback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ProviderTypeGoogle,
		Code:     "auth-code",
		State:    "good-state",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchangeFailed)
}

func TestIdentityService_OAuthCallback_EmailAutoLink(t *testing.T) {
	f := newIdentityFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Username: "alice@example.com"}
	emailLink := &entity.ProviderLink{
		ID:        uuid.New(),
		AccountID: accountID,
		Provider:  entity.ProviderTypeGithub,
		Email:     "alice@example.com",
	}

	f.stateStore.EXPECT().Consume("good-state", entity.ProviderTypeGoogle).Return(true)
	f.exchanger.EXPECT().Exchange(ctx, "auth-code").Return(&service.NormalizedIdentity{
		Provider:  entity.ProviderTypeGoogle,
		SubjectID: "google-sub-1",
		Email:     "alice@example.com",
	}, nil)

	var newLink *entity.ProviderLink
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockLinkRepo.EXPECT().
				FindByProviderAndSubject(ctx, entity.ProviderTypeGoogle, "google-sub-1").
				Return(nil, repository.ErrLinkNotFound)
			mockLinkRepo.EXPECT().
				FindByEmail(ctx, "alice@example.com").
				Return(emailLink, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockLinkRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ProviderLink")).
				Run(func(ctx context.Context, link *entity.ProviderLink) {
					newLink = link
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	f.tokens.EXPECT().Issue(accountID, "alice@example.com").Return("session-token", nil)

	out, err := f.service.OAuthCallback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ProviderTypeGoogle,
		Code:     "auth-code",
		State:    "good-state",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, out.Account.ID)
	require.NotNil(t, newLink)
	// The new provider attaches to the account already holding the email.
	assert.Equal(t, accountID, newLink.AccountID)
	assert.Equal(t, entity.ProviderTypeGoogle, newLink.Provider)
}

func TestIdentityService_OAuthCallback_ConflictRetryFindsWinner(t *testing.T) {
	f := newIdentityFixture(t)
	ctx := context.Background()

	winnerID := uuid.New()
	winner := &entity.Account{ID: winnerID, Username: "bob@example.com"}
	winnerLink := &entity.ProviderLink{
		ID:             uuid.New(),
		AccountID:      winnerID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: "google-sub-2",
	}

	f.stateStore.EXPECT().Consume("good-state", entity.ProviderTypeGoogle).Return(true)
	f.exchanger.EXPECT().Exchange(ctx, "auth-code").Return(&service.NormalizedIdentity{
		Provider:  entity.ProviderTypeGoogle,
		SubjectID: "google-sub-2",
		Email:     "bob@example.com",
	}, nil)

	// First attempt loses the insert race.
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrLinkConflict).
		Once()

	// The retry finds the winner's link.
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)

			mockLinkRepo.EXPECT().
				FindByProviderAndSubject(ctx, entity.ProviderTypeGoogle, "google-sub-2").
				Return(winnerLink, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, winnerID).Return(winner, nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	f.tokens.EXPECT().Issue(winnerID, "bob@example.com").Return("session-token", nil)

	out, err := f.service.OAuthCallback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ProviderTypeGoogle,
		Code:     "auth-code",
		State:    "good-state",
	})

	require.NoError(t, err)
	assert.Equal(t, winnerID, out.Account.ID)
}

func TestWidgetAuthFresh(t *testing.T) {
	now := time.Now()

	assert.True(t, widgetAuthFresh(strconv.FormatInt(now.Unix(), 10), now))
	assert.True(t, widgetAuthFresh(strconv.FormatInt(now.Add(-23*time.Hour).Unix(), 10), now))
	assert.False(t, widgetAuthFresh(strconv.FormatInt(now.Add(-25*time.Hour).Unix(), 10), now))
	assert.False(t, widgetAuthFresh(strconv.FormatInt(now.Add(time.Hour).Unix(), 10), now))
	assert.False(t, widgetAuthFresh("", now))
	assert.False(t, widgetAuthFresh("not-a-number", now))
}
