// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	"github.com/Felix-Hz/cofr/internal/domain/service"
	"github.com/Felix-Hz/cofr/internal/infra/metrics"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

// widgetAuthMaxAge is how old a Login Widget payload may be before it is
// rejected as replayed.
const widgetAuthMaxAge = 24 * time.Hour

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager      repository.TransactionManager
	widgetVerifier service.WidgetVerifier
	exchangers     map[entity.ProviderType]service.OAuthExchanger
	stateStore     service.StateStore
	tokenService   service.TokenService
	collector      *metrics.Collector
	logger         *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	WidgetVerifier service.WidgetVerifier
	Exchangers     map[entity.ProviderType]service.OAuthExchanger
	StateStore     service.StateStore
	TokenService   service.TokenService
	Collector      *metrics.Collector
	Logger         *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:      params.TxManager,
		widgetVerifier: params.WidgetVerifier,
		exchangers:     params.Exchangers,
		stateStore:     params.StateStore,
		tokenService:   params.TokenService,
		collector:      params.Collector,
		logger:         params.Logger,
	}
}

// TelegramLogin verifies a Login Widget payload, resolves the sender to an
// account and issues a session token.
func (srv *identityService) TelegramLogin(ctx context.Context, input usecase.TelegramLoginInput) (*usecase.LoginOutput, error) {
	if !srv.widgetVerifier.VerifySignature(input.Fields, input.Hash) {
		srv.logger.Warn("Telegram widget signature rejected")
		srv.collector.RecordLoginFailure(entity.ProviderTypeTelegram, "invalid_signature")

		return nil, domainerrors.ErrInvalidSignature
	}

	if !widgetAuthFresh(input.Fields["auth_date"], time.Now()) {
		srv.logger.Warn("Telegram widget payload too old")
		srv.collector.RecordLoginFailure(entity.ProviderTypeTelegram, "stale_auth_date")

		return nil, domainerrors.ErrInvalidSignature
	}

	subjectID := input.Fields["id"]
	if subjectID == "" {
		srv.collector.RecordLoginFailure(entity.ProviderTypeTelegram, "missing_id")

		return nil, domainerrors.ErrValidationFailed.WrapMessage("widget payload missing id")
	}

	identity := &service.NormalizedIdentity{
		Provider:    entity.ProviderTypeTelegram,
		SubjectID:   subjectID,
		DisplayName: telegramDisplayName(input.Fields),
	}

	return srv.login(ctx, identity, telegramProfile(input.Fields))
}

// OAuthAuthorizeURL issues a CSRF state and builds the consent-page URL.
func (srv *identityService) OAuthAuthorizeURL(_ context.Context, provider entity.ProviderType) (string, error) {
	exchanger, ok := srv.exchangers[provider]
	if !ok {
		return "", domainerrors.ErrProviderNotConfigured
	}

	return exchanger.AuthorizationURL(srv.stateStore.Issue(provider)), nil
}

// OAuthCallback consumes the state, exchanges the code and logs the caller in.
func (srv *identityService) OAuthCallback(ctx context.Context, input usecase.OAuthCallbackInput) (*usecase.LoginOutput, error) {
	exchanger, ok := srv.exchangers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrProviderNotConfigured
	}

	if !srv.stateStore.Consume(input.State, input.Provider) {
		srv.collector.RecordLoginFailure(input.Provider, "invalid_state")

		return nil, domainerrors.ErrOAuthStateInvalid
	}

	identity, err := exchanger.Exchange(ctx, input.Code)
	if err != nil {
		srv.logger.Error("OAuth code exchange failed",
			slog.String("provider", string(input.Provider)),
			slog.Any("error", err))
		srv.collector.RecordLoginFailure(input.Provider, "exchange_failed")

		return nil, domainerrors.ErrOAuthExchangeFailed.WrapMessage(err.Error())
	}
	if identity.SubjectID == "" {
		srv.collector.RecordLoginFailure(input.Provider, "identity_incomplete")

		return nil, domainerrors.ErrIdentityIncomplete
	}

	return srv.login(ctx, identity, profileSeed{})
}

// profileSeed carries optional profile fields captured at first login.
type profileSeed struct {
	FirstName string
	LastName  string
}

// login resolves the identity to an account and issues a session token.
func (srv *identityService) login(ctx context.Context, identity *service.NormalizedIdentity, seed profileSeed) (*usecase.LoginOutput, error) {
	account, created, err := srv.resolve(ctx, identity, seed)
	if err != nil {
		srv.logger.Error("Identity resolution failed",
			slog.String("provider", string(identity.Provider)),
			slog.Any("error", err))
		srv.collector.RecordLoginFailure(identity.Provider, "resolution_failed")

		return nil, err
	}

	token, err := srv.tokenService.Issue(account.ID, account.DisplayName())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	if created {
		srv.collector.RecordAccountCreated()
	}
	srv.collector.RecordLoginSuccess(identity.Provider)
	srv.logger.Info("Login succeeded",
		slog.String("provider", string(identity.Provider)),
		slog.Any("accountID", account.ID),
		slog.Bool("newAccount", created))

	return &usecase.LoginOutput{Token: token, Account: account}, nil
}

// resolve maps a provider identity to exactly one account:
//  1. an existing link for (provider, subject) wins outright,
//  2. otherwise a verified email shared with an existing link attaches the
//     new provider to that link's account,
//  3. otherwise a new account is created.
//
// A concurrent login racing on the same fresh identity loses the link insert
// to the unique index; the loser retries once and lands on the winner's
// account.
func (srv *identityService) resolve(ctx context.Context, identity *service.NormalizedIdentity, seed profileSeed) (*entity.Account, bool, error) {
	var (
		account *entity.Account
		created bool
	)

	for attempt := 0; attempt < 2; attempt++ {
		account = nil
		created = false

		err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			accountRepo := repos.AccountRepo()
			linkRepo := repos.LinkRepo()

			// Step 1: exact provider identity match.
			link, err := linkRepo.FindByProviderAndSubject(ctx, identity.Provider, identity.SubjectID)
			if err == nil {
				account, err = accountRepo.FindByID(ctx, link.AccountID)

				return err
			}
			if !errors.Is(err, repository.ErrLinkNotFound) {
				return errors.Wrap(err, "failed to look up provider link")
			}

			// Step 2: email auto-link onto an existing account.
			if identity.Email != "" {
				emailLink, err := linkRepo.FindByEmail(ctx, identity.Email)
				if err == nil {
					account, err = accountRepo.FindByID(ctx, emailLink.AccountID)
					if err != nil {
						return err
					}

					return linkRepo.Create(ctx, newLinkEntity(account.ID, identity))
				}
				if !errors.Is(err, repository.ErrLinkNotFound) {
					return errors.Wrap(err, "failed to look up link by email")
				}
			}

			// Step 3: first contact, create the account.
			account = newAccountEntity(identity, seed)
			if err := accountRepo.Create(ctx, account); err != nil {
				return err
			}
			created = true

			return linkRepo.Create(ctx, newLinkEntity(account.ID, identity))
		})

		if errors.Is(err, repository.ErrLinkConflict) {
			// Lost the race; the retry finds the winner's link in step 1.
			continue
		}
		if err != nil {
			return nil, false, err
		}

		return account, created, nil
	}

	return nil, false, domainerrors.ErrInternalError.WrapMessage("identity resolution kept conflicting")
}

// newAccountEntity builds the account created on an identity's first contact.
func newAccountEntity(identity *service.NormalizedIdentity, seed profileSeed) *entity.Account {
	username := identity.Email
	if username == "" {
		username = string(identity.Provider) + "_" + identity.SubjectID
	}

	firstName := seed.FirstName
	if firstName == "" && seed.LastName == "" && identity.DisplayName != "" {
		firstName, seed.LastName = splitDisplayName(identity.DisplayName)
	}

	return &entity.Account{
		FirstName:         firstName,
		LastName:          seed.LastName,
		Username:          username,
		PreferredCurrency: entity.DefaultCurrency,
	}
}

// newLinkEntity builds the provider link row for a resolved identity.
func newLinkEntity(accountID uuid.UUID, identity *service.NormalizedIdentity) *entity.ProviderLink {
	return &entity.ProviderLink{
		AccountID:      accountID,
		Provider:       identity.Provider,
		ProviderUserID: identity.SubjectID,
		Email:          identity.Email,
		DisplayName:    identity.DisplayName,
	}
}

// widgetAuthFresh reports whether the widget's auth_date is present and
// within the allowed age.
func widgetAuthFresh(authDate string, now time.Time) bool {
	seconds, err := strconv.ParseInt(authDate, 10, 64)
	if err != nil {
		return false
	}
	issued := time.Unix(seconds, 0)

	return now.Sub(issued) <= widgetAuthMaxAge && issued.Before(now.Add(5*time.Minute))
}

func telegramDisplayName(fields map[string]string) string {
	if username := fields["username"]; username != "" {
		return username
	}

	return strings.TrimSpace(fields["first_name"] + " " + fields["last_name"])
}

func telegramProfile(fields map[string]string) profileSeed {
	return profileSeed{
		FirstName: fields["first_name"],
		LastName:  fields["last_name"],
	}
}

// splitDisplayName splits "First Last" into its parts; a single token stays
// in the first name.
func splitDisplayName(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}

	return parts[0], ""
}
