package oauth

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/Felix-Hz/cofr/config"
	"github.com/Felix-Hz/cofr/internal/domain/entity"
	"github.com/Felix-Hz/cofr/internal/domain/service"
)

const defaultExchangeTimeout = 10 * time.Second

// Params defines the parameters required to build the exchanger set.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewExchangers builds one exchanger per configured provider. Providers with
// an empty client id are skipped, so deployments can enable any subset.
func NewExchangers(params Params) map[entity.ProviderType]service.OAuthExchanger {
	exchangers := make(map[entity.ProviderType]service.OAuthExchanger)

	cfg := params.Config.OAuth
	if cfg == nil {
		params.Logger.Warn("oauth config missing, no providers registered")

		return exchangers
	}

	timeout := cfg.ExchangeTimeout
	if timeout <= 0 {
		timeout = defaultExchangeTimeout
	}

	register := func(provider entity.ProviderType, client config.OAuthClient,
		build func(clientID, clientSecret, redirectURI string, timeout time.Duration) service.OAuthExchanger,
	) {
		if client.ClientID == "" {
			params.Logger.Info("oauth provider not configured, skipping", slog.String("provider", string(provider)))

			return
		}
		redirectURI := params.Config.URLs.API + "/auth/oauth/" + string(provider) + "/callback"
		exchangers[provider] = build(client.ClientID, client.ClientSecret, redirectURI, timeout)
	}

	register(entity.ProviderTypeGoogle, cfg.Google, newGoogleExchanger)
	register(entity.ProviderTypeGithub, cfg.Github, newGithubExchanger)
	register(entity.ProviderTypeApple, cfg.Apple, newAppleExchanger)

	return exchangers
}
