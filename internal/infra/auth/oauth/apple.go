package oauth

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	"github.com/Felix-Hz/cofr/internal/domain/service"
)

// appleExchanger implements the code exchange for Sign in with Apple. Apple
// returns identity only through the id_token and never includes a display
// name there, so DisplayName stays empty for this provider.
type appleExchanger struct {
	config  *oauth2.Config
	timeout time.Duration
}

func newAppleExchanger(clientID, clientSecret, redirectURI string, timeout time.Duration) service.OAuthExchanger {
	return &appleExchanger{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"name", "email"},
			Endpoint:     endpoints.Apple,
		},
		timeout: timeout,
	}
}

// Provider returns the OAuth provider type.
func (e *appleExchanger) Provider() entity.ProviderType {
	return entity.ProviderTypeApple
}

// AuthorizationURL constructs the Apple authorization URL carrying state.
// Apple requires response_mode=form_post when the email scope is requested.
func (e *appleExchanger) AuthorizationURL(state string) string {
	return e.config.AuthCodeURL(state, oauth2.SetAuthURLParam("response_mode", "form_post"))
}

// Exchange trades an authorization code for a normalized identity.
func (e *appleExchanger) Exchange(ctx context.Context, code string) (*service.NormalizedIdentity, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	token, err := e.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "apple code exchange failed")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("apple token response missing id_token")
	}

	claims, err := decodeIDTokenClaims(rawIDToken)
	if err != nil {
		return nil, errors.Wrap(err, "apple id_token invalid")
	}
	if claims.Sub == "" {
		return nil, errors.New("apple id_token missing sub claim")
	}

	identity := &service.NormalizedIdentity{
		Provider:  entity.ProviderTypeApple,
		SubjectID: claims.Sub,
	}
	if bool(claims.EmailVerified) {
		identity.Email = claims.Email
	}

	return identity, nil
}
