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

// googleExchanger implements the code exchange for Google. Identity is read
// from the id_token Google returns alongside the access token, so no extra
// userinfo round trip is needed.
type googleExchanger struct {
	config  *oauth2.Config
	timeout time.Duration
}

func newGoogleExchanger(clientID, clientSecret, redirectURI string, timeout time.Duration) service.OAuthExchanger {
	return &googleExchanger{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoints.Google,
		},
		timeout: timeout,
	}
}

// Provider returns the OAuth provider type.
func (e *googleExchanger) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// AuthorizationURL constructs the Google authorization URL carrying state.
func (e *googleExchanger) AuthorizationURL(state string) string {
	return e.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a normalized identity.
func (e *googleExchanger) Exchange(ctx context.Context, code string) (*service.NormalizedIdentity, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	token, err := e.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "google code exchange failed")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response missing id_token")
	}

	claims, err := decodeIDTokenClaims(rawIDToken)
	if err != nil {
		return nil, errors.Wrap(err, "google id_token invalid")
	}
	if claims.Sub == "" {
		return nil, errors.New("google id_token missing sub claim")
	}

	identity := &service.NormalizedIdentity{
		Provider:    entity.ProviderTypeGoogle,
		SubjectID:   claims.Sub,
		DisplayName: claims.displayName(),
	}
	if bool(claims.EmailVerified) {
		identity.Email = claims.Email
	}

	return identity, nil
}
