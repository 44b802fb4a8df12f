package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	"github.com/Felix-Hz/cofr/internal/domain/service"
)

const githubAPIBaseURL = "https://api.github.com"

// githubExchanger implements the code exchange for GitHub. GitHub issues no
// id_token, so identity comes from the /user endpoint, with /user/emails
// consulted when the profile email is private.
type githubExchanger struct {
	config     *oauth2.Config
	apiBaseURL string
	timeout    time.Duration
}

func newGithubExchanger(clientID, clientSecret, redirectURI string, timeout time.Duration) service.OAuthExchanger {
	return &githubExchanger{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     endpoints.GitHub,
		},
		apiBaseURL: githubAPIBaseURL,
		timeout:    timeout,
	}
}

// Provider returns the OAuth provider type.
func (e *githubExchanger) Provider() entity.ProviderType {
	return entity.ProviderTypeGithub
}

// AuthorizationURL constructs the GitHub authorization URL carrying state.
func (e *githubExchanger) AuthorizationURL(state string) string {
	return e.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a normalized identity.
func (e *githubExchanger) Exchange(ctx context.Context, code string) (*service.NormalizedIdentity, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	token, err := e.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "github code exchange failed")
	}

	client := e.config.Client(ctx, token)

	var profile struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := e.getJSON(ctx, client, e.apiBaseURL+"/user", &profile); err != nil {
		return nil, errors.Wrap(err, "github user lookup failed")
	}
	if profile.ID == 0 {
		return nil, errors.New("github user response missing id")
	}

	email := profile.Email
	if email == "" {
		email, err = e.primaryVerifiedEmail(ctx, client)
		if err != nil {
			return nil, err
		}
	}

	displayName := profile.Name
	if displayName == "" {
		displayName = profile.Login
	}

	return &service.NormalizedIdentity{
		Provider:    entity.ProviderTypeGithub,
		SubjectID:   strconv.FormatInt(profile.ID, 10),
		Email:       email,
		DisplayName: displayName,
	}, nil
}

// primaryVerifiedEmail returns the account's primary email, but only when
// GitHub has verified it. Unverified addresses stay out of the auto-link path.
func (e *githubExchanger) primaryVerifiedEmail(ctx context.Context, client *http.Client) (string, error) {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := e.getJSON(ctx, client, e.apiBaseURL+"/user/emails", &emails); err != nil {
		return "", errors.Wrap(err, "github emails lookup failed")
	}

	for _, candidate := range emails {
		if candidate.Primary && candidate.Verified {
			return candidate.Email, nil
		}
	}

	return "", nil
}

func (e *githubExchanger) getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
