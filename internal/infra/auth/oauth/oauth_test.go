package oauth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
)

// fakeIDToken builds an unsigned JWT with the given payload claims.
func fakeIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestDecodeIDTokenClaims(t *testing.T) {
	token := fakeIDToken(t, map[string]any{
		"sub":            "10001",
		"email":          "alice@example.com",
		"email_verified": true,
		"name":           "Alice Liddell",
	})

	claims, err := decodeIDTokenClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "10001", claims.Sub)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, bool(claims.EmailVerified))
	assert.Equal(t, "Alice Liddell", claims.displayName())
}

func TestDecodeIDTokenClaims_StringVerified(t *testing.T) {
	// Apple emits email_verified as the string "true".
	token := fakeIDToken(t, map[string]any{
		"sub":            "001234.abcd",
		"email":          "hidden@privaterelay.appleid.com",
		"email_verified": "true",
	})

	claims, err := decodeIDTokenClaims(token)
	require.NoError(t, err)
	assert.True(t, bool(claims.EmailVerified))
}

func TestDecodeIDTokenClaims_NamePartsFallback(t *testing.T) {
	token := fakeIDToken(t, map[string]any{
		"sub":         "10001",
		"given_name":  "Alice",
		"family_name": "Liddell",
	})

	claims, err := decodeIDTokenClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", claims.displayName())
}

func TestDecodeIDTokenClaims_Malformed(t *testing.T) {
	for _, input := range []string{"", "only-one-part", "a.!!!.c"} {
		_, err := decodeIDTokenClaims(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestMemoryStateStore_IssueAndConsume(t *testing.T) {
	store := NewStateStore()

	state := store.Issue(entity.ProviderTypeGoogle)
	require.NotEmpty(t, state)

	assert.True(t, store.Consume(state, entity.ProviderTypeGoogle))
	// Second consume must fail: states are single-use.
	assert.False(t, store.Consume(state, entity.ProviderTypeGoogle))
}

func TestMemoryStateStore_UnknownState(t *testing.T) {
	store := NewStateStore()

	assert.False(t, store.Consume("never-issued", entity.ProviderTypeGoogle))
}

func TestMemoryStateStore_WrongProvider(t *testing.T) {
	store := NewStateStore()

	state := store.Issue(entity.ProviderTypeGoogle)

	// A state issued for one provider's login URL is not redeemable on
	// another provider's callback, and the attempt burns it.
	assert.False(t, store.Consume(state, entity.ProviderTypeGithub))
	assert.False(t, store.Consume(state, entity.ProviderTypeGoogle))
}

func TestMemoryStateStore_ExpiredState(t *testing.T) {
	store := NewStateStore().(*memoryStateStore)

	state := store.Issue(entity.ProviderTypeGoogle)
	store.mu.Lock()
	store.states[state] = stateEntry{provider: entity.ProviderTypeGoogle, expiry: time.Now().Add(-time.Minute)}
	store.mu.Unlock()

	assert.False(t, store.Consume(state, entity.ProviderTypeGoogle))
}

// newGithubTestServer serves the token endpoint and the user API endpoints
// the github exchanger touches.
func newGithubTestServer(t *testing.T, profile, emails any) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "gho_testtoken",
			"token_type":   "bearer",
		})
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_testtoken", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profile)
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(emails)
	})

	return httptest.NewServer(mux)
}

func newTestGithubExchanger(server *httptest.Server) *githubExchanger {
	return &githubExchanger{
		config: &oauth2.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  server.URL + "/login/oauth/authorize",
				TokenURL: server.URL + "/login/oauth/access_token",
			},
		},
		apiBaseURL: server.URL,
		timeout:    5 * time.Second,
	}
}

func TestGithubExchanger_Exchange_PublicEmail(t *testing.T) {
	server := newGithubTestServer(t,
		map[string]any{"id": 583231, "login": "octocat", "name": "The Octocat", "email": "octocat@github.com"},
		nil,
	)
	defer server.Close()

	identity, err := newTestGithubExchanger(server).Exchange(context.Background(), "test-code")
	require.NoError(t, err)

	assert.Equal(t, entity.ProviderTypeGithub, identity.Provider)
	assert.Equal(t, "583231", identity.SubjectID)
	assert.Equal(t, "octocat@github.com", identity.Email)
	assert.Equal(t, "The Octocat", identity.DisplayName)
}

func TestGithubExchanger_Exchange_PrivateEmail(t *testing.T) {
	server := newGithubTestServer(t,
		map[string]any{"id": 583231, "login": "octocat", "name": "", "email": ""},
		[]map[string]any{
			{"email": "secondary@example.com", "primary": false, "verified": true},
			{"email": "unverified@example.com", "primary": true, "verified": false},
			{"email": "primary@example.com", "primary": true, "verified": true},
		},
	)
	defer server.Close()

	identity, err := newTestGithubExchanger(server).Exchange(context.Background(), "test-code")
	require.NoError(t, err)

	// Only the primary verified address qualifies.
	assert.Equal(t, "primary@example.com", identity.Email)
	// Login backfills a missing display name.
	assert.Equal(t, "octocat", identity.DisplayName)
}

func TestGithubExchanger_Exchange_NoVerifiedEmail(t *testing.T) {
	server := newGithubTestServer(t,
		map[string]any{"id": 583231, "login": "octocat"},
		[]map[string]any{
			{"email": "unverified@example.com", "primary": true, "verified": false},
		},
	)
	defer server.Close()

	identity, err := newTestGithubExchanger(server).Exchange(context.Background(), "test-code")
	require.NoError(t, err)

	assert.Empty(t, identity.Email)
	assert.Equal(t, "583231", identity.SubjectID)
}

func TestGoogleExchanger_AuthorizationURL(t *testing.T) {
	exchanger := newGoogleExchanger("client-id", "secret", "https://api.example.com/auth/oauth/google/callback", 0)

	authURL := exchanger.AuthorizationURL("my-state")
	assert.Contains(t, authURL, "accounts.google.com")
	assert.Contains(t, authURL, "state=my-state")
	assert.Contains(t, authURL, "client_id=client-id")
}

func TestAppleExchanger_AuthorizationURL(t *testing.T) {
	exchanger := newAppleExchanger("client-id", "secret", "https://api.example.com/auth/oauth/apple/callback", 0)

	authURL := exchanger.AuthorizationURL("my-state")
	assert.Contains(t, authURL, "appleid.apple.com")
	assert.Contains(t, authURL, "response_mode=form_post")
}
