// Package oauth implements the authorization-code exchange against the
// supported providers (google, github, apple) and the CSRF state store that
// guards the redirect flow.
package oauth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	"github.com/Felix-Hz/cofr/internal/domain/service"
)

// stateTTL bounds how long an issued state parameter stays redeemable.
const stateTTL = 10 * time.Minute

// stateEntry records which provider a state was issued for and when it
// expires.
type stateEntry struct {
	provider entity.ProviderType
	expiry   time.Time
}

// memoryStateStore keeps issued states in memory with expiry. Each state is
// single-use: Consume removes it whether or not it had expired.
type memoryStateStore struct {
	mu     sync.Mutex
	states map[string]stateEntry
}

// NewStateStore creates an in-memory state store.
func NewStateStore() service.StateStore {
	return &memoryStateStore{states: make(map[string]stateEntry)}
}

// Issue generates a cryptographically random state and records it against
// the provider.
func (s *memoryStateStore) Issue(provider entity.ProviderType) string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	state := hex.EncodeToString(bytes)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state] = stateEntry{provider: provider, expiry: time.Now().Add(stateTTL)}
	s.cleanupExpired()

	return state
}

// Consume validates and removes a state. It reports false for unknown,
// already-used, or expired states, and for states issued to another
// provider's login URL.
func (s *memoryStateStore) Consume(state string, provider entity.ProviderType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.states[state]
	if !exists {
		return false
	}

	// Remove used state to prevent replay attacks.
	delete(s.states, state)

	if entry.provider != provider {
		return false
	}

	return time.Now().Before(entry.expiry)
}

// cleanupExpired removes expired states. Caller must hold the lock.
func (s *memoryStateStore) cleanupExpired() {
	now := time.Now()
	for state, entry := range s.states {
		if now.After(entry.expiry) {
			delete(s.states, state)
		}
	}
}
