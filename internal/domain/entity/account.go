// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is the currency assigned to accounts that never chose one.
const DefaultCurrency = "NZD"

// Account is the core entity in the system, representing one internal "person"
// regardless of how many external identity providers they have linked.
type Account struct {
	ID                uuid.UUID      // The stable internal identifier for the account.
	FirstName         string         // Display profile: first name, may be empty.
	LastName          string         // Display profile: last name, may be empty.
	Username          string         // Unique display handle; defaults to the first login's email or a synthesized label.
	PreferredCurrency string         // ISO 4217 code used when rendering amounts, defaults to DefaultCurrency.
	LinkCode          string         // Pending deep-link confirmation code, empty when no link is in flight.
	LinkCodeExpires   *time.Time     // Expiry of LinkCode; nil when no link is in flight.
	Links             []ProviderLink // Provider credentials bound to this account. Loaded on demand.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DisplayName returns the best human-readable label for the account,
// preferring the username over the profile names.
func (a *Account) DisplayName() string {
	if a.Username != "" {
		return a.Username
	}
	if a.FirstName != "" {
		if a.LastName != "" {
			return a.FirstName + " " + a.LastName
		}

		return a.FirstName
	}

	return "User"
}

// LinkCodeValid reports whether the account carries a pending deep-link code
// that has not expired at the given instant.
func (a *Account) LinkCodeValid(now time.Time) bool {
	return a.LinkCode != "" && a.LinkCodeExpires != nil && a.LinkCodeExpires.After(now)
}
