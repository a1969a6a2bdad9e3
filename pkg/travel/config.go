package travel

import "time"

// Default localisation values applied when Config fields are left empty.
const (
	DefaultCountry  = "GB"
	DefaultCurrency = "GBP"
	DefaultLocale   = "en-GB"
)

const (
	defaultSessionAttempts = 5
	defaultPollDelay       = time.Second
)

// Config holds per-client settings shared by every product client.
//
// Empty localisation fields fall back to the documented defaults at client
// construction; an explicitly empty value never erases a default. Boolean
// fields are named so that the zero value is the default behavior:
// single-element carrier and agent lists are flattened to a scalar unless
// KeepSingleLists is set, and linking ids are kept unless RemoveIDs is set.
type Config struct {
	// APIKey identifies the customer. Sent as the apiKey request parameter.
	APIKey string

	// Country is the ISO 3166-1 market country code. Default "GB".
	Country string

	// Currency is the ISO 4217 currency code. Default "GBP".
	Currency string

	// Locale is the ISO locale code (language and country). Default "en-GB".
	Locale string

	// UserIP, when set, is forwarded as the X-Forwarded-For header and the
	// userip parameter on the endpoints that require it.
	UserIP string

	// RemoveIDs deletes the foreign-key id fields from linked results once
	// they have been resolved to nested objects.
	RemoveIDs bool

	// KeepSingleLists disables collapsing single-element carrier and agent
	// lists into a scalar field.
	KeepSingleLists bool

	// SessionAttempts bounds the create-session retry loop. The provider
	// signals "still provisioning" with an empty Location header, so the
	// loop re-issues the creation request up to this many times before
	// giving up with ErrSessionTimeout. Default 5.
	SessionAttempts int

	// PollDelay is the wait between session creation attempts. Default 1s.
	PollDelay time.Duration
}

// withDefaults returns a copy of c with unset fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.Country == "" {
		c.Country = DefaultCountry
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.SessionAttempts <= 0 {
		c.SessionAttempts = defaultSessionAttempts
	}
	if c.PollDelay <= 0 {
		c.PollDelay = defaultPollDelay
	}
	return c
}

// FlattenSingle reports whether single-element lists collapse to a scalar.
func (c Config) FlattenSingle() bool { return !c.KeepSingleLists }
