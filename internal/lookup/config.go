package lookup

import "time"

const (
	DefaultServiceAPIURL     = "https://haveibeenpwned.com/api/"
	DefaultServiceAPIVersion = "2"
	DefaultPasswordsAPIURL   = "https://api.pwnedpasswords.com/"

	DefaultBreachTimeout = 30 * time.Second
	DefaultBreachRetries = 2
	DefaultBreachBackoff = 2 * time.Second

	DefaultPasswordTimeout = 2 * time.Second
	DefaultPasswordRetries = 3
	DefaultPasswordBackoff = 100 * time.Millisecond
)

// Config is shared by both clients. It is copied on construction, so one
// value may back any number of clients.
//
// Zero fields take their defaults. A negative retry count disables retries.
type Config struct {
	// UserAgent defaults to a name derived from the client.
	UserAgent         string `mapstructure:"UserAgent"`
	ServiceAPIURL     string `mapstructure:"ServiceApiUrl"`
	ServiceAPIVersion string `mapstructure:"ServiceApiVersion"`
	// ServiceAPIKey is sent as hibp-api-key on breach and paste calls.
	ServiceAPIKey   string `mapstructure:"ServiceApiKey"`
	PasswordsAPIURL string `mapstructure:"PasswordsApiUrl"`

	BreachTimeout time.Duration `mapstructure:"BreachTimeout"`
	BreachRetries int           `mapstructure:"BreachRetries"`
	BreachBackoff time.Duration `mapstructure:"BreachBackoff"`

	PasswordTimeout time.Duration `mapstructure:"PasswordTimeout"`
	PasswordRetries int           `mapstructure:"PasswordRetries"`
	PasswordBackoff time.Duration `mapstructure:"PasswordBackoff"`
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.ServiceAPIURL == "" {
		c.ServiceAPIURL = DefaultServiceAPIURL
	}
	if c.ServiceAPIVersion == "" {
		c.ServiceAPIVersion = DefaultServiceAPIVersion
	}
	if c.PasswordsAPIURL == "" {
		c.PasswordsAPIURL = DefaultPasswordsAPIURL
	}
	c.BreachTimeout = orDuration(c.BreachTimeout, DefaultBreachTimeout)
	c.BreachBackoff = orDuration(c.BreachBackoff, DefaultBreachBackoff)
	c.BreachRetries = orRetries(c.BreachRetries, DefaultBreachRetries)
	c.PasswordTimeout = orDuration(c.PasswordTimeout, DefaultPasswordTimeout)
	c.PasswordBackoff = orDuration(c.PasswordBackoff, DefaultPasswordBackoff)
	c.PasswordRetries = orRetries(c.PasswordRetries, DefaultPasswordRetries)
	return c
}

func orDuration(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}

func orRetries(v, def int) int {
	switch {
	case v == 0:
		return def
	case v < 0:
		return 0
	}
	return v
}

func userAgent(configured, client string) string {
	if configured != "" {
		return configured
	}
	return client + "-pwned"
}
