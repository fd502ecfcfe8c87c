package app

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"pwned/internal/domain"
	"pwned/internal/logging"
	"pwned/internal/lookup"
	"pwned/internal/transport"
	"pwned/internal/validation"
)

// Wire bundles the logger, the shared HTTP client and the lookup services.
type Wire struct {
	Log       *zap.Logger
	HTTP      *http.Client
	Breaches  domain.BreachService
	Passwords domain.PasswordService
	Validator domain.PasswordValidator
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	// One pooled client serves both APIs.
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient, err = transport.NewHTTPClient()
		if err != nil {
			return nil, err
		}
	}

	opts := []lookup.Option{lookup.WithHTTPClient(httpClient), lookup.WithLogger(log)}
	breaches, err := lookup.NewBreachClient(cfg.Pwned, opts...)
	if err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	passwords, err := lookup.NewPasswordClient(cfg.Pwned, opts...)
	if err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}

	return &Wire{
		Log:       log,
		HTTP:      httpClient,
		Breaches:  breaches,
		Passwords: passwords,
		Validator: validation.New(passwords, log),
	}, nil
}

// Close releases idle connections and flushes the logger.
func (w *Wire) Close() {
	w.HTTP.CloseIdleConnections()
	_ = w.Log.Sync()
}
