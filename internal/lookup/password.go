package lookup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pwned/internal/domain"
	"pwned/internal/endpoint"
	"pwned/internal/resilience"
	"pwned/internal/transport"
)

// PasswordClient looks up how often a password appears in breaches.
type PasswordClient struct {
	urls   *endpoint.Builder
	http   *transport.Client
	policy resilience.Policy
	log    *zap.Logger
}

var _ domain.PasswordService = (*PasswordClient)(nil)

// NewPasswordClient validates cfg and returns a client for the password
// endpoint.
func NewPasswordClient(cfg Config, opts ...Option) (*PasswordClient, error) {
	cfg = cfg.withDefaults()
	o := applyOptions(opts)

	urls, err := endpoint.NewBuilder(cfg.ServiceAPIURL, cfg.PasswordsAPIURL)
	if err != nil {
		return nil, fmt.Errorf("password client: %w", err)
	}
	log := o.log.Named("password_client")
	// The password API takes neither api-version nor the service key.
	header := transport.Headers(userAgent(cfg.UserAgent, "PasswordClient"), "", "")
	return &PasswordClient{
		urls:   urls,
		http:   transport.New(o.http, header, log),
		policy: resilience.Password(cfg.PasswordTimeout, uint64(cfg.PasswordRetries), cfg.PasswordBackoff).WithLogger(log),
		log:    log,
	}, nil
}

// LookupPassword sends password exactly as given and returns its breach
// count. A password the service has never seen is not compromised.
func (c *PasswordClient) LookupPassword(ctx context.Context, password string) (domain.PasswordResult, error) {
	op := endpoint.OpPassword
	start := time.Now()

	u, err := c.urls.Build(op, password)
	if err != nil {
		observe(c.log, op, start, "", err)
		return domain.PasswordResult{}, err
	}

	var count int64
	err = c.policy.Do(ctx, string(op), func(ctx context.Context) error {
		return c.http.GetJSON(ctx, string(op), u, &count)
	})
	switch {
	case err == nil:
		observe(c.log, op, start, outcomeOK, nil)
		return domain.NewPasswordResult(count), nil
	case isNotFound(err):
		observe(c.log, op, start, outcomeNotFound, nil)
		return domain.PasswordResult{}, nil
	default:
		observe(c.log, op, start, "", err)
		return domain.PasswordResult{}, err
	}
}
