package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"pwned/internal/domain"
	"pwned/internal/endpoint"
	"pwned/internal/resilience"
	"pwned/internal/transport"
)

// BreachClient looks up breaches, data classes and pastes.
type BreachClient struct {
	urls   *endpoint.Builder
	http   *transport.Client
	policy resilience.Policy
	log    *zap.Logger
}

var _ domain.BreachService = (*BreachClient)(nil)

// NewBreachClient validates cfg and returns a client for the breach and paste
// endpoints.
func NewBreachClient(cfg Config, opts ...Option) (*BreachClient, error) {
	cfg = cfg.withDefaults()
	o := applyOptions(opts)

	urls, err := endpoint.NewBuilder(cfg.ServiceAPIURL, cfg.PasswordsAPIURL)
	if err != nil {
		return nil, fmt.Errorf("breach client: %w", err)
	}
	log := o.log.Named("breach_client")
	header := transport.Headers(userAgent(cfg.UserAgent, "BreachClient"), cfg.ServiceAPIVersion, cfg.ServiceAPIKey)
	return &BreachClient{
		urls:   urls,
		http:   transport.New(o.http, header, log),
		policy: resilience.Breach(cfg.BreachTimeout, uint64(cfg.BreachRetries), cfg.BreachBackoff).WithLogger(log),
		log:    log,
	}, nil
}

// BreachesForAccount returns the breaches account appears in, in server
// order. An account the service does not know yields an empty slice.
func (c *BreachClient) BreachesForAccount(ctx context.Context, account domain.Account, filter domain.BreachFilter) ([]domain.Breach, error) {
	op := endpoint.OpBreachedAccount
	if strings.TrimSpace(account.String()) == "" {
		return nil, domain.InvalidArgument(string(op), "account is required")
	}
	c.log.Debug("looking up breaches", zap.Stringer("account", account))

	return getList[domain.Breach](ctx, c, op, account.String(),
		endpoint.BoolFilter(endpoint.FilterIncludeUnverified, filter.IncludeUnverified, false),
		endpoint.BoolFilter(endpoint.FilterTruncateResponse, filter.Truncate, false),
		endpoint.TextFilter(endpoint.FilterDomain, filter.Domain),
	)
}

// AllBreaches returns the breach catalog, restricted to domainName when it is
// non-empty.
func (c *BreachClient) AllBreaches(ctx context.Context, domainName string) ([]domain.Breach, error) {
	return getList[domain.Breach](ctx, c, endpoint.OpBreaches, "",
		endpoint.TextFilter(endpoint.FilterDomain, domainName),
	)
}

// Breach returns a single breach by name. An unknown name is a remote 404
// error, not an empty value.
func (c *BreachClient) Breach(ctx context.Context, name domain.BreachName) (domain.Breach, error) {
	op := endpoint.OpBreach
	start := time.Now()

	var out domain.Breach
	err := c.fetch(ctx, op, string(name), &out)
	observe(c.log, op, start, outcomeOK, err)
	if err != nil {
		return domain.Breach{}, err
	}
	return out, nil
}

// DataClasses returns every data class name in server order.
func (c *BreachClient) DataClasses(ctx context.Context) ([]string, error) {
	return getList[string](ctx, c, endpoint.OpDataClasses, "")
}

// PastesForAccount returns the pastes account appears in. An account with no
// pastes yields an empty slice.
func (c *BreachClient) PastesForAccount(ctx context.Context, account domain.Account) ([]domain.PasteAccount, error) {
	op := endpoint.OpPasteAccount
	if strings.TrimSpace(account.String()) == "" {
		return nil, domain.InvalidArgument(string(op), "account is required")
	}
	c.log.Debug("looking up pastes", zap.Stringer("account", account))
	return getList[domain.PasteAccount](ctx, c, op, account.String())
}

// fetch builds the URL for op and decodes one response into out under the
// breach policy.
func (c *BreachClient) fetch(ctx context.Context, op endpoint.Operation, param string, out any, filters ...endpoint.Filter) error {
	u, err := c.urls.Build(op, param, filters...)
	if err != nil {
		return err
	}
	return c.policy.Do(ctx, string(op), func(ctx context.Context) error {
		return c.http.GetJSON(ctx, string(op), u, out)
	})
}

// getList fetches a JSON array. The result is never nil on success, and a
// 404 from an account endpoint is an empty result.
func getList[T any](ctx context.Context, c *BreachClient, op endpoint.Operation, param string, filters ...endpoint.Filter) ([]T, error) {
	start := time.Now()

	var out []T
	err := c.fetch(ctx, op, param, &out, filters...)
	switch {
	case err == nil:
		if out == nil {
			out = []T{}
		}
		observe(c.log, op, start, outcomeOK, nil)
		return out, nil
	case recoversNotFound(op) && isNotFound(err):
		observe(c.log, op, start, outcomeNotFound, nil)
		return []T{}, nil
	default:
		observe(c.log, op, start, "", err)
		return nil, err
	}
}

func recoversNotFound(op endpoint.Operation) bool {
	return op == endpoint.OpBreachedAccount || op == endpoint.OpPasteAccount
}
