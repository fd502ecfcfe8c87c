package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"pwned/internal/domain"
)

// maxBodyBytes bounds a response body; the full breach catalog is a few MB.
const maxBodyBytes = 32 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client performs GET requests against one API with a fixed header set. It
// holds no per-call state and is safe for concurrent use.
type Client struct {
	http   *http.Client
	header http.Header
	log    *zap.Logger
}

// New returns a Client sending header on every request. A nil httpClient
// uses http.DefaultClient and a nil logger discards output.
func New(httpClient *http.Client, header http.Header, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{http: httpClient, header: header.Clone(), log: logger}
}

// Headers builds the fixed request headers. apiVersion and apiKey are only
// sent when non-empty.
func Headers(userAgent, apiVersion, apiKey string) http.Header {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	h.Set("User-Agent", userAgent)
	if apiVersion != "" {
		h.Set("api-version", apiVersion)
	}
	if apiKey != "" {
		h.Set("hibp-api-key", apiKey)
	}
	return h
}

// GetJSON fetches rawURL and decodes a 2xx JSON body into out. op names the
// operation in errors and logs; rawURL itself is never logged or returned
// because it may carry a password.
func (c *Client) GetJSON(ctx context.Context, op, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.InvalidArgument(op, "build request: %v", redact(err))
	}
	req.Header = c.header.Clone()

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.Error{Kind: domain.KindTransport, Op: op, Err: redact(err)}
	}
	defer resp.Body.Close()

	c.log.Debug("remote call finished",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode/100 != 2 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return &domain.Error{Kind: domain.KindRemote, Op: op, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.Error{Kind: domain.KindTransport, Op: op, Err: fmt.Errorf("read body: %w", err)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &domain.Error{Kind: domain.KindDecode, Op: op, Err: err}
	}

	// A response that lands after cancellation is discarded.
	if err := ctx.Err(); err != nil {
		return &domain.Error{Kind: domain.KindTransport, Op: op, Err: err}
	}
	return nil
}

// redact strips the request URL that net/http embeds in its errors.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
