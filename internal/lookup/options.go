package lookup

import (
	"net/http"

	"go.uber.org/zap"
)

// Option customises a client.
type Option func(*options)

type options struct {
	http *http.Client
	log  *zap.Logger
}

// WithHTTPClient shares c, and its connection pool, with the client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.http = c
		}
	}
}

// WithLogger sets the logger. The client logs under its own name.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{http: http.DefaultClient, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
