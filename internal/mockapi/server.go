package mockapi

import (
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pwned/internal/domain"
	"pwned/internal/fixture"
	"pwned/internal/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Server serves a fixture dataset over HTTP.
type Server struct {
	data       *fixture.Dataset
	log        *zap.Logger
	limitEvery uint64
	hits       atomic.Uint64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRateLimitEvery answers every nth breach request with 429. Zero
// disables rate limiting.
func WithRateLimitEvery(n uint64) Option {
	return func(s *Server) { s.limitEvery = n }
}

// New returns a Server for data.
func New(data *fixture.Dataset, opts ...Option) *Server {
	s := &Server{data: data, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes returns the router of the simulated service.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer, s.accessLog)

	r.Route("/api", func(r chi.Router) {
		r.Use(requireAPIVersion, s.rateLimit)
		r.Get("/breachedaccount/{account}", s.breachedAccount)
		r.Get("/breaches", s.breaches)
		r.Get("/breach/{name}", s.breach)
		r.Get("/dataclasses", s.dataClasses)
		r.Get("/pasteaccount/{account}", s.pasteAccount)
	})
	r.Get("/pwnedpassword/{password}", s.password)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

func (s *Server) breachedAccount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BreachFilter{
		IncludeUnverified: q.Get("includeUnverified") == "true",
		Truncate:          q.Get("truncateResponse") == "true",
		Domain:            q.Get("domain"),
	}
	found, ok := s.data.BreachesFor(pathParam(r, "account"), filter)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if filter.Truncate {
		names := make([]truncatedBreach, 0, len(found))
		for _, b := range found {
			names = append(names, truncatedBreach{Name: b.Name})
		}
		writeJSON(w, names)
		return
	}
	writeJSON(w, found)
}

func (s *Server) breaches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.data.Catalog(r.URL.Query().Get("domain")))
}

func (s *Server) breach(w http.ResponseWriter, r *http.Request) {
	b, ok := s.data.Breach(pathParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, b)
}

func (s *Server) dataClasses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.data.DataClasses)
}

func (s *Server) pasteAccount(w http.ResponseWriter, r *http.Request) {
	pastes, ok := s.data.PastesFor(pathParam(r, "account"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, pastes)
}

func (s *Server) password(w http.ResponseWriter, r *http.Request) {
	n, ok := s.data.PasswordCount(pathParam(r, "password"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, n)
}

type truncatedBreach struct {
	Name domain.BreachName `json:"Name"`
}

func requireAPIVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-version") == "" {
			http.Error(w, "api-version header required", http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limitEvery > 0 && s.hits.Add(1)%s.limitEvery == 0 {
			w.Header().Set("Retry-After", "2")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.MockRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// pathParam returns the decoded value of a route parameter. chi matches on
// the escaped path when one is present.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}
