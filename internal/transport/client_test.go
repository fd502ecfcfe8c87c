package transport_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pwned/internal/domain"
	"pwned/internal/transport"
)

func TestGetJSON_SendsFixedHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `["Email addresses","Passwords"]`)
	}))
	defer srv.Close()

	c := transport.New(srv.Client(), transport.Headers("pwned-test", "2", "key-123"), nil)

	var out []string
	require.NoError(t, c.GetJSON(context.Background(), "dataclasses", srv.URL+"/dataclasses", &out))
	assert.Equal(t, []string{"Email addresses", "Passwords"}, out)
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "pwned-test", got.Get("User-Agent"))
	assert.Equal(t, "2", got.Get("api-version"))
	assert.Equal(t, "key-123", got.Get("hibp-api-key"))
}

func TestGetJSON_OmitsVersionForPasswords(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		fmt.Fprint(w, "3861493\n")
	}))
	defer srv.Close()

	c := transport.New(srv.Client(), transport.Headers("pwned-test", "", ""), nil)

	var count int64
	require.NoError(t, c.GetJSON(context.Background(), "pwnedpassword", srv.URL+"/pwnedpassword/P@ssword", &count))
	assert.Equal(t, int64(3861493), count)
	assert.Empty(t, got.Values("api-version"))
	assert.Empty(t, got.Values("hibp-api-key"))
}

func TestGetJSON_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			fmt.Fprint(w, `["should","not","decode"]`)
		}))

		c := transport.New(srv.Client(), transport.Headers("pwned-test", "2", ""), nil)
		var out []string
		err := c.GetJSON(context.Background(), "breaches", srv.URL+"/breaches", &out)
		srv.Close()

		assert.ErrorIs(t, err, domain.ErrRemote, "status %d", status)
		assert.Equal(t, status, domain.StatusCode(err))
		assert.Nil(t, out, "status %d body must not be decoded", status)
	}
}

func TestGetJSON_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Name":`)
	}))
	defer srv.Close()

	c := transport.New(srv.Client(), transport.Headers("pwned-test", "2", ""), nil)
	var out []string
	err := c.GetJSON(context.Background(), "breaches", srv.URL+"/breaches", &out)
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestGetJSON_ShapeMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Name":"Adobe"}`)
	}))
	defer srv.Close()

	c := transport.New(srv.Client(), transport.Headers("pwned-test", "2", ""), nil)
	var out []domain.Breach
	err := c.GetJSON(context.Background(), "breaches", srv.URL+"/breaches", &out)
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestGetJSON_TransportErrorIsRedacted(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := transport.New(&http.Client{}, transport.Headers("pwned-test", "", ""), nil)
	var count int64
	err := c.GetJSON(context.Background(), "pwnedpassword", addr+"/pwnedpassword/hunter2", &count)
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.NotContains(t, err.Error(), "hunter2")
}

func TestGetJSON_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := transport.New(srv.Client(), transport.Headers("pwned-test", "2", ""), nil)
	var out []string
	err := c.GetJSON(ctx, "dataclasses", srv.URL+"/dataclasses", &out)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewHTTPClient(t *testing.T) {
	c, err := transport.NewHTTPClient()
	require.NoError(t, err)
	require.NotNil(t, c.Transport)
	assert.Zero(t, c.Timeout)
}
