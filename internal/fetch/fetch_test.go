package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("# README"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "# README", result.Body)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, server.URL, result.URL)
}

func TestURL_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "agent/2.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "token abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	opts := &Options{
		Timeout:   DefaultTimeout,
		UserAgent: "agent/2.0",
		Headers:   map[string]string{"Authorization": "token abc"},
	}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestURL_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "404")
}

func TestURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "example.com/readme"},
		{"empty", ""},
		{"garbage", "://nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := URL(context.Background(), tt.url, nil)
			require.Error(t, err)

			var fetchErr *Error
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, "invalid URL", fetchErr.Message)
		})
	}
}

func TestURL_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := URL(ctx, server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.True(t, errors.As(err, &fetchErr))
}
