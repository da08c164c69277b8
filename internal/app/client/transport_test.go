package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/exp/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardstore/internal/app/client/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:         baseURL,
		HTTPTimeout:     15,
		DefaultLanguage: "en",
		PageSize:        50,
	}
}

func TestTransportAcceptLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language func() string
		expected string
	}{
		{
			name:     "no persisted preference defaults to en",
			language: func() string { return "" },
			expected: "en",
		},
		{
			name:     "persisted preference wins",
			language: func() string { return "ne" },
			expected: "ne",
		},
		{
			name:     "nil language source defaults to en",
			language: nil,
			expected: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLang string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotLang = r.Header.Get("Accept-Language")
				w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			api := newAPIClient(testConfig(srv.URL), testLogger(), tt.language)
			_, err := api.ListCategories(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, gotLang)
		})
	}
}

func TestTransportAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	api := newAPIClient(testConfig(srv.URL), testLogger(), nil)

	_, err := api.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	api.SetToken("secret-token")
	_, err = api.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestTransportClassifiesHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "message field extracted",
			status:      http.StatusInternalServerError,
			body:        `{"message":"database exploded"}`,
			wantMessage: "database exploded",
		},
		{
			name:        "error field extracted",
			status:      http.StatusNotFound,
			body:        `{"error":"category not found"}`,
			wantMessage: "category not found",
		},
		{
			name:        "non-JSON body yields empty message",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			api := newAPIClient(testConfig(srv.URL), testLogger(), nil)
			_, err := api.ListCategories(context.Background())
			require.Error(t, err)

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
			assert.Equal(t, tt.body, string(httpErr.Body))
		})
	}
}

func TestTransportClassifiesNetworkError(t *testing.T) {
	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing is listening anymore

		api := newAPIClient(testConfig(srv.URL), testLogger(), nil)
		_, err := api.ListCategories(context.Background())
		require.Error(t, err)

		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.False(t, netErr.Timeout)
	})

	t.Run("deadline exceeded is a timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		api := newAPIClient(testConfig(srv.URL), testLogger(), nil)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := api.ListCategories(ctx)
		require.Error(t, err)

		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.True(t, netErr.Timeout)
	})
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "backend message preferred",
			err:  &HTTPError{Status: 500, Message: "quota exceeded"},
			want: "quota exceeded",
		},
		{
			name: "network error",
			err:  &NetworkError{Err: context.DeadlineExceeded, Timeout: true},
			want: "Unable to connect to server. Please check your internet connection.",
		},
		{
			name: "status without message is generic",
			err:  &HTTPError{Status: 502},
			want: "Something went wrong. Please try again.",
		},
		{
			name: "validation error names the field",
			err:  &ValidationError{Field: "phone"},
			want: `field "phone" must not be empty`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
