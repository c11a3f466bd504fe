package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/colorstats/internal/errors"
	"github.com/agbru/colorstats/internal/metrics"
)

const page = `<table><tr><td>MONDAY</td><td>RED, BLUE</td></tr></table>`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/uc", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id") {
		case "ok":
			if r.Header.Get("User-Agent") != UserAgent {
				http.Error(w, "bad agent", http.StatusBadRequest)
				return
			}
			fmt.Fprint(w, page)
		case "big":
			fmt.Fprint(w, strings.Repeat("x", 64))
		case "slow":
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	m := metrics.New()
	f := New(Options{URLTemplate: srv.URL + "/uc?id=%s", Metrics: m})

	body, err := f.Fetch(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, page, string(body))

	n, err := testutil.GatherAndCount(m.Registry(), "colorstats_fetch_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFetcher_NonSuccessStatus(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	f := New(Options{URLTemplate: srv.URL + "/uc?id=%s"})

	_, err := f.Fetch(context.Background(), "missing")
	require.Error(t, err)

	var fetchErr *apperrors.FetchError
	require.True(t, errors.As(err, &fetchErr), "want FetchError, got %T", err)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.URL, "id=missing")
	assert.Equal(t, apperrors.ExitErrorIngest, apperrors.ExitCodeFor(err))
}

func TestFetcher_BodyLimit(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	f := New(Options{URLTemplate: srv.URL + "/uc?id=%s", MaxBytes: 16})

	_, err := f.Fetch(context.Background(), "big")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 16 bytes")
}

func TestFetcher_ContextDeadline(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	f := New(Options{URLTemplate: srv.URL + "/uc?id=%s"})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := f.Fetch(ctx, "slow")
	require.Error(t, err)
	assert.True(t, apperrors.IsContextError(err), "want context error, got %v", err)
}

func TestFetcher_TransportError(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	addr := srv.URL
	srv.Close()

	f := New(Options{URLTemplate: addr + "/uc?id=%s"})
	_, err := f.Fetch(context.Background(), "ok")
	require.Error(t, err)

	var fetchErr *apperrors.FetchError
	require.True(t, errors.As(err, &fetchErr), "want FetchError, got %T", err)
	assert.Zero(t, fetchErr.StatusCode)
	assert.Error(t, fetchErr.Err)
	assert.Equal(t, apperrors.ExitErrorIngest, apperrors.ExitCodeFor(err))
}

func TestDocumentURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		id       string
		want     string
		wantErr  bool
	}{
		{"default", DefaultURLTemplate, "1nf9WMDjZWIUnlnKyz7qomEYDdtWfW1Uf", "https://drive.google.com/uc?id=1nf9WMDjZWIUnlnKyz7qomEYDdtWfW1Uf", false},
		{"escaped", DefaultURLTemplate, "a b&c", "https://drive.google.com/uc?id=a+b%26c", false},
		{"trimmed", DefaultURLTemplate, "  abc  ", "https://drive.google.com/uc?id=abc", false},
		{"empty id", DefaultURLTemplate, " ", "", true},
		{"no verb", "https://drive.google.com/uc", "abc", "", true},
		{"two verbs", "https://%s/%s", "abc", "", true},
		{"bad scheme", "file:///tmp/%s", "abc", "", true},
		{"no host", "https:///uc?id=%s", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DocumentURL(tt.template, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				var configErr apperrors.ConfigError
				assert.True(t, errors.As(err, &configErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
