// Package fetch retrieves source documents over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/agbru/colorstats/internal/errors"
	"github.com/agbru/colorstats/internal/logging"
	"github.com/agbru/colorstats/internal/metrics"
)

const (
	// DefaultURLTemplate is the Google Drive direct-download endpoint. The
	// single %s verb receives the URL-escaped document ID.
	DefaultURLTemplate = "https://drive.google.com/uc?id=%s"

	// DefaultTimeout bounds a single retrieval.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBytes caps the accepted document size.
	DefaultMaxBytes int64 = 10 << 20

	// UserAgent identifies colorstats to remote servers.
	UserAgent = "colorstats/1.0 (+https://github.com/agbru/colorstats)"
)

// Options configures a Fetcher. Zero values select the defaults.
type Options struct {
	URLTemplate string
	Timeout     time.Duration
	MaxBytes    int64
	Client      *http.Client
	Logger      logging.Logger
	Metrics     *metrics.Metrics
}

// Fetcher performs document retrievals.
type Fetcher struct {
	client      *http.Client
	urlTemplate string
	maxBytes    int64
	logger      logging.Logger
	metrics     *metrics.Metrics
}

// New builds a Fetcher from opts.
func New(opts Options) *Fetcher {
	f := &Fetcher{
		client:      opts.Client,
		urlTemplate: opts.URLTemplate,
		maxBytes:    opts.MaxBytes,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
	}
	if f.urlTemplate == "" {
		f.urlTemplate = DefaultURLTemplate
	}
	if f.maxBytes <= 0 {
		f.maxBytes = DefaultMaxBytes
	}
	if f.logger == nil {
		f.logger = logging.Nop()
	}
	if f.client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		f.client = &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		}
	}
	return f
}

// DocumentURL expands the URL template for id and validates the result.
func (f *Fetcher) DocumentURL(id string) (string, error) {
	return DocumentURL(f.urlTemplate, id)
}

// DocumentURL expands template for id and validates the result.
func DocumentURL(template, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apperrors.NewConfigError("document ID must not be empty")
	}
	if strings.Count(template, "%s") != 1 {
		return "", apperrors.NewConfigError("URL template %q must contain exactly one %%s", template)
	}

	raw := fmt.Sprintf(template, url.QueryEscape(id))
	u, err := url.Parse(raw)
	if err != nil {
		return "", apperrors.NewConfigError("invalid document URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", apperrors.NewConfigError("document URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", apperrors.NewConfigError("document URL %q has no host", raw)
	}
	return raw, nil
}

// Fetch retrieves the document identified by id. Every retrieval failure,
// from transport errors to non-2xx responses and oversized bodies, is an
// *apperrors.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	rawURL, err := f.DocumentURL(id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	body, err := f.get(ctx, rawURL)
	elapsed := time.Since(start)

	outcome := metrics.FetchSuccess
	var fetchErr *apperrors.FetchError
	switch {
	case errors.As(err, &fetchErr) && fetchErr.Err == nil:
		outcome = metrics.FetchHTTPError
	case err != nil:
		outcome = metrics.FetchTransportError
	}
	f.metrics.ObserveFetch(outcome, elapsed, len(body))

	if err != nil {
		f.logger.Debug("document retrieval failed",
			logging.String("url", rawURL),
			logging.String("outcome", outcome),
			logging.Duration("elapsed", elapsed))
		return nil, err
	}

	f.logger.Debug("document retrieved",
		logging.String("url", rawURL),
		logging.Int("bytes", len(body)),
		logging.Duration("elapsed", elapsed))
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, apperrors.WrapError(err, "build request")
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &apperrors.FetchError{URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &apperrors.FetchError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, &apperrors.FetchError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}
	if int64(len(body)) > f.maxBytes {
		return nil, &apperrors.FetchError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status,
			Err: fmt.Errorf("document exceeds %d bytes", f.maxBytes)}
	}
	return body, nil
}
