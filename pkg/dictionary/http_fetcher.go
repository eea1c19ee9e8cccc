package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// DefaultBaseURL is the public mirror of the game's asset tree.
const DefaultBaseURL = "https://raw.githubusercontent.com/InventivetalentDev/minecraft-assets"

// DefaultMaxBodySize bounds a single dictionary download.
const DefaultMaxBodySize int64 = 16 << 20

// HTTPFetcher downloads dictionaries with a single GET per call. It does not
// retry and uses the client's own timeouts.
type HTTPFetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
	maxBody   int64
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithBaseURL points the fetcher at another mirror of the asset tree.
func WithBaseURL(base string) HTTPOption {
	return func(f *HTTPFetcher) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			f.baseURL = base
		}
	}
}

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithUserAgent sets the User-Agent request header.
func WithUserAgent(ua string) HTTPOption {
	return func(f *HTTPFetcher) { f.userAgent = ua }
}

// WithMaxBodySize limits how many bytes are read from a response.
func WithMaxBodySize(n int64) HTTPOption {
	return func(f *HTTPFetcher) {
		if n > 0 {
			f.maxBody = n
		}
	}
}

// NewHTTPFetcher creates an HTTPFetcher for DefaultBaseURL unless overridden.
func NewHTTPFetcher(opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:  http.DefaultClient,
		baseURL: DefaultBaseURL,
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the address of a dictionary:
// <base>/<version>/assets/minecraft/lang/<lang>.json
func (f *HTTPFetcher) URL(lang catalog.Language, version catalog.Version) string {
	return f.baseURL + "/" + AssetPath(lang, version)
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, lang catalog.Language, version catalog.Version) ([]byte, error) {
	if err := validateTarget(lang, version); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(lang, version), nil)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Join(ErrFetch, ErrDictionaryNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errors.Join(ErrFetch, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	if int64(len(body)) > f.maxBody {
		return nil, errors.Join(ErrFetch, ErrBodyTooLarge)
	}
	return body, nil
}
