package sources

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const defaultMaxBytes = 32 << 20

type HTTPOptions struct {
	// Timeout of the whole request. Zero means no timeout.
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
	Client    *http.Client
}

type httpSource struct {
	url    string
	opts   HTTPOptions
	client *http.Client
}

// NewHTTPSource fetches the collection with a single GET. There are no retries.
func NewHTTPSource(url string, opts *HTTPOptions) Source {
	o := HTTPOptions{}
	if opts != nil {
		o = *opts
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = defaultMaxBytes
	}
	if o.UserAgent == "" {
		o.UserAgent = "eotracker"
	}

	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	}

	return &httpSource{
		url:    url,
		opts:   o,
		client: client,
	}
}

func (s *httpSource) Name() string {
	return s.url
}

func (s *httpSource) Load(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, newFetchError(s, errors.Wrap(err, "create request"))
	}

	req.Header.Set("User-Agent", s.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, newFetchError(s, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newFetchError(s, errors.Errorf("unexpected status %v", resp.Status))
	}

	result, err := Decode(io.LimitReader(resp.Body, s.opts.MaxBytes))
	if err != nil {
		return nil, newFetchError(s, err)
	}

	return result, nil
}
