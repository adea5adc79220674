package digest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the host answers a digest or index request
// with a non-OK status.
var ErrNotFound = errors.New("digest: not found")

// IndexFile is the name of the optional date index inside the digests folder.
const IndexFile = "index.json"

// Source reads the static digest layout: an optional index of date strings
// plus one markdown document per date.
type Source interface {
	// Index returns the dates listed in the index document.
	Index(ctx context.Context) ([]string, error)
	// Exists probes for a date's document without downloading it.
	Exists(ctx context.Context, date Date) (bool, error)
	// Fetch returns the raw document for date.
	Fetch(ctx context.Context, date Date) ([]byte, error)
}

// HTTPSource reads digests from a static file host.
type HTTPSource struct {
	base       *url.URL
	dir        string
	httpClient *http.Client
}

// NewHTTPSource creates an HTTPSource rooted at baseURL. dir is the folder
// holding the digests relative to the base ("digests" by default).
func NewHTTPSource(baseURL, dir string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPSource{
		base: u,
		dir:  strings.Trim(dir, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// URL returns the absolute URL of a file inside the digests folder.
func (s *HTTPSource) URL(name string) string {
	ref := &url.URL{Path: name}
	if s.dir != "" {
		ref.Path = s.dir + "/" + name
	}
	return s.base.ResolveReference(ref).String()
}

// Index fetches and decodes the JSON index.
func (s *HTTPSource) Index(ctx context.Context) ([]string, error) {
	body, err := s.get(ctx, http.MethodGet, s.URL(IndexFile))
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	return decodeIndex(body)
}

// decodeIndex accepts only a JSON array whose elements are all strings.
func decodeIndex(data []byte) ([]string, error) {
	var raw []*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decode index: not an array")
	}
	dates := make([]string, len(raw))
	for i, d := range raw {
		if d == nil {
			return nil, fmt.Errorf("decode index: element %d is null", i)
		}
		dates[i] = *d
	}
	return dates, nil
}

// Exists issues a HEAD request for the date's document.
func (s *HTTPSource) Exists(ctx context.Context, date Date) (bool, error) {
	_, err := s.get(ctx, http.MethodHead, s.URL(date.String()+".md"))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Fetch downloads the date's document.
func (s *HTTPSource) Fetch(ctx context.Context, date Date) ([]byte, error) {
	body, err := s.get(ctx, http.MethodGet, s.URL(date.String()+".md"))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", date, err)
	}
	return body, nil
}

func (s *HTTPSource) get(ctx context.Context, method, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s %s: status %d", ErrNotFound, method, target, resp.StatusCode)
	}
	if method == http.MethodHead {
		return nil, nil
	}
	return io.ReadAll(resp.Body)
}
