package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

// maxBankSize caps how much of a question bank is read.
const maxBankSize = 16 << 20

// Fetcher retrieves the raw bytes of a question bank.
type Fetcher interface {
	Fetch(ctx context.Context, dataPath string) ([]byte, error)
}

// FSFetcher reads banks from a filesystem rooted at the data directory.
type FSFetcher struct {
	fsys fs.FS
}

// NewDirFetcher reads banks below root.
func NewDirFetcher(root string) *FSFetcher {
	return &FSFetcher{fsys: os.DirFS(root)}
}

// NewFSFetcher reads banks from fsys.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

func (f *FSFetcher) Fetch(ctx context.Context, dataPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(path.Clean("/"+dataPath), "/")
	if name == "" {
		return nil, fmt.Errorf("empty data path")
	}
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dataPath, err)
	}
	return data, nil
}

// StatusError reports a non-2xx response for a bank.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d %s fetching %s", e.Code, http.StatusText(e.Code), e.URL)
}

// HTTPFetcher resolves data paths against a base URL.
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPFetcher creates a fetcher for banks served under baseURL. A nil
// client gets a default with a 30s timeout.
func NewHTTPFetcher(baseURL string, client *http.Client) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPFetcher{base: u, client: client}, nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, dataPath string) ([]byte, error) {
	ref, err := url.Parse(dataPath)
	if err != nil {
		return nil, fmt.Errorf("parsing data path %q: %w", dataPath, err)
	}
	target := f.base.ResolveReference(ref).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: target}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBankSize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	return data, nil
}

// NewFetcher picks a fetcher for source: an http(s) base URL or a directory.
func NewFetcher(source string) (Fetcher, error) {
	source = strings.TrimSpace(source)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewHTTPFetcher(source, nil)
	}
	if source == "" {
		source = "."
	}
	return NewDirFetcher(source), nil
}
