// Package fetch loads conversation pages from the web or the local disk.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// MaxPageSize bounds how much of a response body is read. Long conversations
// are large but not this large.
const MaxPageSize = 32 << 20

var ErrTooLarge = errors.New("page exceeds size limit")

// Resource is a loaded page and where it came from.
type Resource struct {
	Location    *url.URL
	ContentType string
	Body        []byte
	ModTime     time.Time
}

// IsFile reports whether the resource was read from disk.
func (r Resource) IsFile() bool {
	return r.Location != nil && r.Location.Scheme == "file"
}

type Client struct {
	userAgent  string
	http       *http.Client
	maxTries   uint
	newBackOff func() backoff.BackOff
}

func NewClient(userAgent string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = "threadnav"
	}
	return &Client{
		userAgent: userAgent,
		http:      httpClient,
		maxTries:  3,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// Load reads target, which is either an http(s) URL or a path on disk.
func (c *Client) Load(ctx context.Context, target string) (Resource, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Resource{}, fmt.Errorf("load page: empty target")
	}
	if u, err := url.Parse(target); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return c.Fetch(ctx, u)
	}
	path, _ := LocalPath(target)
	return ReadFile(path)
}

// LocalPath reports whether target names a file on disk and returns its
// path. file:// URLs are unwrapped.
func LocalPath(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	if u, err := url.Parse(target); err == nil {
		switch u.Scheme {
		case "http", "https":
			return "", false
		case "file":
			return filepath.FromSlash(u.Path), u.Path != ""
		}
	}
	return target, true
}

// Fetch downloads a shared conversation page. Transport errors and 5xx
// responses are retried; anything else fails immediately.
func (c *Client) Fetch(ctx context.Context, u *url.URL) (Resource, error) {
	return backoff.Retry(ctx, func() (Resource, error) {
		return c.fetchOnce(ctx, u)
	}, backoff.WithBackOff(c.newBackOff()), backoff.WithMaxTries(c.maxTries))
}

func (c *Client) fetchOnce(ctx context.Context, u *url.URL) (Resource, error) {
	req, err := c.newRequest(ctx, u)
	if err != nil {
		return Resource{}, backoff.Permanent(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Resource{}, backoff.Permanent(fmt.Errorf("fetch %s request failed: %w", u.Host, err))
		}
		return Resource{}, fmt.Errorf("fetch %s request failed: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("fetch %s failed with status %d: %s", u.Host, resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode >= http.StatusInternalServerError {
			return Resource{}, err
		}
		return Resource{}, backoff.Permanent(err)
	}

	body, err := readLimited(resp.Body)
	if err != nil {
		return Resource{}, backoff.Permanent(fmt.Errorf("read %s response: %w", u.Host, err))
	}

	location := resp.Request.URL
	if location == nil {
		location = u
	}
	modTime := time.Now()
	if lm, err := http.ParseTime(resp.Header.Get("Last-Modified")); err == nil {
		modTime = lm
	}
	return Resource{
		Location:    location,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		ModTime:     modTime,
	}, nil
}

// ReadFile loads a saved page or transcript from disk.
func ReadFile(path string) (Resource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Resource{}, fmt.Errorf("resolve path %q: %w", path, err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return Resource{}, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Resource{}, fmt.Errorf("stat page: %w", err)
	}
	if info.IsDir() {
		return Resource{}, fmt.Errorf("open page: %s is a directory", abs)
	}
	body, err := readLimited(f)
	if err != nil {
		return Resource{}, fmt.Errorf("read page: %w", err)
	}
	return Resource{
		Location:    &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)},
		ContentType: contentTypeFor(abs),
		Body:        body,
		ModTime:     info.ModTime(),
	}, nil
}

func (c *Client) newRequest(ctx context.Context, u *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/markdown;q=0.9,*/*;q=0.5")
	return req, nil
}

func readLimited(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, MaxPageSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxPageSize {
		return nil, ErrTooLarge
	}
	return body, nil
}

func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return "text/markdown"
	default:
		return "text/html"
	}
}
