// Package imagestore downloads remote images, such as carrier logos and
// vehicle photos, into a local directory. Saving is idempotent on the
// destination path, so repeated runs never re-download an archived image.
package imagestore

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const fetchTimeout = 30 * time.Second

// Archiver saves remote images to disk. Failures are logged and reported as
// an empty path, never as an error: a missing logo must not fail the search
// that referenced it.
type Archiver struct {
	http   *http.Client
	logger *log.Logger
}

// Option customizes an Archiver.
type Option func(*Archiver)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(a *Archiver) { a.http = h }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Archiver) { a.logger = l }
}

// New creates an Archiver.
func New(opts ...Option) *Archiver {
	a := &Archiver{
		http:   &http.Client{Timeout: fetchTimeout},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Save downloads rawURL into dir and returns the local path, creating dir
// when needed. The file name is the URL's final path segment with spaces
// replaced by dashes. An already archived image is not fetched again. On
// any failure Save logs a warning and returns "".
func (a *Archiver) Save(ctx context.Context, rawURL, dir string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		a.logger.Warn("image URL not parsable", "url", rawURL, "err", err)
		return ""
	}
	name := strings.ReplaceAll(path.Base(u.Path), " ", "-")
	if name == "" || name == "." || name == "/" {
		a.logger.Warn("image has no usable name", "url", rawURL)
		return ""
	}
	dest := filepath.Join(dir, name)
	if _, err := os.Stat(dest); err == nil {
		return dest
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		a.logger.Warn("image directory not writable", "dir", dir, "err", err)
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		a.logger.Warn("image fetch failed", "url", rawURL, "err", err)
		return ""
	}
	resp, err := a.http.Do(req)
	if err != nil {
		a.logger.Warn("image fetch failed", "url", rawURL, "err", err)
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("image fetch failed", "url", rawURL, "status", resp.StatusCode)
		return ""
	}

	f, err := os.Create(dest)
	if err != nil {
		a.logger.Warn("image not writable", "path", dest, "err", err)
		return ""
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(dest)
		a.logger.Warn("image write failed", "path", dest, "err", err)
		return ""
	}
	if err := f.Close(); err != nil {
		a.logger.Warn("image write failed", "path", dest, "err", err)
		return ""
	}
	return dest
}
