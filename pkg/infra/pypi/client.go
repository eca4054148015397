package pypi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// HostedURLPrefix is the prefix of download URLs served by PyPI
const HostedURLPrefix = "https://files.pythonhosted.org/packages/"

const defaultBaseURL = "https://pypi.org/pypi"

var sdistName = regexp.MustCompile(`^(.+)-[a-zA-Z\d.]+$`)

var archiveSuffixes = []string{".tar.gz", ".tar.bz2", ".tar.xz", ".tgz", ".zip"}

// Client resolves PyPI download URLs through the PyPI JSON API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for Client
type Option func(*Client)

// WithBaseURL overrides the PyPI JSON API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PackageName returns the distribution name of a files.pythonhosted.org URL, or
// ok=false if oldURL is not hosted by PyPI
func PackageName(oldURL string) (string, bool) {
	if !strings.HasPrefix(oldURL, HostedURLPrefix) {
		return "", false
	}

	u, err := url.Parse(oldURL)
	if err != nil {
		return "", false
	}
	file := path.Base(u.Path)

	if name, found := strings.CutSuffix(file, ".whl"); found {
		before, _, ok := strings.Cut(name, "-")
		return before, ok && before != ""
	}

	stem := file
	for _, suffix := range archiveSuffixes {
		if s, found := strings.CutSuffix(stem, suffix); found {
			stem = s
			break
		}
	}

	m := sdistName.FindStringSubmatch(stem)
	if m == nil {
		return "", false
	}
	return m[1], true
}

type releaseInfo struct {
	URLs []struct {
		PackageType string `json:"packagetype"`
		URL         string `json:"url"`
	} `json:"urls"`
}

// UpdateURL returns the source distribution URL of version for the package that
// oldURL belongs to. ok is false when oldURL is not a PyPI download URL, or when
// PyPI has no source distribution for version. Only transport and decoding
// failures are errors.
func (c *Client) UpdateURL(ctx context.Context, oldURL, version string) (string, bool, error) {
	name, ok := PackageName(oldURL)
	if !ok {
		return "", false, nil
	}

	endpoint := c.baseURL + "/" + url.PathEscape(name) + "/" + url.PathEscape(version) + "/json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, goerr.Wrap(err, "failed to create PyPI request", goerr.V("url", endpoint))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, goerr.Wrap(err, "failed to query PyPI", goerr.V("url", endpoint))
	}
	defer resp.Body.Close()

	// a release missing on PyPI falls back to a plain version bump
	if resp.StatusCode != http.StatusOK {
		ctxlog.From(ctx).Debug("PyPI release not available, skipping URL rewrite",
			"status", resp.StatusCode,
			"package", name,
			"version", version,
		)
		return "", false, nil
	}

	var info releaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", false, goerr.Wrap(err, "failed to decode PyPI response", goerr.V("package", name))
	}

	for _, u := range info.URLs {
		if u.PackageType == "sdist" {
			return u.URL, true, nil
		}
	}

	ctxlog.From(ctx).Debug("No source distribution on PyPI, skipping URL rewrite",
		"package", name,
		"version", version,
	)
	return "", false, nil
}
