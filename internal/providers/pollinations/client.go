package pollinations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/infra"
)

// DefaultBaseURL is the public Pollinations text-to-image endpoint. The prompt
// is appended as a single path segment.
const DefaultBaseURL = "https://image.pollinations.ai/prompt"

const defaultUserAgent = "nistha-image-generator/1.0"

// Options controls how the Pollinations client is configured.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	// Timeout applies only when HTTPClient is nil. Zero leaves the request
	// bounded by the transport alone.
	Timeout   time.Duration
	UserAgent string
	Logger    *infra.Logger
}

// Client fetches generated images over plain HTTP GET.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *infra.Logger
}

// NewClient builds a client, applying defaults for empty options.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	ua := strings.TrimSpace(opts.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		httpClient: client,
		baseURL:    base,
		userAgent:  ua,
		logger:     opts.Logger,
	}
}

// BaseURL returns the configured endpoint without a trailing slash.
func (c *Client) BaseURL() string {
	if c == nil {
		return DefaultBaseURL
	}
	return c.baseURL
}

// Fetch issues a single GET for rawURL and returns the body as an image.
// Non-2xx responses yield *domain.ResponseError and failures before a
// response yield *domain.TransportError.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*domain.Image, error) {
	if c == nil {
		return nil, errors.New("pollinations: client not configured")
	}
	if _, err := url.Parse(rawURL); err != nil {
		return nil, &domain.TransportError{URL: rawURL, Err: fmt.Errorf("invalid url: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &domain.TransportError{URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "image/*")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.debug(rawURL, 0, start, err)
		return nil, &domain.TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.debug(rawURL, resp.StatusCode, start, nil)
		return nil, &domain.ResponseError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.debug(rawURL, resp.StatusCode, start, err)
		return nil, &domain.TransportError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}
	contentType := strings.TrimSpace(resp.Header.Get("Content-Type"))
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = http.DetectContentType(data)
	}
	c.debug(rawURL, resp.StatusCode, start, nil)
	return &domain.Image{Data: data, ContentType: contentType}, nil
}

func (c *Client) debug(rawURL string, status int, start time.Time, err error) {
	if c.logger == nil {
		return
	}
	evt := c.logger.Debug()
	if err != nil {
		evt = c.logger.Warn().Err(err)
	}
	evt.Str("url", rawURL).
		Int("status", status).
		Dur("elapsed", time.Since(start)).
		Msg("pollinations: fetch")
}
