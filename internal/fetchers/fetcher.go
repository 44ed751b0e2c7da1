package fetchers

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nuraksworld/sl-market-friend-data/internal/logger"
)

// HTTPError reports a failed source fetch: transport failure or a
// non-200 response. The URL it carries is already sanitized.
type HTTPError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Client fetches raw payloads from the external sources.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// New creates a fetch client with a bounded timeout and retry policy.
func New(timeout time.Duration, retries int) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(retries)
	client.SetRetryWaitTime(2 * time.Second)
	client.SetHeader("User-Agent", "sl-market-friend-data/1.0")

	return &Client{
		http: client,
		log:  logger.Global().WithComponent("fetchers"),
	}
}

// FetchText fetches a URL and returns the raw response body.
func (c *Client) FetchText(ctx context.Context, rawURL string) ([]byte, error) {
	return c.fetch(ctx, rawURL, "")
}

// FetchJSON fetches a URL advertising a JSON accept header and returns
// the raw response body. Decoding is left to the extractor.
func (c *Client) FetchJSON(ctx context.Context, rawURL string) ([]byte, error) {
	return c.fetch(ctx, rawURL, "application/json")
}

func (c *Client) fetch(ctx context.Context, rawURL, accept string) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if accept != "" {
		req.SetHeader("Accept", accept)
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		return nil, &HTTPError{URL: SanitizeURL(rawURL), Err: err}
	}
	if resp.StatusCode() != 200 {
		return nil, &HTTPError{URL: SanitizeURL(rawURL), StatusCode: resp.StatusCode()}
	}

	c.log.Debugf("fetched %s (%d bytes)", SanitizeURL(rawURL), len(resp.Body()))
	return resp.Body(), nil
}

// SanitizeURL strips query parameters and fragments so keys embedded in
// source URLs never reach diagnostics or provenance fields.
func SanitizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		// Unparseable input: cut at the first query separator.
		if i := strings.IndexByte(rawURL, '?'); i >= 0 {
			return rawURL[:i]
		}
		return rawURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// maxDiagnosticLen bounds diagnostic strings recorded in snapshots.
const maxDiagnosticLen = 300

// Diagnostic converts an error into a snapshot-safe diagnostic string:
// query strings inside embedded URLs are stripped and the result is
// truncated.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	msg := scrubQueryParams(err.Error())
	runes := []rune(msg)
	if len(runes) > maxDiagnosticLen {
		return string(runes[:maxDiagnosticLen]) + "..."
	}
	return msg
}

// scrubQueryParams removes ?query suffixes from URL-looking tokens in a
// message while leaving the rest of the text intact.
func scrubQueryParams(msg string) string {
	fields := strings.Fields(msg)
	for i, f := range fields {
		if strings.Contains(f, "://") {
			if q := strings.IndexByte(f, '?'); q >= 0 {
				fields[i] = f[:q]
			}
		}
	}
	return strings.Join(fields, " ")
}
