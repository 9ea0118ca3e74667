// Package hibp provides an intel.Client implementation backed by the
// Have I Been Pwned APIs: the public pwned-passwords range endpoint and the
// credentialed breachedaccount endpoint.
package hibp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"breachwatch/pkg/intel"
	"breachwatch/pkg/serrors"
)

const (
	// DefaultRangeEndpoint is the pwned-passwords k-anonymity range API.
	DefaultRangeEndpoint = "https://api.pwnedpasswords.com/range/"
	// DefaultAccountEndpoint is the per-email breach lookup API.
	DefaultAccountEndpoint = "https://haveibeenpwned.com/api/v3/breachedaccount/"
	// DefaultUserAgent identifies this client to the provider, which rejects
	// requests without one.
	DefaultUserAgent = "breachwatch/1.0"
)

// Options configure the provider client. Zero-valued endpoints and user agent
// fall back to the defaults above; an empty APIKey leaves the account
// endpoint unusable (HasCredential reports false).
type Options struct {
	// APIKey is the credential for the account endpoint.
	APIKey string
	// UserAgent is sent on every request.
	UserAgent string
	// RangeEndpoint overrides the password-range base URL.
	RangeEndpoint string
	// AccountEndpoint overrides the email-breach base URL.
	AccountEndpoint string
}

// Client talks to the Have I Been Pwned REST APIs and fulfills the
// intel.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient      *http.Client
	apiKey          string
	userAgent       string
	rangeEndpoint   string
	accountEndpoint string
}

// Ensure Client conforms to the intel.Client interface at compile time.
var _ intel.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client and options.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.RangeEndpoint == "" {
		opts.RangeEndpoint = DefaultRangeEndpoint
	}
	if opts.AccountEndpoint == "" {
		opts.AccountEndpoint = DefaultAccountEndpoint
	}

	return &Client{
		httpClient:      httpClient,
		apiKey:          opts.APIKey,
		userAgent:       opts.UserAgent,
		rangeEndpoint:   opts.RangeEndpoint,
		accountEndpoint: opts.AccountEndpoint,
	}
}

// HasCredential reports whether an API key is configured.
func (c *Client) HasCredential() bool { return c.apiKey != "" }

// PasswordRange fetches the suffix/count records for a 5-character digest
// prefix. The response body is plain text, one `SUFFIX:COUNT` record per
// line; malformed lines are skipped and malformed counts parsed as 0.
func (c *Client) PasswordRange(ctx context.Context, prefix string) ([]intel.RangeEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rangeEndpoint+prefix, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "range query throttled: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable, "range query failed with status %d", resp.StatusCode)
	}

	return ParseRange(string(b)), nil
}

// ParseRange decodes a range-endpoint body into entries. Lines may end in
// \n or \r\n; blank lines and lines without a colon are ignored.
func ParseRange(body string) []intel.RangeEntry {
	lines := strings.Split(body, "\n")
	entries := make([]intel.RangeEntry, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		suffix, countStr, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		count, err := strconv.ParseInt(strings.TrimSpace(countStr), 10, 64)
		if err != nil || count < 0 {
			count = 0
		}

		entries = append(entries, intel.RangeEntry{Suffix: suffix, Count: count})
	}

	return entries
}

// AccountBreaches fetches the full (non-truncated) breach list for an email.
// The email is URL-escaped into the path. Provider statuses map to:
// 404 → empty list, nil error; 401/403 → ErrUnauthorized; other non-2xx →
// ErrUnavailable.
func (c *Client) AccountBreaches(ctx context.Context, email string) ([]json.RawMessage, error) {
	u := c.accountEndpoint + url.PathEscape(email) + "?truncateResponse=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("hibp-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		// the account is not in any known breach; a valid, cacheable answer
		return []json.RawMessage{}, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, serrors.With(serrors.ErrUnauthorized, "provider rejected credential with status %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, serrors.With(serrors.ErrUnavailable, "account lookup failed with status %d", resp.StatusCode)
	}

	var breaches []json.RawMessage
	if err := json.Unmarshal(b, &breaches); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return breaches, nil
}
