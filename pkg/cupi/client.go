package cupi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 30 * time.Second

// Client talks to the Cisco Unity Connection Provisioning Interface
// (CUPI) on a single server. It authenticates with HTTP basic auth and
// reuses the JSESSIONID cookie the appliance hands back, so repeated
// calls do not re-run the expensive login on every request.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	jar        http.CookieJar
	session    *sessionTracker
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	scheme     string
	timeout    time.Duration
	insecure   bool
	httpClient *http.Client
}

// WithInsecureTLS disables TLS certificate verification. Unity
// Connection appliances ship with self-signed certificates, so most
// deployments need this.
func WithInsecureTLS() Option {
	return func(o *clientOptions) { o.insecure = true }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithScheme overrides the URL scheme. The default is https; http is
// occasionally useful against lab boxes.
func WithScheme(scheme string) Option {
	return func(o *clientOptions) { o.scheme = scheme }
}

// WithHTTPClient supplies a custom *http.Client. A cookie jar is
// attached if the client does not already have one.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// NewClient creates a CUPI client for the given Unity Connection host.
// The user must hold a role with REST API access (typically System
// Administrator or Remote Administrator).
func NewClient(host, username, password string, opts ...Option) *Client {
	options := clientOptions{
		scheme:  "https",
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.timeout,
		}
		if options.insecure {
			httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			}
		}
	}

	if httpClient.Jar == nil {
		// cookiejar.New only errors on bad PublicSuffixList options
		jar, _ := cookiejar.New(nil)
		httpClient.Jar = jar
	}

	return &Client{
		baseURL:    BuildBaseURL(options.scheme, host),
		username:   username,
		password:   password,
		httpClient: httpClient,
		jar:        httpClient.Jar,
		session:    newSessionTracker(),
	}
}

// BaseURL returns the /vmrest base URL the client issues requests
// against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks that the server answers on the REST interface and that
// the credentials are accepted. It returns the HTTP status code.
func (c *Client) Ping(ctx context.Context) (int, error) {
	req, err := c.newRequest(ctx, http.MethodGet, BuildVersionURL(c.baseURL), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// newRequest builds a request with the headers CUPI expects on every
// call: JSON accept/content types and basic auth.
func (c *Client) newRequest(ctx context.Context, method, rawURL string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.username, c.password)

	return req, nil
}

// do issues a request and decodes the JSON response into target. A
// non-2xx status is returned as *HTTPError tagged with operation. If a
// reused session cookie has gone stale (401 on a tracked session) the
// jar is cleared and the request retried once with fresh basic auth.
func (c *Client) do(ctx context.Context, method, rawURL string, body, target interface{}, operation string) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s payload: %w", operation, err)
		}
	}

	resp, err := c.roundTrip(ctx, method, rawURL, payload, operation)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return NewHTTPError(resp.StatusCode, resp.Status, operation)
	}

	c.session.markEstablished()

	if target == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}

	return nil
}

// doForObjectID issues a creating request and returns the ObjectId of
// the new resource. CUPI answers resource creation with the URI of the
// created object; the ObjectId is its last path segment.
func (c *Client) doForObjectID(ctx context.Context, method, rawURL string, body interface{}, operation string) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s payload: %w", operation, err)
	}

	resp, err := c.roundTrip(ctx, method, rawURL, payload, operation)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", NewHTTPError(resp.StatusCode, resp.Status, operation)
	}

	c.session.markEstablished()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s response: %w", operation, err)
	}

	uri := strings.TrimSpace(string(bodyBytes))
	if location := resp.Header.Get("Location"); uri == "" && location != "" {
		uri = location
	}
	if uri == "" {
		return "", fmt.Errorf("%s: no object URI in response", operation)
	}

	segments := strings.Split(strings.TrimSuffix(uri, "/"), "/")
	return segments[len(segments)-1], nil
}

// roundTrip sends the request, retrying once with a clean cookie jar
// when a tracked session cookie is rejected with 401.
func (c *Client) roundTrip(ctx context.Context, method, rawURL string, payload []byte, operation string) (*http.Response, error) {
	log.Debug().Str("method", method).Str("url", rawURL).Str("operation", operation).Msg("CUPI request")

	req, err := c.newRequest(ctx, method, rawURL, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", operation, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && c.session.active() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		log.Debug().Str("operation", operation).Msg("Stale session cookie, retrying with fresh auth")
		c.resetSession()

		req, err = c.newRequest(ctx, method, rawURL, payload)
		if err != nil {
			return nil, err
		}
		resp, err = c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s retry failed: %w", operation, err)
		}
	}

	return resp, nil
}

// resetSession drops the tracked session and all cookies so the next
// request authenticates from scratch.
func (c *Client) resetSession() {
	c.session.reset()
	jar, _ := cookiejar.New(nil)
	c.httpClient.Jar = jar
	c.jar = jar
}

// get issues a GET and decodes the collection or object response.
func (c *Client) get(ctx context.Context, rawURL string, target interface{}, operation string) error {
	return c.do(ctx, http.MethodGet, rawURL, nil, target, operation)
}

// listQuery renders ListOptions into CUPI query parameters.
func listQuery(rawURL string, opts *ListOptions) string {
	if opts == nil {
		return rawURL
	}

	values := url.Values{}
	if opts.RowsPerPage > 0 {
		values.Set("rowsPerPage", fmt.Sprintf("%d", opts.RowsPerPage))
	}
	if opts.PageNumber > 0 {
		values.Set("pageNumber", fmt.Sprintf("%d", opts.PageNumber))
	}
	if opts.Query != "" {
		values.Set("query", opts.Query)
	}

	if len(values) == 0 {
		return rawURL
	}
	return rawURL + "?" + values.Encode()
}

// ListOptions controls paging and filtering on collection requests.
// Query is CUPI's filter expression syntax, e.g. "(Alias is operator)".
type ListOptions struct {
	PageNumber  int
	RowsPerPage int
	Query       string
}
