package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/calamaunido/internal/client/models"
	"github.com/dmitrijs2005/calamaunido/internal/common"
	"github.com/dmitrijs2005/calamaunido/internal/netx"
	"github.com/google/uuid"
)

const (
	tokenPath        = "/api/v1/token/"
	categoriesPath   = "/api/v1/categorias/"
	publicationsPath = "/api/v1/publicaciones/"

	requestIDHeader = "X-Request-Id"

	// maxErrorBody bounds how much of an error reply is kept for the message.
	maxErrorBody = 4 << 10
)

type HTTPClient struct {
	baseURL  string
	mediaURL string
	http     *http.Client
	tokens   TokenSource
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (tests use the
// httptest server's client).
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithTimeout sets a per-request timeout on the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.http.Timeout = d }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(h *HTTPClient) { h.tokens = ts }
}

// NewHTTPClient builds a client for the API at baseURL. Evidence paths are
// resolved against mediaURL by plain concatenation.
func NewHTTPClient(baseURL, mediaURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q: scheme and host are required", baseURL)
	}

	c := &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		mediaURL: mediaURL,
		http:     &http.Client{},
		tokens:   TokenSourceFunc(func(context.Context) (string, error) { return "", nil }),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ObtainToken posts credentials to the token endpoint.
//
// A 2xx reply whose body carries "error" or "detail" is still a failure and
// is returned as *APIError with the reply's status.
func (c *HTTPClient) ObtainToken(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, tokenPath, "", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var resp models.TokenResponse
	status, err := c.do(req, &resp)
	if err != nil {
		return nil, err
	}
	if msg := resp.Failure(); msg != "" {
		return nil, &APIError{Status: status, Message: msg}
	}
	if resp.Access == "" {
		return nil, fmt.Errorf("token reply without access token: %w", ErrDecode)
	}
	return &resp, nil
}

// Categories lists every category.
func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	req, err := c.newAuthRequest(ctx, http.MethodGet, categoriesPath, "")
	if err != nil {
		return nil, err
	}

	var out []models.Category
	if _, err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Publications fetches one page of the feed.
func (c *HTTPClient) Publications(ctx context.Context, q PublicationsQuery) (*models.Page, error) {
	req, err := c.newAuthRequest(ctx, http.MethodGet, publicationsPath, q.Encode())
	if err != nil {
		return nil, err
	}

	var page models.Page
	if _, err := c.do(req, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []models.Publication{}
	}
	return &page, nil
}

// EvidenceURL is the media host prefix followed by the server-provided path.
func (c *HTTPClient) EvidenceURL(archivo string) string {
	return c.mediaURL + archivo
}

// DownloadEvidence saves the full-size evidence image to dest.
func (c *HTTPClient) DownloadEvidence(ctx context.Context, archivo, dest string) error {
	if err := netx.DownloadToFile(ctx, c.http, c.EvidenceURL(archivo), dest); err != nil {
		return fmt.Errorf("evidence %s: %w", archivo, err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, rawQuery string, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	return req, nil
}

func (c *HTTPClient) newAuthRequest(ctx context.Context, method, path, rawQuery string) (*http.Request, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, rawQuery, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return req, nil
}

// do sends req and decodes a 2xx JSON body into out. It returns the HTTP
// status alongside the error so callers can report it.
func (c *HTTPClient) do(req *http.Request, out any) (int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, err
		}
		return 0, fmt.Errorf("%s %s: %w: %v", req.Method, req.URL.Path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, errorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%s %s: %w: %v", req.Method, req.URL.Path, ErrDecode, err)
	}
	return resp.StatusCode, nil
}

func errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	msg := ""
	if json.Unmarshal(raw, &body) == nil {
		msg = body.Error
		if msg == "" {
			msg = body.Detail
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
