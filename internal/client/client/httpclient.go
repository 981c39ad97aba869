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

	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/logging"
	"github.com/google/uuid"
)

const maxErrorBody = 64 << 10

// HTTPClient implements Client against the backend's JSON API.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
}

// Option configures an HTTPClient.
type Option func(*options)

type options struct {
	timeout time.Duration
	base    http.RoundTripper
	log     logging.Logger
}

// WithTimeout sets the per-request timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRoundTripper replaces the underlying transport.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewHTTPClient returns a client for the backend at baseURL. Requests carry
// the credential from creds.
func NewHTTPClient(baseURL string, creds CredentialSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	o := options{base: http.DefaultTransport, log: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &HTTPClient{
		baseURL: u,
		http: &http.Client{
			Timeout: o.timeout,
			Transport: &authTransport{
				next:  o.base,
				creds: creds,
				log:   o.log.With(logging.FieldComponent, logging.ComponentGateway),
			},
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges username and password for an access token. The backend
// expects an OAuth2 password form.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tr tokenResponse
	if err := c.do(req, &tr); err != nil {
		return "", err
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("login response without access_token: %w", ErrUnavailable)
	}
	return tr.AccessToken, nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/auth/signup", body, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, "/account-holders/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Accounts(ctx context.Context) ([]models.Account, error) {
	var out []models.Account
	if err := c.doJSON(ctx, http.MethodGet, "/accounts/me", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Cards(ctx context.Context) ([]models.Card, error) {
	var out []models.Card
	if err := c.doJSON(ctx, http.MethodGet, "/cards/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Transactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	var out []models.Transaction
	path := "/accounts/" + accountID.String() + "/transactions/"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Statement(ctx context.Context, accountID uuid.UUID) (*models.Statement, error) {
	var st models.Statement
	path := "/accounts/" + accountID.String() + "/statement/"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) Transfer(ctx context.Context, tr models.TransferRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/transfers/", tr, nil)
}

type liveResponse struct {
	Status string `json:"status"`
}

// Ping checks the liveness probe.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var lr liveResponse
	if err := c.doJSON(ctx, http.MethodGet, "/live", nil, &lr); err != nil {
		return err
	}
	if !strings.EqualFold(lr.Status, "ok") {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%s %s: %w: %v", req.Method, req.URL.Path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newAPIError(resp.StatusCode, b)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
