package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/common"
	"github.com/dmitrijs2005/expensetracker/internal/logging"
	"github.com/google/uuid"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
	profilePath  = "/api/profile"
)

// HTTPClient implements Client with JSON requests over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL. A zero
// timeout leaves the transport default in place.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api url %q: scheme and host are required", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, form models.LoginForm) (*models.AuthResponse, error) {
	return c.authenticate(ctx, loginPath, form)
}

func (c *HTTPClient) Register(ctx context.Context, form models.RegisterForm) (*models.AuthResponse, error) {
	return c.authenticate(ctx, registerPath, form)
}

func (c *HTTPClient) authenticate(ctx context.Context, path string, form any) (*models.AuthResponse, error) {
	resp := &models.AuthResponse{}
	if err := c.do(ctx, http.MethodPost, path, "", form, resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: no token in response", ErrMalformedResponse)
	}
	return resp, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	p := &models.Profile{}
	if err := c.do(ctx, http.MethodGet, profilePath, token, nil, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, form models.TargetsForm) (*models.Profile, error) {
	p := &models.Profile{}
	if err := c.do(ctx, http.MethodPut, profilePath, token, form, p); err != nil {
		return nil, err
	}
	return p, nil
}

// do sends one request and decodes a 2xx JSON body into out. The bearer
// header is only set when token is not empty.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	log := c.logger.With("method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug(ctx, "reading response failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: parseErrorBody(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// parseErrorBody returns nil unless b is a JSON object.
func parseErrorBody(b []byte) *models.ErrorBody {
	eb := &models.ErrorBody{}
	if err := json.Unmarshal(b, eb); err != nil {
		return nil
	}
	return eb
}
