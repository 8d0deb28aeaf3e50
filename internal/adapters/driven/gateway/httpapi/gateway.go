// Package httpapi provides the HTTP client for the display backend.
// Every operation folds transport errors and non-200 responses into a
// boolean: the console surfaces outcomes as notifications, never crashes.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
	"github.com/hellolumen/lumenctl/internal/logger"
)

// Ensure Gateway implements the interface.
var _ driven.Gateway = (*Gateway)(nil)

// Gateway talks to the display backend over HTTP with JSON bodies.
type Gateway struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewGateway creates a gateway for the backend at baseURL.
// Requests are rate limited to keep a misbehaving caller from hammering
// the device's small backend.
func NewGateway(baseURL string) *Gateway {
	return &Gateway{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

// exchangePayload is the wire format of the code-exchange request.
type exchangePayload struct {
	Code         string `json:"code"`
	AppName      string `json:"appName"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectUri"`
	GetTokenURL  string `json:"getTokenUrl"`
}

// SubmitDisplayConfig uploads widget assignment and appearance.
func (g *Gateway) SubmitDisplayConfig(ctx context.Context, cfg domain.DisplayConfig) bool {
	return g.post(ctx, "/dashboard/config", cfg)
}

// SubmitIntegrationCredentials submits login credentials for a non-OAuth
// integration to its per-integration endpoint.
func (g *Gateway) SubmitIntegrationCredentials(ctx context.Context, integration string, creds domain.BrokerageCredentials) bool {
	return g.post(ctx, "/"+integration+"/credentials", creds)
}

// ExchangeAuthorizationCode hands an authorization code to the backend.
func (g *Gateway) ExchangeAuthorizationCode(ctx context.Context, req domain.ExchangeRequest) bool {
	return g.post(ctx, "/oauth2/code", exchangePayload{
		Code:         req.Code,
		AppName:      req.Integration,
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
		RedirectURI:  req.RedirectURI,
		GetTokenURL:  req.GetTokenURL,
	})
}

// post sends a JSON body and reports success. Only HTTP 200 counts; the
// response body is not otherwise consumed.
func (g *Gateway) post(ctx context.Context, path string, payload any) bool {
	if err := g.limiter.Wait(ctx); err != nil {
		logger.Warn("gateway rate limiter: %v", err)
		return false
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("gateway encode %s: %v", path, err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		logger.Warn("gateway request %s: %v", path, err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Warn("gateway post %s: %v", path, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("gateway post %s: %s", path, resp.Status)
		return false
	}
	return true
}

// Ping checks the backend health endpoint.
func (g *Gateway) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping backend: %s", resp.Status)
	}
	return nil
}
