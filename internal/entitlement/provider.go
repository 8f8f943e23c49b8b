package entitlement

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CustomerInfo is the billing provider's view of the owner's purchases.
type CustomerInfo struct {
	Lifetime          bool
	Monthly           bool
	MonthlyExpiration string
}

// Provider is the external subscription backend. A nil Provider means the
// app runs on trial logic alone.
type Provider interface {
	CustomerInfo(ctx context.Context) (*CustomerInfo, error)
}

type httpProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPProvider talks to the billing vendor's REST API. The expected
// response shape mirrors the entitlements object the mobile SDK consumes:
//
//	{"entitlements": {"active": {"lifetime": {}, "monthly": {"expires_date": "..."}}}}
func NewHTTPProvider(baseURL, apiKey string) Provider {
	return &httpProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type entitlementsPayload struct {
	Entitlements struct {
		Active map[string]struct {
			ExpiresDate string `json:"expires_date"`
		} `json:"active"`
	} `json:"entitlements"`
}

func (p *httpProvider) CustomerInfo(ctx context.Context) (*CustomerInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/subscribers/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("billing provider returned %d", resp.StatusCode)
	}

	var payload entitlementsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	info := &CustomerInfo{}
	if _, ok := payload.Entitlements.Active["lifetime"]; ok {
		info.Lifetime = true
	}
	if monthly, ok := payload.Entitlements.Active["monthly"]; ok {
		info.Monthly = true
		info.MonthlyExpiration = monthly.ExpiresDate
	}
	return info, nil
}
