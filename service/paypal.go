package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/config"
	"github.com/plutov/paypal/v4"
)

//go:generate mockgen -destination=mock_paypal_sdk.go -package=service . PayPalSDK

// PayPalSDK is an interface for all the PayPal client methods that will be used
// in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	NewRequest(ctx context.Context, method, url string, payload interface{}) (*http.Request, error)
	Send(req *http.Request, v interface{}) error
}

// NewPayPalSDK creates a PayPal SDK client for one set of credentials
func NewPayPalSDK(clientID, secret, apiBase string, timeout time.Duration) (PayPalSDK, error) {
	c, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	c.Client = &http.Client{Timeout: timeout}
	return c, nil
}

// ProviderClient issues authenticated calls to the PayPal REST API. path is
// relative to the API base, for example "v2/checkout/orders".
type ProviderClient interface {
	Post(ctx context.Context, path, token string, body interface{}, headers http.Header, v interface{}) error
	Get(ctx context.Context, path, token string, v interface{}) error
}

// PayPalClient is the ProviderClient backed by the PayPal SDK. The bearer
// token is supplied per call so one client serves every merchant.
type PayPalClient struct {
	SDK     PayPalSDK
	APIBase string
}

// NewPayPalClient creates a PayPalClient for the environment in cfg
func NewPayPalClient(cfg *config.Config) (*PayPalClient, error) {
	apiBase, err := GetPayPalAPIBase(cfg)
	if err != nil {
		return nil, err
	}

	// NewClient insists on credentials even though Send never uses them.
	sdk, err := NewPayPalSDK("partner", "partner", apiBase, cfg.PaypalTimeout())
	if err != nil {
		return nil, err
	}

	return &PayPalClient{SDK: sdk, APIBase: apiBase}, nil
}

// Post sends body as JSON to path and decodes the response into v
func (pc *PayPalClient) Post(ctx context.Context, path, token string, body interface{}, headers http.Header, v interface{}) error {
	return pc.do(ctx, http.MethodPost, path, token, body, headers, v)
}

// Get fetches path and decodes the response into v
func (pc *PayPalClient) Get(ctx context.Context, path, token string, v interface{}) error {
	return pc.do(ctx, http.MethodGet, path, token, nil, nil, v)
}

func (pc *PayPalClient) do(ctx context.Context, method, path, token string, body interface{}, headers http.Header, v interface{}) error {
	url := fmt.Sprintf("%s/%s", pc.APIBase, path)

	req, err := pc.SDK.NewRequest(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("error creating paypal request [%s %s]: [%w]", method, path, err)
	}

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	err = pc.SDK.Send(req, v)
	if err != nil {
		return fmt.Errorf("error calling paypal [%s %s]: [%w]", method, path, err)
	}

	return nil
}

// GetPayPalAPIBase returns the API base for the configured PayPal environment
func GetPayPalAPIBase(cfg *config.Config) (string, error) {
	if cfg.PaypalAPIURL != "" {
		return cfg.PaypalAPIURL, nil
	}

	switch cfg.PaypalEnv {
	case "live":
		return paypal.APIBaseLive, nil
	case "test":
		return paypal.APIBaseSandBox, nil
	default:
		return "", fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}
}
