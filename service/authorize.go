package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"golang.org/x/sync/singleflight"
)

// ErrMissingCredentials is returned when a payment method has no PayPal client credentials
var ErrMissingCredentials = errors.New("payment method has no paypal client credentials")

// tokens are refreshed this long before PayPal says they expire
const tokenExpiryMargin = time.Minute

// Authorizer obtains an access token for the merchant behind a payment method
type Authorizer interface {
	Authorize(ctx context.Context, method *models.PaymentMethod) (string, error)
}

type cachedToken struct {
	token     string
	expiresAt time.Time
}

// AuthorizeClient obtains access tokens with the client credentials stored in
// a payment method's gateway config and keeps them until shortly before they
// expire. Concurrent requests for the same merchant share one token request;
// requests for other merchants never wait on it.
type AuthorizeClient struct {
	APIBase string
	Timeout time.Duration
	NewSDK  func(clientID, secret, apiBase string, timeout time.Duration) (PayPalSDK, error)
	Now     func() time.Time

	mtx    sync.Mutex
	tokens map[string]cachedToken
	group  singleflight.Group
}

// NewAuthorizeClient creates an AuthorizeClient against apiBase
func NewAuthorizeClient(apiBase string, timeout time.Duration) *AuthorizeClient {
	return &AuthorizeClient{
		APIBase: apiBase,
		Timeout: timeout,
		NewSDK:  NewPayPalSDK,
		Now:     time.Now,
	}
}

// Authorize returns a valid access token for the payment method's merchant
func (ac *AuthorizeClient) Authorize(ctx context.Context, method *models.PaymentMethod) (string, error) {
	if method == nil || method.GatewayConfig == nil {
		return "", ErrMissingCredentials
	}

	clientID := method.GatewayConfig.Value(models.ConfigClientID)
	secret := method.GatewayConfig.Value(models.ConfigClientSecret)
	if clientID == "" || secret == "" {
		return "", ErrMissingCredentials
	}

	if token, ok := ac.cached(clientID); ok {
		return token, nil
	}

	// the shared request outlives any single caller, the SDK timeout bounds it
	fetchCtx := context.WithoutCancel(ctx)
	ch := ac.group.DoChan(clientID, func() (interface{}, error) {
		return ac.fetch(fetchCtx, clientID, secret)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (ac *AuthorizeClient) cached(clientID string) (string, bool) {
	ac.mtx.Lock()
	defer ac.mtx.Unlock()

	cached, ok := ac.tokens[clientID]
	if !ok || !ac.Now().Before(cached.expiresAt) {
		return "", false
	}
	return cached.token, true
}

func (ac *AuthorizeClient) fetch(ctx context.Context, clientID, secret string) (string, error) {
	if token, ok := ac.cached(clientID); ok {
		return token, nil
	}

	sdk, err := ac.NewSDK(clientID, secret, ac.APIBase, ac.Timeout)
	if err != nil {
		return "", err
	}

	res, err := sdk.GetAccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("error getting access token: [%w]", err)
	}

	ac.mtx.Lock()
	defer ac.mtx.Unlock()

	if ac.tokens == nil {
		ac.tokens = make(map[string]cachedToken)
	}
	ac.tokens[clientID] = cachedToken{
		token:     res.Token,
		expiresAt: ac.Now().Add(time.Duration(res.ExpiresIn)*time.Second - tokenExpiryMargin),
	}

	return res.Token, nil
}
