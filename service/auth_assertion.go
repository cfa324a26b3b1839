package service

import (
	"fmt"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/golang-jwt/jwt/v5"
)

// AuthAssertionGenerator produces the PayPal-Auth-Assertion value for calls
// made on behalf of the merchant behind a payment method
type AuthAssertionGenerator interface {
	Generate(method *models.PaymentMethod) (string, error)
}

// PayPalAuthAssertionGenerator builds the unsigned JWT PayPal accepts as an
// auth assertion: the partner's client id as issuer and the merchant's id as
// payer_id.
type PayPalAuthAssertionGenerator struct{}

// Generate returns the auth assertion for the payment method
func (PayPalAuthAssertionGenerator) Generate(method *models.PaymentMethod) (string, error) {
	if method == nil || method.GatewayConfig == nil {
		return "", fmt.Errorf("error generating auth assertion: [%w]", ErrMissingCredentials)
	}

	clientID := method.GatewayConfig.Value(models.ConfigClientID)
	merchantID := method.GatewayConfig.Value(models.ConfigMerchantID)
	if clientID == "" || merchantID == "" {
		return "", fmt.Errorf("error generating auth assertion: client id or merchant id missing for payment method [%s]", method.Code)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"iss":      clientID,
		"payer_id": merchantID,
	})

	assertion, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		return "", fmt.Errorf("error generating auth assertion: [%v]", err)
	}

	return assertion, nil
}
