package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// PartnerAttributionHeader credits orders to the partner integration
const PartnerAttributionHeader = "PayPal-Partner-Attribution-Id"

// OrderStatusCreated is the status of a freshly created PayPal order
const OrderStatusCreated = "CREATED"

// CreateOrderAPI creates PayPal orders for payments
type CreateOrderAPI struct {
	Client                   ProviderClient
	PaymentReferenceProvider PaymentReferenceNumberProvider
	ItemDataProvider         ItemDataProvider
}

// Create creates a PayPal order for the payment using token
func (api *CreateOrderAPI) Create(ctx context.Context, token string, payment *models.Payment) (*models.CreateOrderResponse, error) {
	if payment.Order == nil {
		return nil, errors.New("payment has no order")
	}

	var gatewayConfig *models.GatewayConfig
	if payment.Method != nil {
		gatewayConfig = payment.Method.GatewayConfig
	}

	// The purchase total is what this payment collects, not the order total.
	order := *payment.Order
	order.Total = payment.Amount

	payload := BuildOrderPayload(
		api.PaymentReferenceProvider.Provide(payment),
		&order,
		api.ItemDataProvider.Provide(&order),
		gatewayConfig.Value(models.ConfigMerchantID),
	)

	headers := http.Header{}
	if attributionID := gatewayConfig.Value(models.ConfigPartnerAttributionID); attributionID != "" {
		headers.Set(PartnerAttributionHeader, attributionID)
	}

	var response models.CreateOrderResponse
	err := api.Client.Post(ctx, "v2/checkout/orders", token, payload, headers, &response)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal order: [%w]", err)
	}

	return &response, nil
}
