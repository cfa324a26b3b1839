package service

import (
	"context"
	"fmt"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// OrderDetailsGetter looks up a PayPal order
type OrderDetailsGetter interface {
	Get(ctx context.Context, token, orderID string) (*models.OrderDetails, error)
}

// OrderDetailsAPI looks up PayPal orders by id
type OrderDetailsAPI struct {
	Client ProviderClient
}

// Get returns the details of the PayPal order with the given id
func (api *OrderDetailsAPI) Get(ctx context.Context, token, orderID string) (*models.OrderDetails, error) {
	var details models.OrderDetails

	err := api.Client.Get(ctx, fmt.Sprintf("v2/checkout/orders/%s", orderID), token, &details)
	if err != nil {
		return nil, fmt.Errorf("error getting paypal order details: [%w]", err)
	}

	return &details, nil
}
