package service

import (
	"context"
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// PayPalService handles the creation of PayPal orders for payments
type PayPalService struct {
	Authorizer     Authorizer
	CreateOrderAPI *CreateOrderAPI
	PaymentService *PaymentService
}

// CreateOrder creates a PayPal order for the payment, stores its id against
// the payment and returns where to send the buyer to approve it
func (pp *PayPalService) CreateOrder(ctx context.Context, payment *models.Payment) (*models.CreateOrderResult, ResponseType, error) {
	if payment.Order == nil {
		return nil, InvalidData, fmt.Errorf("payment [%s] has no order", payment.ID)
	}

	token, err := pp.Authorizer.Authorize(ctx, payment.Method)
	if err != nil {
		return nil, ProviderError, fmt.Errorf("error authorizing with paypal: [%v]", err)
	}

	order, err := pp.CreateOrderAPI.Create(ctx, token, payment)
	if err != nil {
		return nil, ProviderError, err
	}

	if order.Status != OrderStatusCreated {
		log.Debug(fmt.Sprintf("paypal order response status: %s", order.Status))
		return nil, ProviderError, fmt.Errorf("failed to correctly create paypal order - status is not CREATED")
	}

	var approveURL string
	for _, link := range order.Links {
		if link.Rel == "approve" {
			approveURL = link.Href
		}
	}

	err = pp.PaymentService.StorePayPalOrderID(ctx, payment, order.ID)
	if err != nil {
		return nil, Error, err
	}

	err = pp.PaymentService.SetPaymentState(ctx, payment, Processing)
	if err != nil {
		return nil, Error, err
	}

	return &models.CreateOrderResult{
		ID:         order.ID,
		Status:     order.Status,
		ApproveURL: approveURL,
	}, Success, nil
}
