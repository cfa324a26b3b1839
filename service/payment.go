package service

import (
	"context"
	"fmt"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/dao"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/transformers"
)

// PaymentService contains the DAO for db access
type PaymentService struct {
	DAO dao.DAO
}

// PaymentState Enum Type
type PaymentState int

// Enumeration containing the payment states this service moves payments into
const (
	New PaymentState = 1 + iota
	Processing
	Completed
	Refunded
)

// String representation of payment states
var paymentStates = [...]string{
	"new",
	"processing",
	"completed",
	"refunded",
}

func (paymentState PaymentState) String() string {
	return paymentStates[paymentState-1]
}

// GetPayment gets the payment with the given id
func (service *PaymentService) GetPayment(ctx context.Context, id string) (*models.Payment, ResponseType, error) {
	paymentResource, err := service.DAO.GetPaymentResource(ctx, id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment resource from db: [%v]", err)
	}

	if paymentResource == nil {
		return nil, NotFound, nil
	}

	return transformers.PaymentTransformer{}.TransformToDomain(*paymentResource), Success, nil
}

// StorePayPalOrderID stores the PayPal order id against the payment
func (service *PaymentService) StorePayPalOrderID(ctx context.Context, payment *models.Payment, orderID string) error {
	err := service.DAO.StorePayPalOrderID(ctx, payment.ID, orderID)
	if err != nil {
		return fmt.Errorf("error storing paypal order id for payment [%s]: [%v]", payment.ID, err)
	}

	if payment.Details == nil {
		payment.Details = map[string]string{}
	}
	payment.Details[models.PayPalOrderIDDetail] = orderID

	return nil
}

// SetPaymentState moves the payment into the given state
func (service *PaymentService) SetPaymentState(ctx context.Context, payment *models.Payment, state PaymentState) error {
	err := service.DAO.UpdatePaymentState(ctx, payment.ID, state.String())
	if err != nil {
		return fmt.Errorf("error setting state of payment [%s]: [%v]", payment.ID, err)
	}

	payment.State = state.String()
	return nil
}
