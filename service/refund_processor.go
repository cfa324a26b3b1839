package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// Messages returned in a refund result when the payment cannot be refunded
// through PayPal at all
const (
	MissingGatewayConfig = "Missing gatewayConfig"
	MissingPayPalOrderID = "Missing paypal_order_id"
)

// FullAmount asks for the whole payment amount to be refunded
const FullAmount int64 = -1

// ErrMissingCapture is returned when a PayPal order has no capture to refund
var ErrMissingCapture = errors.New("paypal order has no capture")

// RefundError is returned when PayPal could not be asked to refund a
// payment. The underlying cause is logged, not exposed.
type RefundError struct {
	cause error
}

func (e *RefundError) Error() string {
	return "PayPal order cannot be refunded"
}

//go:generate mockgen -destination=mock_collaborators.go -package=service . Authorizer,OrderDetailsGetter,RefundPaymentAPI,AuthAssertionGenerator,RefundReferenceNumberProvider,ProviderClient,PaymentRefundProcessor,RefundRecorder

// PaymentRefundProcessor refunds a payment, fully when amount is negative
type PaymentRefundProcessor interface {
	Refund(ctx context.Context, payment *models.Payment, amount int64) (*models.RefundResult, error)
}

// RefundProcessor refunds payments taken through PayPal
type RefundProcessor struct {
	factoryName             string
	authorizer              Authorizer
	orderDetails            OrderDetailsGetter
	refundAPI               RefundPaymentAPI
	authAssertionGenerator  AuthAssertionGenerator
	refundReferenceProvider RefundReferenceNumberProvider
}

// NewRefundProcessor creates a RefundProcessor for payment methods bound to
// the gateway named factoryName
func NewRefundProcessor(
	factoryName string,
	authorizer Authorizer,
	orderDetails OrderDetailsGetter,
	refundAPI RefundPaymentAPI,
	authAssertionGenerator AuthAssertionGenerator,
	refundReferenceProvider RefundReferenceNumberProvider,
) (*RefundProcessor, error) {
	if factoryName == "" {
		return nil, errors.New("gateway factory name must be set")
	}
	if authorizer == nil || orderDetails == nil || refundAPI == nil || authAssertionGenerator == nil || refundReferenceProvider == nil {
		return nil, errors.New("refund processor collaborators must all be set")
	}

	return &RefundProcessor{
		factoryName:             factoryName,
		authorizer:              authorizer,
		orderDetails:            orderDetails,
		refundAPI:               refundAPI,
		authAssertionGenerator:  authAssertionGenerator,
		refundReferenceProvider: refundReferenceProvider,
	}, nil
}

// Refund refunds amount (minor units) of the payment, or all of it when
// amount is negative. A payment that was not taken through PayPal yields a
// result with Error set and no call is made.
func (rp *RefundProcessor) Refund(ctx context.Context, payment *models.Payment, amount int64) (*models.RefundResult, error) {
	method := payment.Method
	if method == nil || method.GatewayConfig == nil || method.GatewayConfig.FactoryName != rp.factoryName {
		return &models.RefundResult{Error: MissingGatewayConfig}, nil
	}

	orderID, ok := payment.PayPalOrderID()
	if !ok {
		return &models.RefundResult{Error: MissingPayPalOrderID}, nil
	}

	if amount < 0 {
		amount = payment.Amount
	}

	result, err := rp.refund(ctx, payment, orderID, amount)
	if err != nil {
		log.Error(fmt.Errorf("error refunding paypal payment: [%v]", err), log.Data{"payment_id": payment.ID, "paypal_order_id": orderID})
		return nil, &RefundError{cause: err}
	}

	return result, nil
}

func (rp *RefundProcessor) refund(ctx context.Context, payment *models.Payment, orderID string, amount int64) (*models.RefundResult, error) {
	if payment.Order == nil {
		return nil, errors.New("payment has no order")
	}

	token, err := rp.authorizer.Authorize(ctx, payment.Method)
	if err != nil {
		return nil, err
	}

	details, err := rp.orderDetails.Get(ctx, token, orderID)
	if err != nil {
		return nil, err
	}

	captureID, err := captureIDFromOrder(details)
	if err != nil {
		return nil, err
	}

	authAssertion, err := rp.authAssertionGenerator.Generate(payment.Method)
	if err != nil {
		return nil, err
	}

	referenceNumber := rp.refundReferenceProvider.Provide(payment)

	return rp.refundAPI.Refund(
		ctx,
		token,
		captureID,
		authAssertion,
		referenceNumber,
		models.MajorUnits(amount).String(),
		payment.Order.CurrencyCode,
	)
}

// captureIDFromOrder finds the first capture of the first purchase unit
func captureIDFromOrder(details *models.OrderDetails) (string, error) {
	if details == nil || len(details.PurchaseUnits) == 0 {
		return "", ErrMissingCapture
	}

	payments := details.PurchaseUnits[0].Payments
	if payments == nil || len(payments.Captures) == 0 || payments.Captures[0].ID == "" {
		return "", ErrMissingCapture
	}

	return payments.Captures[0].ID, nil
}
