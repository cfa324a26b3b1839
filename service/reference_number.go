package service

import (
	"fmt"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/google/uuid"
)

// PaymentReferenceNumberProvider gives the invoice id sent when creating a PayPal order
type PaymentReferenceNumberProvider interface {
	Provide(payment *models.Payment) string
}

// RefundReferenceNumberProvider gives the invoice id sent with a refund. It
// must differ on every call.
type RefundReferenceNumberProvider interface {
	Provide(payment *models.Payment) string
}

// OrderNumberReferenceProvider uses "<order number>-<payment id>" as the payment reference
type OrderNumberReferenceProvider struct{}

// Provide returns the payment reference number
func (OrderNumberReferenceProvider) Provide(payment *models.Payment) string {
	return fmt.Sprintf("%s-%s", orderNumber(payment), payment.ID)
}

// UUIDRefundReferenceProvider uses "<order number>-refund-<uuid>" as the refund reference
type UUIDRefundReferenceProvider struct {
	NewUUID func() uuid.UUID
}

// Provide returns a fresh refund reference number
func (p UUIDRefundReferenceProvider) Provide(payment *models.Payment) string {
	newUUID := p.NewUUID
	if newUUID == nil {
		newUUID = uuid.New
	}
	return fmt.Sprintf("%s-refund-%s", orderNumber(payment), newUUID().String())
}

func orderNumber(payment *models.Payment) string {
	if payment.Order == nil || payment.Order.Number == "" {
		return payment.ID
	}
	return payment.Order.Number
}
