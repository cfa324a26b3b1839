package helpers

import (
	"context"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyPayment is a specific key for identifying "payment" contexts added to the http request
var ContextKeyPayment = ContextKey("payment")

// PaymentFromContext returns the payment loaded for the request, if any
func PaymentFromContext(ctx context.Context) (*models.Payment, bool) {
	payment, ok := ctx.Value(ContextKeyPayment).(*models.Payment)
	return payment, ok && payment != nil
}
