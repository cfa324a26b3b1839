package service

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// AuthAssertionHeader carries the auth assertion on partner-initiated calls
const AuthAssertionHeader = "PayPal-Auth-Assertion"

// RefundCall is everything needed to issue a capture refund: where to send
// it, the body and the headers that travel alongside it.
type RefundCall struct {
	Path    string
	Body    models.RefundRequest
	Headers http.Header
}

// BuildRefundRequest builds the refund call for a capture. amount must
// already be formatted in major units.
func BuildRefundRequest(captureID, authAssertion, referenceNumber, amount, currency string) RefundCall {
	headers := http.Header{}
	headers.Set(AuthAssertionHeader, authAssertion)

	return RefundCall{
		Path: fmt.Sprintf("v2/payments/captures/%s/refund", captureID),
		Body: models.RefundRequest{
			Amount: models.RefundAmount{
				Value:        amount,
				CurrencyCode: currency,
			},
			InvoiceID: referenceNumber,
		},
		Headers: headers,
	}
}
