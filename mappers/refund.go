package mappers

import (
	"time"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// MapToRefundDB maps the result of a refund attempt for amount (minor units)
// to the record kept against the payment
func MapToRefundDB(result models.RefundResult, amount int64, createdAt time.Time) models.RefundResourceDB {
	refund := models.RefundResourceDB{
		Amount:        amount,
		Status:        result.Status,
		Error:         result.Error,
		TransactionID: result.ID,
		CreatedAt:     createdAt,
	}

	if result.Refund != nil {
		refund.RefundID = result.Refund.ID
		refund.UpdatedAt = result.Refund.UpdateTime
		refund.SellerPayableBreakdown = result.Refund.SellerPayableBreakdown
	}

	return refund
}
