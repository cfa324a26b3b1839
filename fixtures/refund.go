package fixtures

import "github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"

// Values shared by the refund fixtures
const (
	RefundID         = "1JU08902781691411"
	RefundUpdateTime = "2018-09-11T23:34:38-07:00"
)

// GetRefundRequest returns a refund request body for amount
func GetRefundRequest(amount int64) models.CreateRefundRequest {
	return models.CreateRefundRequest{Amount: &amount}
}

// GetRefundResult returns the result of a refund PayPal completed
func GetRefundResult() *models.RefundResult {
	return &models.RefundResult{
		ID:     RefundID,
		Status: "COMPLETED",
		Refund: &models.RefundDetail{
			ID:         RefundID,
			UpdateTime: "2018-09-12 06:34:38",
			SellerPayableBreakdown: map[string]interface{}{
				"gross_amount": map[string]interface{}{"currency_code": "PLN", "value": "100.00"},
			},
		},
	}
}

// GetRejectedRefundResult returns the result of a refund PayPal turned down
func GetRejectedRefundResult() *models.RefundResult {
	return &models.RefundResult{
		Error: "Capture has already been fully refunded",
	}
}
