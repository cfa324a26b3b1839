package models

// CreateRefundRequest is the body of a refund request. An amount below zero
// refunds the full payment amount.
type CreateRefundRequest struct {
	Amount *int64 `json:"amount" validate:"omitempty,min=-1"`
}

// RefundResult is the outcome of a refund attempt. Every field is optional: a
// configuration problem only sets Error, a refund accepted by PayPal sets ID
// and Status and, once looked up, Refund.
type RefundResult struct {
	Error  string        `json:"error,omitempty"`
	ID     string        `json:"id,omitempty"`
	Status string        `json:"status,omitempty"`
	Refund *RefundDetail `json:"refund,omitempty"`
}

// RefundDetail is the refund as recorded by PayPal after it was issued
type RefundDetail struct {
	ID                     string                 `json:"id"`
	UpdateTime             string                 `json:"update_time"`
	SellerPayableBreakdown map[string]interface{} `json:"seller_payable_breakdown,omitempty"`
}

// CreateOrderResult is returned once a PayPal order has been created for a payment
type CreateOrderResult struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	ApproveURL string `json:"approve_url,omitempty"`
}
