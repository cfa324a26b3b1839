package models

import "time"

// RefundResourceDB is a refund attempt recorded against a payment
type RefundResourceDB struct {
	RefundID               string                 `bson:"refund_id,omitempty"`
	Amount                 int64                  `bson:"amount"`
	Status                 string                 `bson:"status,omitempty"`
	Error                  string                 `bson:"error,omitempty"`
	TransactionID          string                 `bson:"transaction_id,omitempty"`
	UpdatedAt              string                 `bson:"updated_at,omitempty"`
	SellerPayableBreakdown map[string]interface{} `bson:"seller_payable_breakdown,omitempty"`
	CreatedAt              time.Time              `bson:"created_at"`
}
