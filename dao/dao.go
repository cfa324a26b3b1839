package dao

import (
	"context"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

//go:generate mockgen -destination=mock_dao.go -package=dao . DAO

// DAO is an interface for accessing dao from a backend store
type DAO interface {
	GetPaymentResource(ctx context.Context, id string) (*models.PaymentResourceDB, error)
	StorePayPalOrderID(ctx context.Context, id, orderID string) error
	AddRefund(ctx context.Context, id string, refund models.RefundResourceDB) error
	UpdatePaymentState(ctx context.Context, id, state string) error
}
