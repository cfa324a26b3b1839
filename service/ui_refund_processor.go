package service

import (
	"context"
	"errors"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// UIRefundError is the single error the admin UI handles for a failed refund
type UIRefundError struct {
	Message string
}

func (e *UIRefundError) Error() string {
	return e.Message
}

// RefundRecorder keeps a record of a refund attempt made through the admin UI
type RefundRecorder interface {
	RecordRefund(ctx context.Context, payment *models.Payment, amount int64, result *models.RefundResult) error
}

// UIRefundProcessor adapts a PaymentRefundProcessor to the admin UI, which
// only needs to know whether the refund went through. Recorder is optional.
type UIRefundProcessor struct {
	Processor PaymentRefundProcessor
	Recorder  RefundRecorder
}

// Refund refunds amount of the payment, all of it when amount is negative
func (up *UIRefundProcessor) Refund(ctx context.Context, payment *models.Payment, amount int64) error {
	if amount < 0 {
		amount = payment.Amount
	}

	result, err := up.Processor.Refund(ctx, payment, amount)
	if err != nil {
		var refundErr *RefundError
		if errors.As(err, &refundErr) {
			return &UIRefundError{Message: refundErr.Error()}
		}
		return err
	}

	if result == nil {
		return nil
	}

	if result.Error != "" {
		log.Info("paypal refund not completed", log.Data{"payment_id": payment.ID, "error": result.Error})
	}

	if up.Recorder != nil {
		return up.Recorder.RecordRefund(ctx, payment, amount, result)
	}

	return nil
}
