package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/mappers"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// RefundService refunds payments and records each attempt against the payment
type RefundService struct {
	Processor      PaymentRefundProcessor
	UIProcessor    *UIRefundProcessor
	PaymentService *PaymentService
	Now            func() time.Time
}

// CreateRefund refunds amount (minor units) of the payment, all of it when
// amount is negative, and records the result. Callers must not refund the
// same payment concurrently.
func (service *RefundService) CreateRefund(ctx context.Context, payment *models.Payment, amount int64) (*models.RefundResult, ResponseType, error) {
	if amount < 0 {
		amount = payment.Amount
	}

	result, err := service.Processor.Refund(ctx, payment, amount)
	if err != nil {
		var refundErr *RefundError
		if errors.As(err, &refundErr) {
			return nil, ProviderError, err
		}
		return nil, Error, err
	}

	err = service.addRefund(ctx, payment, amount, result)
	if err != nil {
		return nil, Error, err
	}

	if result.Error != "" {
		return result, Rejected, nil
	}

	return result, Success, nil
}

// RefundFromUI refunds the payment for the admin UI. The attempt is recorded
// through RecordRefund when the UI processor has the service as its recorder.
func (service *RefundService) RefundFromUI(ctx context.Context, payment *models.Payment, amount int64) (ResponseType, error) {
	err := service.UIProcessor.Refund(ctx, payment, amount)
	if err != nil {
		var uiErr *UIRefundError
		if errors.As(err, &uiErr) {
			return Rejected, err
		}
		return Error, err
	}

	return Success, nil
}

// RecordRefund stores a refund attempt against the payment and marks the
// payment refunded once a refund of its whole amount has gone through
func (service *RefundService) RecordRefund(ctx context.Context, payment *models.Payment, amount int64, result *models.RefundResult) error {
	err := service.addRefund(ctx, payment, amount, result)
	if err != nil {
		return err
	}

	if result.Error != "" || amount != payment.Amount {
		return nil
	}

	return service.PaymentService.SetPaymentState(ctx, payment, Refunded)
}

func (service *RefundService) addRefund(ctx context.Context, payment *models.Payment, amount int64, result *models.RefundResult) error {
	err := service.PaymentService.DAO.AddRefund(ctx, payment.ID, mappers.MapToRefundDB(*result, amount, service.now()))
	if err != nil {
		err = fmt.Errorf("error recording refund for payment [%s]: [%v]", payment.ID, err)
		log.Error(err, log.Data{"refund_id": result.ID})
		return err
	}
	return nil
}

func (service *RefundService) now() time.Time {
	if service.Now == nil {
		return time.Now()
	}
	return service.Now()
}
