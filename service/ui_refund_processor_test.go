package service

import (
	"context"
	"errors"
	"testing"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitUIRefundProcessor(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()

	Convey("Full amount is refunded when no amount is given", t, func() {
		mockProcessor := NewMockPaymentRefundProcessor(mockCtrl)
		processor := UIRefundProcessor{Processor: mockProcessor}
		payment := fixtures.GetPayPalPayment()

		mockProcessor.EXPECT().Refund(ctx, payment, int64(10000)).Return(fixtures.GetRefundResult(), nil)

		So(processor.Refund(ctx, payment, FullAmount), ShouldBeNil)
	})

	Convey("Given amount is passed through", t, func() {
		mockProcessor := NewMockPaymentRefundProcessor(mockCtrl)
		processor := UIRefundProcessor{Processor: mockProcessor}
		payment := fixtures.GetPayPalPayment()

		mockProcessor.EXPECT().Refund(ctx, payment, int64(500)).Return(fixtures.GetRefundResult(), nil)

		So(processor.Refund(ctx, payment, 500), ShouldBeNil)
	})

	Convey("Structured error result does not fail the refund", t, func() {
		mockProcessor := NewMockPaymentRefundProcessor(mockCtrl)
		processor := UIRefundProcessor{Processor: mockProcessor}
		payment := fixtures.GetPayPalPayment()

		mockProcessor.EXPECT().Refund(ctx, payment, int64(10000)).
			Return(&models.RefundResult{Error: MissingGatewayConfig}, nil)

		So(processor.Refund(ctx, payment, FullAmount), ShouldBeNil)
	})

	Convey("Refund error becomes a UI refund error with the same message", t, func() {
		mockProcessor := NewMockPaymentRefundProcessor(mockCtrl)
		processor := UIRefundProcessor{Processor: mockProcessor}
		payment := fixtures.GetPayPalPayment()

		mockProcessor.EXPECT().Refund(ctx, payment, int64(10000)).
			Return(nil, &RefundError{cause: errors.New("connection reset")})

		err := processor.Refund(ctx, payment, FullAmount)

		var uiErr *UIRefundError
		So(errors.As(err, &uiErr), ShouldBeTrue)
		So(uiErr.Message, ShouldEqual, "PayPal order cannot be refunded")
	})

	Convey("Other errors are returned as they are", t, func() {
		mockProcessor := NewMockPaymentRefundProcessor(mockCtrl)
		processor := UIRefundProcessor{Processor: mockProcessor}
		payment := fixtures.GetPayPalPayment()
		cause := errors.New("unexpected")

		mockProcessor.EXPECT().Refund(ctx, payment, int64(10000)).Return(nil, cause)

		So(processor.Refund(ctx, payment, FullAmount), ShouldEqual, cause)
	})

	Convey("Every result is handed to the recorder with the amount refunded", t, func() {
		mockProcessor := NewMockPaymentRefundProcessor(mockCtrl)
		mockRecorder := NewMockRefundRecorder(mockCtrl)
		processor := UIRefundProcessor{Processor: mockProcessor, Recorder: mockRecorder}
		payment := fixtures.GetPayPalPayment()
		rejected := &models.RefundResult{Error: MissingPayPalOrderID}

		mockProcessor.EXPECT().Refund(ctx, payment, int64(10000)).Return(rejected, nil)
		mockRecorder.EXPECT().RecordRefund(ctx, payment, int64(10000), rejected).Return(nil)

		So(processor.Refund(ctx, payment, FullAmount), ShouldBeNil)
	})

	Convey("Recorder error fails the refund", t, func() {
		mockProcessor := NewMockPaymentRefundProcessor(mockCtrl)
		mockRecorder := NewMockRefundRecorder(mockCtrl)
		processor := UIRefundProcessor{Processor: mockProcessor, Recorder: mockRecorder}
		payment := fixtures.GetPayPalPayment()
		cause := errors.New("error recording refund")

		mockProcessor.EXPECT().Refund(ctx, payment, int64(500)).Return(fixtures.GetRefundResult(), nil)
		mockRecorder.EXPECT().RecordRefund(ctx, payment, int64(500), gomock.Any()).Return(cause)

		So(processor.Refund(ctx, payment, 500), ShouldEqual, cause)
	})

	Convey("Recorder is not called when the refund fails", t, func() {
		mockProcessor := NewMockPaymentRefundProcessor(mockCtrl)
		mockRecorder := NewMockRefundRecorder(mockCtrl)
		processor := UIRefundProcessor{Processor: mockProcessor, Recorder: mockRecorder}
		payment := fixtures.GetPayPalPayment()

		mockProcessor.EXPECT().Refund(ctx, payment, int64(10000)).
			Return(nil, &RefundError{cause: errors.New("connection reset")})

		So(processor.Refund(ctx, payment, FullAmount), ShouldHaveSameTypeAs, &UIRefundError{})
	})
}
