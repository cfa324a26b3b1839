package service

import (
	"context"
	"errors"
	"testing"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/dao"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func createMockPayPalService(authorizer Authorizer, client ProviderClient, mockDao dao.DAO) *PayPalService {
	return &PayPalService{
		Authorizer: authorizer,
		CreateOrderAPI: &CreateOrderAPI{
			Client:                   client,
			PaymentReferenceProvider: OrderNumberReferenceProvider{},
			ItemDataProvider:         PayPalItemDataProvider{},
		},
		PaymentService: &PaymentService{DAO: mockDao},
	}
}

func createdOrder(status string) func(context.Context, string, string, interface{}, interface{}, interface{}) error {
	return func(_ context.Context, _, _ string, _ interface{}, _ interface{}, v interface{}) error {
		*v.(*models.CreateOrderResponse) = models.CreateOrderResponse{
			ID:     fixtures.PayPalOrderID,
			Status: status,
			Links: []models.Link{
				{Href: "https://www.sandbox.paypal.com/checkoutnow?token=" + fixtures.PayPalOrderID, Rel: "approve", Method: "GET"},
				{Href: "https://api.sandbox.paypal.com/v2/checkout/orders/" + fixtures.PayPalOrderID, Rel: "self", Method: "GET"},
			},
		}
		return nil
	}
}

func TestUnitCreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()

	Convey("Payment without an order", t, func() {
		service := createMockPayPalService(NewMockAuthorizer(mockCtrl), NewMockProviderClient(mockCtrl), dao.NewMockDAO(mockCtrl))
		payment := fixtures.GetPayPalPayment()
		payment.Order = nil

		result, responseType, err := service.CreateOrder(ctx, payment)

		So(result, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "payment [1234] has no order")
	})

	Convey("Error authorizing with PayPal", t, func() {
		mockAuthorizer := NewMockAuthorizer(mockCtrl)
		service := createMockPayPalService(mockAuthorizer, NewMockProviderClient(mockCtrl), dao.NewMockDAO(mockCtrl))
		payment := fixtures.GetPayPalPayment()

		mockAuthorizer.EXPECT().Authorize(ctx, payment.Method).Return("", ErrMissingCredentials)

		result, responseType, err := service.CreateOrder(ctx, payment)

		So(result, ShouldBeNil)
		So(responseType, ShouldEqual, ProviderError)
		So(err.Error(), ShouldEqual, "error authorizing with paypal: [payment method has no paypal client credentials]")
	})

	Convey("Error creating the PayPal order", t, func() {
		mockAuthorizer := NewMockAuthorizer(mockCtrl)
		mockClient := NewMockProviderClient(mockCtrl)
		service := createMockPayPalService(mockAuthorizer, mockClient, dao.NewMockDAO(mockCtrl))
		payment := fixtures.GetPayPalPayment()

		mockAuthorizer.EXPECT().Authorize(ctx, payment.Method).Return("TOKEN", nil)
		mockClient.EXPECT().Post(ctx, "v2/checkout/orders", "TOKEN", gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("error"))

		result, responseType, err := service.CreateOrder(ctx, payment)

		So(result, ShouldBeNil)
		So(responseType, ShouldEqual, ProviderError)
		So(err.Error(), ShouldEqual, "error creating paypal order: [error]")
	})

	Convey("Order status is not created", t, func() {
		mockAuthorizer := NewMockAuthorizer(mockCtrl)
		mockClient := NewMockProviderClient(mockCtrl)
		service := createMockPayPalService(mockAuthorizer, mockClient, dao.NewMockDAO(mockCtrl))
		payment := fixtures.GetPayPalPayment()

		mockAuthorizer.EXPECT().Authorize(ctx, payment.Method).Return("TOKEN", nil)
		mockClient.EXPECT().Post(ctx, "v2/checkout/orders", "TOKEN", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(createdOrder("VOIDED"))

		result, responseType, err := service.CreateOrder(ctx, payment)

		So(result, ShouldBeNil)
		So(responseType, ShouldEqual, ProviderError)
		So(err.Error(), ShouldContainSubstring, "failed to correctly create paypal order")
	})

	Convey("Error storing the PayPal order id", t, func() {
		mockAuthorizer := NewMockAuthorizer(mockCtrl)
		mockClient := NewMockProviderClient(mockCtrl)
		mockDao := dao.NewMockDAO(mockCtrl)
		service := createMockPayPalService(mockAuthorizer, mockClient, mockDao)
		payment := fixtures.GetPayPalPayment()

		mockAuthorizer.EXPECT().Authorize(ctx, payment.Method).Return("TOKEN", nil)
		mockClient.EXPECT().Post(ctx, "v2/checkout/orders", "TOKEN", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(createdOrder(OrderStatusCreated))
		mockDao.EXPECT().StorePayPalOrderID(ctx, fixtures.PaymentID, fixtures.PayPalOrderID).Return(errors.New("error"))

		result, responseType, err := service.CreateOrder(ctx, payment)

		So(result, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err, ShouldNotBeNil)
	})

	Convey("Successfully create PayPal order", t, func() {
		mockAuthorizer := NewMockAuthorizer(mockCtrl)
		mockClient := NewMockProviderClient(mockCtrl)
		mockDao := dao.NewMockDAO(mockCtrl)
		service := createMockPayPalService(mockAuthorizer, mockClient, mockDao)
		payment := fixtures.GetPayPalPayment()

		mockAuthorizer.EXPECT().Authorize(ctx, payment.Method).Return("TOKEN", nil)
		mockClient.EXPECT().Post(ctx, "v2/checkout/orders", "TOKEN", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(createdOrder(OrderStatusCreated))
		mockDao.EXPECT().StorePayPalOrderID(ctx, fixtures.PaymentID, fixtures.PayPalOrderID).Return(nil)
		mockDao.EXPECT().UpdatePaymentState(ctx, fixtures.PaymentID, "processing").Return(nil)

		result, responseType, err := service.CreateOrder(ctx, payment)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(result, ShouldResemble, &models.CreateOrderResult{
			ID:         fixtures.PayPalOrderID,
			Status:     OrderStatusCreated,
			ApproveURL: "https://www.sandbox.paypal.com/checkoutnow?token=" + fixtures.PayPalOrderID,
		})
		So(payment.State, ShouldEqual, "processing")
	})
}
