package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitCreateOrderAPI(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()

	Convey("Payment without an order", t, func() {
		api := CreateOrderAPI{Client: NewMockProviderClient(mockCtrl)}
		payment := fixtures.GetPayPalPayment()
		payment.Order = nil

		response, err := api.Create(ctx, "TOKEN", payment)

		So(response, ShouldBeNil)
		So(err.Error(), ShouldEqual, "payment has no order")
	})

	Convey("Order is created for the payment amount", t, func() {
		mockClient := NewMockProviderClient(mockCtrl)
		api := CreateOrderAPI{
			Client:                   mockClient,
			PaymentReferenceProvider: OrderNumberReferenceProvider{},
			ItemDataProvider:         PayPalItemDataProvider{},
		}
		payment := fixtures.GetPayPalPayment()
		payment.Amount = 5000

		mockClient.EXPECT().Post(ctx, "v2/checkout/orders", "TOKEN", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body interface{}, headers http.Header, v interface{}) error {
				payload := body.(models.CreateOrderRequest)
				So(payload.PurchaseUnits[0].InvoiceID, ShouldEqual, "000000022-1234")
				So(payload.PurchaseUnits[0].Amount.Value.String(), ShouldEqual, "50")
				So(payload.PurchaseUnits[0].Payee.MerchantID, ShouldEqual, fixtures.MerchantID)
				So(payload.PurchaseUnits[0].Items, ShouldHaveLength, 1)
				So(headers.Get(PartnerAttributionHeader), ShouldEqual, fixtures.PartnerAttribution)

				v.(*models.CreateOrderResponse).ID = fixtures.PayPalOrderID
				v.(*models.CreateOrderResponse).Status = OrderStatusCreated
				return nil
			})

		response, err := api.Create(ctx, "TOKEN", payment)

		So(err, ShouldBeNil)
		So(response.ID, ShouldEqual, fixtures.PayPalOrderID)
		So(payment.Order.Total, ShouldEqual, 10000)
	})

	Convey("Error creating the order", t, func() {
		mockClient := NewMockProviderClient(mockCtrl)
		api := CreateOrderAPI{
			Client:                   mockClient,
			PaymentReferenceProvider: OrderNumberReferenceProvider{},
			ItemDataProvider:         PayPalItemDataProvider{},
		}

		mockClient.EXPECT().Post(ctx, "v2/checkout/orders", "TOKEN", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("unauthorized"))

		response, err := api.Create(ctx, "TOKEN", fixtures.GetPayPalPayment())

		So(response, ShouldBeNil)
		So(err.Error(), ShouldEqual, "error creating paypal order: [unauthorized]")
	})
}

func TestUnitOrderDetailsAPI(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()

	Convey("Order details are fetched by id", t, func() {
		mockClient := NewMockProviderClient(mockCtrl)
		api := OrderDetailsAPI{Client: mockClient}

		mockClient.EXPECT().Get(ctx, "v2/checkout/orders/"+fixtures.PayPalOrderID, "TOKEN", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, v interface{}) error {
				*v.(*models.OrderDetails) = *orderDetailsWithCapture(fixtures.CaptureID)
				return nil
			})

		details, err := api.Get(ctx, "TOKEN", fixtures.PayPalOrderID)

		So(err, ShouldBeNil)
		So(details.PurchaseUnits[0].Payments.Captures[0].ID, ShouldEqual, fixtures.CaptureID)
	})

	Convey("Error fetching order details", t, func() {
		mockClient := NewMockProviderClient(mockCtrl)
		api := OrderDetailsAPI{Client: mockClient}

		mockClient.EXPECT().Get(ctx, "v2/checkout/orders/"+fixtures.PayPalOrderID, "TOKEN", gomock.Any()).
			Return(errors.New("not found"))

		details, err := api.Get(ctx, "TOKEN", fixtures.PayPalOrderID)

		So(details, ShouldBeNil)
		So(err.Error(), ShouldEqual, "error getting paypal order details: [not found]")
	})
}
