package service

import (
	"testing"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitItemDataProvider(t *testing.T) {
	provider := PayPalItemDataProvider{}

	Convey("Untaxed lines", t, func() {
		order := &models.Order{
			CurrencyCode: "PLN",
			Items: []models.OrderItem{
				{Name: "PRODUCT_ONE", UnitPrice: 9000, Quantity: 1},
				{Name: "PRODUCT_TWO", UnitPrice: 4000, Quantity: 2},
			},
		}

		data := provider.Provide(order)

		So(data.Items, ShouldHaveLength, 2)
		So(data.Items[0].Name, ShouldEqual, "PRODUCT_ONE")
		So(data.Items[0].UnitAmount.Value.String(), ShouldEqual, "90")
		So(data.Items[0].Tax.Value.String(), ShouldEqual, "0")
		So(data.Items[1].Quantity, ShouldEqual, 2)
		So(data.Items[1].UnitAmount.CurrencyCode, ShouldEqual, "PLN")
		So(data.TotalItemValue.String(), ShouldEqual, "170")
		So(data.TotalTax.String(), ShouldEqual, "0")
	})

	Convey("Taxed lines are listed unit by unit", t, func() {
		order := &models.Order{
			CurrencyCode: "USD",
			Items: []models.OrderItem{
				{Name: "PRODUCT", UnitPrice: 1000, Quantity: 3, UnitTaxes: []int64{100, 100, 99}},
			},
		}

		data := provider.Provide(order)

		So(data.Items, ShouldHaveLength, 3)
		for _, item := range data.Items {
			So(item.Name, ShouldEqual, "PRODUCT")
			So(item.Quantity, ShouldEqual, 1)
			So(item.UnitAmount.Value.String(), ShouldEqual, "10")
		}
		So(data.Items[0].Tax.Value.String(), ShouldEqual, "1")
		So(data.Items[1].Tax.Value.String(), ShouldEqual, "1")
		So(data.Items[2].Tax.Value.String(), ShouldEqual, "0.99")
		So(data.TotalItemValue.String(), ShouldEqual, "30")
		So(data.TotalTax.String(), ShouldEqual, "2.99")
	})

	Convey("Two taxed units of the same product stay two items", t, func() {
		order := &models.Order{
			CurrencyCode: "PLN",
			Items: []models.OrderItem{
				{Name: "PRODUCT_ONE", UnitPrice: 5000, Quantity: 2, UnitTaxes: []int64{1000, 1000}},
			},
		}

		data := provider.Provide(order)

		So(data.Items, ShouldHaveLength, 2)
		So(data.Items[0].Quantity, ShouldEqual, 1)
		So(data.Items[1].Quantity, ShouldEqual, 1)
		So(data.Items[1].Tax.Value.String(), ShouldEqual, "10")
		So(data.TotalItemValue.String(), ShouldEqual, "100")
		So(data.TotalTax.String(), ShouldEqual, "20")
	})

	Convey("Lines without quantity are left out", t, func() {
		order := &models.Order{
			CurrencyCode: "USD",
			Items:        []models.OrderItem{{Name: "GONE", UnitPrice: 1000}},
		}

		data := provider.Provide(order)

		So(data.Items, ShouldBeEmpty)
		So(data.TotalItemValue.IsZero(), ShouldBeTrue)
	})
}
