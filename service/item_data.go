package service

import (
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// ItemDataProvider turns an order's lines into PayPal items
type ItemDataProvider interface {
	Provide(order *models.Order) models.ItemData
}

// PayPalItemDataProvider lists every order line as a PayPal item. An untaxed
// line is one item carrying the line quantity; a taxed line is listed unit by
// unit, each unit an item of quantity 1 with its own tax.
type PayPalItemDataProvider struct{}

// Provide returns the items for the order along with their totals
func (PayPalItemDataProvider) Provide(order *models.Order) models.ItemData {
	data := models.ItemData{
		Items:          []models.Item{},
		TotalItemValue: decimal.Zero,
		TotalTax:       decimal.Zero,
	}

	for _, line := range order.Items {
		if line.Quantity <= 0 {
			continue
		}

		for _, group := range groupUnitTaxes(line) {
			data.Items = append(data.Items, models.Item{
				Name:       line.Name,
				UnitAmount: models.NewMoney(line.UnitPrice, order.CurrencyCode),
				Quantity:   group.quantity,
				Tax:        models.NewMoney(group.tax, order.CurrencyCode),
			})

			quantity := decimal.NewFromInt(int64(group.quantity))
			data.TotalItemValue = data.TotalItemValue.Add(models.MajorUnits(line.UnitPrice).Mul(quantity))
			data.TotalTax = data.TotalTax.Add(models.MajorUnits(group.tax).Mul(quantity))
		}
	}

	return data
}

type unitTaxGroup struct {
	tax      int64
	quantity int
}

// groupUnitTaxes splits a taxed line into one group per unit
func groupUnitTaxes(line models.OrderItem) []unitTaxGroup {
	if len(line.UnitTaxes) == 0 {
		return []unitTaxGroup{{tax: 0, quantity: line.Quantity}}
	}

	groups := make([]unitTaxGroup, 0, line.Quantity)
	for i := 0; i < line.Quantity; i++ {
		var tax int64
		if i < len(line.UnitTaxes) {
			tax = line.UnitTaxes[i]
		}
		groups = append(groups, unitTaxGroup{tax: tax, quantity: 1})
	}

	return groups
}
