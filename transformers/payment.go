package transformers

import (
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// PaymentTransformer transforms payments between the database model and the
// model the PayPal services work with
type PaymentTransformer struct{}

// TransformToDomain transforms a payment database model into a payment
func (pt PaymentTransformer) TransformToDomain(dbResource models.PaymentResourceDB) *models.Payment {
	payment := &models.Payment{
		ID:           dbResource.ID,
		Amount:       dbResource.Amount,
		CurrencyCode: dbResource.CurrencyCode,
		State:        dbResource.State,
		Details:      map[string]string{},
		Method: &models.PaymentMethod{
			Code: dbResource.Method.Code,
			GatewayConfig: &models.GatewayConfig{
				FactoryName: dbResource.Method.FactoryName,
				Config:      dbResource.Method.GatewayConfig,
			},
		},
		Order: transformOrder(dbResource.Order),
	}

	for key, value := range dbResource.Details {
		payment.Details[key] = value
	}

	return payment
}

func transformOrder(db models.OrderDB) *models.Order {
	order := &models.Order{
		Number:           db.Number,
		CurrencyCode:     db.CurrencyCode,
		Total:            db.Total,
		ItemsTotal:       db.ItemsTotal,
		ShippingTotal:    db.ShippingTotal,
		ShippingRequired: db.ShippingRequired,
	}

	if db.ShippingAddress != nil {
		address := models.Address(*db.ShippingAddress)
		order.ShippingAddress = &address
	}

	for _, item := range db.Items {
		order.Items = append(order.Items, models.OrderItem(item))
	}

	return order
}
