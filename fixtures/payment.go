package fixtures

import (
	"time"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// Values shared by the payment fixtures
const (
	PaymentID          = "1234"
	OrderNumber        = "000000022"
	PayPalOrderID      = "8LT69425HB178734G"
	CaptureID          = "3C679366HH908993F"
	GatewayFactory     = "sylius.pay_pal"
	ClientID           = "CLIENT-ID"
	ClientSecret       = "CLIENT-SECRET"
	MerchantID         = "MERCHANT-ID"
	PartnerAttribution = "sylius-ppcp4p-bn-code"
)

// GetGatewayConfig returns the gateway config of an onboarded PayPal merchant
func GetGatewayConfig() *models.GatewayConfig {
	return &models.GatewayConfig{
		FactoryName: GatewayFactory,
		Config: map[string]string{
			models.ConfigClientID:             ClientID,
			models.ConfigClientSecret:         ClientSecret,
			models.ConfigMerchantID:           MerchantID,
			models.ConfigPartnerAttributionID: PartnerAttribution,
		},
	}
}

// GetOrder returns a 100.00 PLN order with a single untaxed line and no shipping
func GetOrder() *models.Order {
	return &models.Order{
		Number:       OrderNumber,
		CurrencyCode: "PLN",
		Total:        10000,
		ItemsTotal:   10000,
		Items: []models.OrderItem{
			{Name: "PRODUCT_ONE", UnitPrice: 10000, Quantity: 1},
		},
	}
}

// GetShippingAddress returns a shipping address
func GetShippingAddress() *models.Address {
	return &models.Address{
		FullName:    "Gandalf The Grey",
		Street:      "Hobbit St. 123",
		City:        "Minas Tirith",
		Postcode:    "000",
		CountryCode: "US",
	}
}

// GetPayPalPayment returns a 100.00 PLN payment taken through PayPal that has
// a PayPal order against it
func GetPayPalPayment() *models.Payment {
	return &models.Payment{
		ID:           PaymentID,
		Amount:       10000,
		CurrencyCode: "PLN",
		State:        "completed",
		Details:      map[string]string{models.PayPalOrderIDDetail: PayPalOrderID},
		Method: &models.PaymentMethod{
			Code:          "PAYPAL",
			GatewayConfig: GetGatewayConfig(),
		},
		Order: GetOrder(),
	}
}

// GetPaymentResourceDB returns the stored form of GetPayPalPayment
func GetPaymentResourceDB() *models.PaymentResourceDB {
	createdAt := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	return &models.PaymentResourceDB{
		ID:           PaymentID,
		Amount:       10000,
		CurrencyCode: "PLN",
		State:        "completed",
		Details:      map[string]string{models.PayPalOrderIDDetail: PayPalOrderID},
		Method: models.PaymentMethodDB{
			Code:          "PAYPAL",
			FactoryName:   GatewayFactory,
			GatewayConfig: GetGatewayConfig().Config,
		},
		Order: models.OrderDB{
			Number:       OrderNumber,
			CurrencyCode: "PLN",
			Total:        10000,
			ItemsTotal:   10000,
			Items: []models.OrderItemDB{
				{Name: "PRODUCT_ONE", UnitPrice: 10000, Quantity: 1},
			},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}
