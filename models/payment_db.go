package models

import "time"

// PaymentResourceDB is a payment as stored in the DB
type PaymentResourceDB struct {
	ID           string             `bson:"_id"`
	Amount       int64              `bson:"amount"`
	CurrencyCode string             `bson:"currency_code"`
	State        string             `bson:"state"`
	Details      map[string]string  `bson:"details,omitempty"`
	Method       PaymentMethodDB    `bson:"method"`
	Order        OrderDB            `bson:"order"`
	Refunds      []RefundResourceDB `bson:"refunds,omitempty"`
	CreatedAt    time.Time          `bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty"`
}

// PaymentMethodDB is the stored payment method with its gateway config
type PaymentMethodDB struct {
	Code          string            `bson:"code"`
	FactoryName   string            `bson:"factory_name"`
	GatewayConfig map[string]string `bson:"gateway_config,omitempty"`
}

// OrderDB is the stored order snapshot a payment was taken against
type OrderDB struct {
	Number           string        `bson:"number"`
	CurrencyCode     string        `bson:"currency_code"`
	Total            int64         `bson:"total"`
	ItemsTotal       int64         `bson:"items_total"`
	ShippingTotal    int64         `bson:"shipping_total"`
	ShippingRequired bool          `bson:"shipping_required"`
	ShippingAddress  *AddressDB    `bson:"shipping_address,omitempty"`
	Items            []OrderItemDB `bson:"items"`
}

// OrderItemDB is a stored order line
type OrderItemDB struct {
	Name      string  `bson:"name"`
	UnitPrice int64   `bson:"unit_price"`
	Quantity  int     `bson:"quantity"`
	UnitTaxes []int64 `bson:"unit_taxes,omitempty"`
}

// AddressDB is a stored shipping address
type AddressDB struct {
	FullName    string `bson:"full_name"`
	Street      string `bson:"street"`
	City        string `bson:"city"`
	Postcode    string `bson:"postcode"`
	CountryCode string `bson:"country_code"`
}
