package models

// PayPalOrderIDDetail is the key under which the PayPal order id is kept in a
// payment's details once the order has been created
const PayPalOrderIDDetail = "paypal_order_id"

// Payment is a single payment taken against an order
type Payment struct {
	ID           string
	Amount       int64
	CurrencyCode string
	State        string
	Details      map[string]string
	Method       *PaymentMethod
	Order        *Order
}

// PayPalOrderID returns the stored PayPal order id, if there is one
func (p *Payment) PayPalOrderID() (string, bool) {
	if p.Details == nil {
		return "", false
	}
	id, ok := p.Details[PayPalOrderIDDetail]
	return id, ok
}

// PaymentMethod is the method a payment was taken with
type PaymentMethod struct {
	Code          string
	GatewayConfig *GatewayConfig
}

// GatewayConfig holds the gateway a payment method is bound to together with
// the merchant credentials obtained when the merchant was onboarded
type GatewayConfig struct {
	FactoryName string
	Config      map[string]string
}

// Gateway config keys
const (
	ConfigClientID             = "client_id"
	ConfigClientSecret         = "client_secret"
	ConfigMerchantID           = "merchant_id"
	ConfigPartnerAttributionID = "partner_attribution_id"
)

// Value returns the config entry for key, or an empty string
func (g *GatewayConfig) Value(key string) string {
	if g == nil || g.Config == nil {
		return ""
	}
	return g.Config[key]
}

// Order is the read-only view of an order needed to build a PayPal purchase.
// All amounts are in minor units.
type Order struct {
	Number           string
	CurrencyCode     string
	Total            int64
	ItemsTotal       int64
	ShippingTotal    int64
	ShippingRequired bool
	ShippingAddress  *Address
	Items            []OrderItem
}

// OrderItem is one line of an order. UnitTaxes holds the tax charged on each
// unit, so it has Quantity entries when the line is taxed.
type OrderItem struct {
	Name      string
	UnitPrice int64
	Quantity  int
	UnitTaxes []int64
}

// Address is a shipping address
type Address struct {
	FullName    string
	Street      string
	City        string
	Postcode    string
	CountryCode string
}
