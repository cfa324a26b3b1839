package models

import "github.com/shopspring/decimal"

// Values used in PayPal order requests
const (
	IntentCapture          = "CAPTURE"
	ShippingPreferenceNone = "NO_SHIPPING"
)

// CreateOrderRequest is the body sent to PayPal to create an order
type CreateOrderRequest struct {
	Intent             string                `json:"intent"`
	PurchaseUnits      []PurchaseUnitRequest `json:"purchase_units"`
	ApplicationContext *ApplicationContext   `json:"application_context,omitempty"`
}

// PurchaseUnitRequest groups the amount, items and shipping for an order
type PurchaseUnitRequest struct {
	InvoiceID string             `json:"invoice_id"`
	Amount    PurchaseUnitAmount `json:"amount"`
	Payee     *Payee             `json:"payee,omitempty"`
	Items     []Item             `json:"items"`
	Shipping  *Shipping          `json:"shipping,omitempty"`
}

// PurchaseUnitAmount is the total for a purchase unit with its breakdown
type PurchaseUnitAmount struct {
	CurrencyCode string          `json:"currency_code"`
	Value        decimal.Decimal `json:"value"`
	Breakdown    Breakdown       `json:"breakdown"`
}

// Breakdown splits the purchase unit total into its parts
type Breakdown struct {
	ItemTotal Money  `json:"item_total"`
	TaxTotal  Money  `json:"tax_total"`
	Shipping  *Money `json:"shipping,omitempty"`
}

// Payee is the merchant who receives the funds
type Payee struct {
	MerchantID string `json:"merchant_id"`
}

// Item is a single line in a purchase unit. Amounts are in major units.
type Item struct {
	Name       string `json:"name"`
	UnitAmount Money  `json:"unit_amount"`
	Quantity   int    `json:"quantity"`
	Tax        Money  `json:"tax"`
}

// ItemData is the item list for an order together with the totals PayPal
// checks the items against
type ItemData struct {
	Items          []Item
	TotalItemValue decimal.Decimal
	TotalTax       decimal.Decimal
}

// Shipping is the shipping block of a purchase unit
type Shipping struct {
	Name    ShippingName    `json:"name"`
	Address ShippingAddress `json:"address"`
}

// ShippingName holds the recipient's name
type ShippingName struct {
	FullName string `json:"full_name"`
}

// ShippingAddress is the address in PayPal's format
type ShippingAddress struct {
	AddressLine1 string `json:"address_line_1"`
	AdminArea2   string `json:"admin_area_2"`
	PostalCode   string `json:"postal_code"`
	CountryCode  string `json:"country_code"`
}

// ApplicationContext carries checkout preferences
type ApplicationContext struct {
	ShippingPreference string `json:"shipping_preference,omitempty"`
}

// CreateOrderResponse is the part of the create order response this service uses
type CreateOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []Link `json:"links,omitempty"`
}

// Link is a HATEOAS link returned by PayPal
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// OrderDetails is the part of the order details response needed to find the
// capture to refund
type OrderDetails struct {
	ID            string                `json:"id"`
	Status        string                `json:"status"`
	PurchaseUnits []PurchaseUnitDetails `json:"purchase_units"`
}

// PurchaseUnitDetails is a purchase unit as returned by PayPal
type PurchaseUnitDetails struct {
	ReferenceID string          `json:"reference_id,omitempty"`
	Payments    *PaymentDetails `json:"payments,omitempty"`
}

// PaymentDetails lists the captures taken for a purchase unit
type PaymentDetails struct {
	Captures []Capture `json:"captures"`
}

// Capture is a record of funds collected against an order
type Capture struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// RefundRequest is the body sent to refund a capture
type RefundRequest struct {
	Amount    RefundAmount `json:"amount"`
	InvoiceID string       `json:"invoice_id"`
}

// RefundAmount is the amount to refund. Value is already formatted in major units.
type RefundAmount struct {
	Value        string `json:"value"`
	CurrencyCode string `json:"currency_code"`
}

// RefundResponse is returned by PayPal when a capture is refunded
type RefundResponse struct {
	ID      string        `json:"id,omitempty"`
	Status  string        `json:"status,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail describes one problem PayPal found with a request
type ErrorDetail struct {
	Field       string `json:"field,omitempty"`
	Issue       string `json:"issue,omitempty"`
	Description string `json:"description,omitempty"`
}

// RefundDetails is returned by PayPal when a refund is looked up by id
type RefundDetails struct {
	ID                     string                 `json:"id"`
	Status                 string                 `json:"status"`
	UpdateTime             string                 `json:"update_time"`
	SellerPayableBreakdown map[string]interface{} `json:"seller_payable_breakdown,omitempty"`
}
