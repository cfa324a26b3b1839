package service

import (
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
)

// BuildOrderPayload builds the body PayPal expects to create an order for the
// given order. itemData supplies the item lines and the totals they add up to;
// merchantID, when set, names the payee.
//
// Amounts are taken from the order's pre-summed totals. The caller must make
// sure ItemsTotal + ShippingTotal matches Total, it is not checked here.
func BuildOrderPayload(referenceNumber string, order *models.Order, itemData models.ItemData, merchantID string) models.CreateOrderRequest {
	currency := order.CurrencyCode

	purchaseUnit := models.PurchaseUnitRequest{
		InvoiceID: referenceNumber,
		Amount: models.PurchaseUnitAmount{
			CurrencyCode: currency,
			Value:        models.MajorUnits(order.Total),
			Breakdown: models.Breakdown{
				ItemTotal: models.Money{CurrencyCode: currency, Value: itemData.TotalItemValue},
				TaxTotal:  models.Money{CurrencyCode: currency, Value: itemData.TotalTax},
			},
		},
		Items: itemData.Items,
	}

	if purchaseUnit.Items == nil {
		purchaseUnit.Items = []models.Item{}
	}

	if merchantID != "" {
		purchaseUnit.Payee = &models.Payee{MerchantID: merchantID}
	}

	payload := models.CreateOrderRequest{
		Intent: models.IntentCapture,
	}

	if !order.ShippingRequired {
		payload.ApplicationContext = &models.ApplicationContext{
			ShippingPreference: models.ShippingPreferenceNone,
		}
		payload.PurchaseUnits = []models.PurchaseUnitRequest{purchaseUnit}
		return payload
	}

	shipping := models.NewMoney(order.ShippingTotal, currency)
	purchaseUnit.Amount.Breakdown.Shipping = &shipping

	if address := order.ShippingAddress; address != nil {
		purchaseUnit.Shipping = &models.Shipping{
			Name: models.ShippingName{FullName: address.FullName},
			Address: models.ShippingAddress{
				AddressLine1: address.Street,
				AdminArea2:   address.City,
				PostalCode:   address.Postcode,
				CountryCode:  address.CountryCode,
			},
		}
	}

	payload.PurchaseUnits = []models.PurchaseUnitRequest{purchaseUnit}

	return payload
}
