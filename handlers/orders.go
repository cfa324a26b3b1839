package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/helpers"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/service"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/utils"
)

// HandleCreatePayPalOrder creates a PayPal order for the payment in the request
func HandleCreatePayPalOrder(w http.ResponseWriter, req *http.Request) {
	payment, ok := helpers.PaymentFromContext(req.Context())
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid payment in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	result, responseType, err := paypalService.CreateOrder(req.Context(), payment)
	metrics.OrdersTotal.WithLabelValues(responseType.String()).Inc()

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating paypal order: [%v]", err), log.Data{"payment_id": payment.ID, "service_response_type": responseType.String()})
		switch responseType {
		case service.InvalidData:
			utils.WriteMessageWithStatus(w, req, err.Error(), http.StatusBadRequest)
		case service.ProviderError:
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	log.InfoR(req, "Successful POST request for new paypal order", log.Data{"payment_id": payment.ID, "paypal_order_id": result.ID})

	utils.WriteJSONWithStatus(w, req, result, http.StatusCreated)
}
