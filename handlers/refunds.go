package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/helpers"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/service"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/utils"
	"github.com/go-playground/validator/v10"
)

// Refund flows, as reported in metrics
const (
	apiRefundFlow = "api"
	uiRefundFlow  = "ui"
)

// handleRefundMessage allows us to mock the call to produceRefundMessage for unit tests
var handleRefundMessage = produceRefundMessage

// HandleCreateRefund refunds the payment in the request through PayPal and
// returns the refund result
func HandleCreateRefund(w http.ResponseWriter, req *http.Request) {
	payment, amount, ok := readRefundRequest(w, req)
	if !ok {
		return
	}

	result, responseType, err := refundService.CreateRefund(req.Context(), payment, amount)
	metrics.RefundsTotal.WithLabelValues(apiRefundFlow, responseType.String()).Inc()

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating refund: [%v]", err), log.Data{"payment_id": payment.ID, "service_response_type": responseType.String()})
		switch responseType {
		case service.ProviderError:
			utils.WriteMessageWithStatus(w, req, err.Error(), http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if responseType == service.Rejected {
		log.InfoR(req, "refund not completed", log.Data{"payment_id": payment.ID, "error": result.Error})
		utils.WriteJSONWithStatus(w, req, result, http.StatusOK)
		return
	}

	log.InfoR(req, "Successful POST request for new refund", log.Data{"payment_id": payment.ID, "refund_id": result.ID, "status": result.Status})

	err = handleRefundMessage(payment.ID, result.ID, result.Status)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error producing refund kafka message: [%v]", err), log.Data{"payment_id": payment.ID, "refund_id": result.ID})
	}

	utils.WriteJSONWithStatus(w, req, result, http.StatusCreated)
}

// HandleUIRefund refunds the payment in the request on behalf of the admin UI.
// A refund PayPal could not make is answered with 422 and a message to show.
func HandleUIRefund(w http.ResponseWriter, req *http.Request) {
	payment, amount, ok := readRefundRequest(w, req)
	if !ok {
		return
	}

	responseType, err := refundService.RefundFromUI(req.Context(), payment, amount)
	metrics.RefundsTotal.WithLabelValues(uiRefundFlow, responseType.String()).Inc()

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error refunding payment from admin ui: [%v]", err), log.Data{"payment_id": payment.ID, "service_response_type": responseType.String()})
		switch responseType {
		case service.Rejected:
			utils.WriteMessageWithStatus(w, req, err.Error(), http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	log.InfoR(req, "Successful admin refund", log.Data{"payment_id": payment.ID})
	w.WriteHeader(http.StatusNoContent)
}

const invalidAmountMessage = "amount must be -1 or a positive number of minor units"

// readRefundRequest returns the payment loaded for the request and the amount
// to refund, FullAmount when the body names none. It answers the request
// itself when either cannot be read.
func readRefundRequest(w http.ResponseWriter, req *http.Request) (*models.Payment, int64, bool) {
	payment, ok := helpers.PaymentFromContext(req.Context())
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid payment in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return nil, 0, false
	}

	if req.Body == nil || req.Body == http.NoBody {
		return payment, service.FullAmount, true
	}

	var refundRequest models.CreateRefundRequest
	err := json.NewDecoder(req.Body).Decode(&refundRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessageWithStatus(w, req, "request body invalid", http.StatusBadRequest)
		return nil, 0, false
	}

	err = validator.New().Struct(refundRequest)
	if err == nil && refundRequest.Amount != nil && *refundRequest.Amount == 0 {
		err = errors.New("amount is zero")
	}
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body failed validation: [%v]", err))
		utils.WriteMessageWithStatus(w, req, invalidAmountMessage, http.StatusBadRequest)
		return nil, 0, false
	}

	if refundRequest.Amount == nil {
		return payment, service.FullAmount, true
	}

	return payment, *refundRequest.Amount, true
}
