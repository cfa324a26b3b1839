package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/helpers"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/service"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/utils"
)

// PaymentLoaderInterceptor contains the payment service used in the interceptor
type PaymentLoaderInterceptor struct {
	Service *service.PaymentService
}

// PaymentLoaderIntercept loads the payment named in the route and stores it
// in the request context for the handlers
func (pl PaymentLoaderInterceptor) PaymentLoaderIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.GetPaymentID(r)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("PaymentLoaderInterceptor error: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		payment, responseType, err := pl.Service.GetPayment(r.Context(), id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("PaymentLoaderInterceptor error when retrieving payment: [%v]", err), log.Data{"service_response_type": responseType.String()})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if responseType == service.NotFound {
			log.InfoR(r, "PaymentLoaderInterceptor payment not found", log.Data{"payment_id": id})
			w.WriteHeader(http.StatusNotFound)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyPayment, payment)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
