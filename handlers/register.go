package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/dao"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/interceptors"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsNamespace prefixes every metric exposed on /metrics
const MetricsNamespace = "paypal_commerce"

var paymentService *service.PaymentService
var paypalService *service.PayPalService
var refundService *service.RefundService
var metrics *Metrics

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg *config.Config, paymentDAO dao.DAO, registry *prometheus.Registry) error {
	paypalClient, err := service.NewPayPalClient(cfg)
	if err != nil {
		return fmt.Errorf("error creating paypal client: [%v]", err)
	}

	authorizer := service.NewAuthorizeClient(paypalClient.APIBase, cfg.PaypalTimeout())

	paymentService = &service.PaymentService{DAO: paymentDAO}

	paypalService = &service.PayPalService{
		Authorizer: authorizer,
		CreateOrderAPI: &service.CreateOrderAPI{
			Client:                   paypalClient,
			PaymentReferenceProvider: service.OrderNumberReferenceProvider{},
			ItemDataProvider:         service.PayPalItemDataProvider{},
		},
		PaymentService: paymentService,
	}

	processor, err := service.NewRefundProcessor(
		cfg.PaypalGatewayFactoryName,
		authorizer,
		&service.OrderDetailsAPI{Client: paypalClient},
		&service.PayPalRefundPaymentAPI{Client: paypalClient},
		service.PayPalAuthAssertionGenerator{},
		service.UUIDRefundReferenceProvider{},
	)
	if err != nil {
		return fmt.Errorf("error creating refund processor: [%v]", err)
	}

	refundService = &service.RefundService{
		Processor:      processor,
		PaymentService: paymentService,
	}
	refundService.UIProcessor = &service.UIRefundProcessor{Processor: processor, Recorder: refundService}

	metrics = NewMetrics(MetricsNamespace, registry)

	paymentLoader := &interceptors.PaymentLoaderInterceptor{Service: paymentService}
	userAuthInterceptor := &authentication.UserAuthenticationInterceptor{}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")
	mainRouter.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods("GET").Name("get-metrics")

	// Each route needs its own interceptors, so each gets its own subrouter
	createOrderRouter := mainRouter.PathPrefix("/paypal/payments/{payment_id}/orders").Subrouter()
	createOrderRouter.HandleFunc("", HandleCreatePayPalOrder).Methods("POST").Name("create-paypal-order")

	createRefundRouter := mainRouter.PathPrefix("/paypal/payments/{payment_id}/refunds").Subrouter()
	createRefundRouter.HandleFunc("", HandleCreateRefund).Methods("POST").Name("create-refund")

	uiRefundRouter := mainRouter.PathPrefix("/admin/paypal/payments/{payment_id}/refunds").Subrouter()
	uiRefundRouter.HandleFunc("", HandleUIRefund).Methods("POST").Name("create-ui-refund")

	// Set middleware for subrouters
	createOrderRouter.Use(log.Handler, authentication.ElevatedPrivilegesInterceptor, paymentLoader.PaymentLoaderIntercept)
	createRefundRouter.Use(log.Handler, authentication.ElevatedPrivilegesInterceptor, paymentLoader.PaymentLoaderIntercept)
	uiRefundRouter.Use(log.Handler, userAuthInterceptor.UserAuthenticationIntercept, interceptors.AdminRefundAuthenticationIntercept, paymentLoader.PaymentLoaderIntercept)

	return nil
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
