package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/helpers"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/prometheus/client_golang/prometheus"
)

func requestWithPayment(method, path string, body io.Reader, payment *models.Payment) *http.Request {
	req := httptest.NewRequest(method, path, body)
	if payment == nil {
		return req
	}
	return req.WithContext(context.WithValue(req.Context(), helpers.ContextKeyPayment, payment))
}

func resetMetrics() {
	metrics = NewMetrics("test", prometheus.NewRegistry())
}
