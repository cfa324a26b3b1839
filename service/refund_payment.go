package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/models"
	"github.com/plutov/paypal/v4"
)

// ErrUnknownRefundResponse is returned when PayPal answers a refund with
// neither a refund id nor an error description
var ErrUnknownRefundResponse = errors.New("paypal refund response has no id and no error details")

// refundTimeLayout is the layout refund update times are reported in
const refundTimeLayout = "2006-01-02 15:04:05"

// RefundPaymentAPI refunds a PayPal capture
type RefundPaymentAPI interface {
	Refund(ctx context.Context, token, captureID, authAssertion, referenceNumber, amount, currency string) (*models.RefundResult, error)
}

// PayPalRefundPaymentAPI refunds captures and looks the refund up afterwards
// so the result carries PayPal's own record of it
type PayPalRefundPaymentAPI struct {
	Client ProviderClient
	// Location the refund update time is reinterpreted in, time.Local when nil
	Location *time.Location
}

// Refund refunds amount (major units) of the capture. Business errors PayPal
// reports against the request come back in the result's Error field; any
// other failure is returned as an error.
func (api *PayPalRefundPaymentAPI) Refund(ctx context.Context, token, captureID, authAssertion, referenceNumber, amount, currency string) (*models.RefundResult, error) {
	call := BuildRefundRequest(captureID, authAssertion, referenceNumber, amount, currency)

	var response models.RefundResponse
	err := api.Client.Post(ctx, call.Path, token, call.Body, call.Headers, &response)
	if err != nil {
		rejected, ok := rejectedRefund(err)
		if !ok {
			return nil, fmt.Errorf("error refunding paypal capture [%s]: [%w]", captureID, err)
		}
		response = *rejected
	}

	if response.ID == "" && len(response.Details) == 0 {
		return nil, ErrUnknownRefundResponse
	}

	result := &models.RefundResult{
		ID:     response.ID,
		Status: response.Status,
	}

	if len(response.Details) > 0 {
		result.Error = response.Details[0].Description
	}

	if response.ID == "" {
		return result, nil
	}

	var details models.RefundDetails
	err = api.Client.Get(ctx, fmt.Sprintf("v2/payments/refunds/%s", response.ID), token, &details)
	if err != nil {
		return nil, fmt.Errorf("error getting paypal refund [%s]: [%w]", response.ID, err)
	}

	if details.ID == "" {
		return result, nil
	}

	updateTime, err := NormalizeUpdateTime(details.UpdateTime, api.location())
	if err != nil {
		return nil, err
	}

	result.Refund = &models.RefundDetail{
		ID:                     details.ID,
		UpdateTime:             updateTime,
		SellerPayableBreakdown: details.SellerPayableBreakdown,
	}

	return result, nil
}

func (api *PayPalRefundPaymentAPI) location() *time.Location {
	if api.Location == nil {
		return time.Local
	}
	return api.Location
}

// rejectedRefund turns a 4xx PayPal answer that explains itself into a refund
// response carrying those details
func rejectedRefund(err error) (*models.RefundResponse, bool) {
	var errResp *paypal.ErrorResponse
	if !errors.As(err, &errResp) || errResp.Response == nil || len(errResp.Details) == 0 {
		return nil, false
	}

	status := errResp.Response.StatusCode
	if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
		return nil, false
	}

	response := &models.RefundResponse{}
	for _, detail := range errResp.Details {
		response.Details = append(response.Details, models.ErrorDetail{
			Field:       detail.Field,
			Issue:       detail.Issue,
			Description: detail.Description,
		})
	}

	return response, true
}

// NormalizeUpdateTime reports a PayPal timestamp as a UTC "Y-m-d H:i:s"
// string. The wall clock of the timestamp, with its offset dropped, is read as
// a time in loc and that instant is formatted in UTC. Existing consumers of
// stored refunds depend on this exact conversion.
func NormalizeUpdateTime(updateTime string, loc *time.Location) (string, error) {
	if updateTime == "" {
		return "", nil
	}

	t, err := time.Parse(time.RFC3339, updateTime)
	if err != nil {
		return "", fmt.Errorf("error parsing refund update time [%s]: [%v]", updateTime, err)
	}

	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)

	return wall.UTC().Format(refundTimeLayout), nil
}
