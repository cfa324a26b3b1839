package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// PaymentIDVar is the route variable holding the payment id
const PaymentIDVar = "payment_id"

// ErrNoPaymentID is returned when the route carries no payment id
var ErrNoPaymentID = errors.New("no payment id in request")

// ResponseResource is the object returned in an error case
type ResponseResource struct {
	Message string `json:"message"`
}

// NewMessageResponse - convenience function for creating a response resource
func NewMessageResponse(message string) *ResponseResource {
	return &ResponseResource{Message: message}
}

// GetPaymentID returns the payment id from the route variables of the request
func GetPaymentID(r *http.Request) (string, error) {
	id := mux.Vars(r)[PaymentIDVar]
	if id == "" {
		return "", ErrNoPaymentID
	}
	return id, nil
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}

// WriteMessageWithStatus writes {"message": message} with the supplied status
func WriteMessageWithStatus(w http.ResponseWriter, r *http.Request, message string, status int) {
	WriteJSONWithStatus(w, r, NewMessageResponse(message), status)
}
