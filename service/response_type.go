package service

// ResponseType enumerates the outcomes a service call reports to the handlers
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// NotFound response
	NotFound

	// Success response
	Success

	// ProviderError response, PayPal could not complete the call
	ProviderError

	// Rejected response, the refund could not be processed for this payment
	Rejected
)

var vals = [...]string{
	"invalid-data",
	"error",
	"not-found",
	"success",
	"provider-error",
	"rejected",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
