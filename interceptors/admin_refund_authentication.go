package interceptors

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/helpers"
)

// AdminRefundAuthenticationIntercept checks that the user is an admin allowed to refund payments
func AdminRefundAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identityType := authentication.GetAuthorisedIdentityType(r)
		if identityType != authentication.Oauth2IdentityType {
			log.ErrorR(r, fmt.Errorf("admin refund interceptor unauthorised: not oauth2 identity type"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// Get user details from context, passed in by UserAuthenticationInterceptor
		userDetails, ok := r.Context().Value(authentication.ContextKeyUserDetails).(authentication.AuthUserDetails)
		if !ok {
			log.ErrorR(r, fmt.Errorf("AdminRefundAuthenticationInterceptor error: invalid AuthUserDetails from UserAuthenticationInterceptor"))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if userDetails.ID == "" {
			log.ErrorR(r, fmt.Errorf("AdminRefundAuthenticationInterceptor unauthorised: no authorised identity"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		hasRefundRole := authentication.IsRoleAuthorised(r, helpers.AdminPaymentRefundRole)
		debugMap := log.Data{
			"auth_user_has_refund_role": hasRefundRole,
			"request_method":            r.Method,
		}

		if !hasRefundRole {
			w.WriteHeader(http.StatusUnauthorized)
			log.InfoR(r, "AdminRefundAuthenticationInterceptor unauthorised", debugMap)
			return
		}

		log.InfoR(r, "AdminRefundAuthenticationInterceptor authorised as refund admin role", debugMap)
		next.ServeHTTP(w, r)
	})
}
