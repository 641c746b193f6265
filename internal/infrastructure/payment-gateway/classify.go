package paymentgateway

import (
	"errors"
	"net/http"

	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/midtrans/midtrans-go"
	"github.com/stripe/stripe-go/v80"
)

// IsClientError reports whether err was caused by the request rather than by
// the gateway being unhealthy. Rate limiting is not a client error.
func IsClientError(err error) bool {
	if err == nil {
		return true
	}

	if errors.Is(err, errs.ErrInvalidLineItem) {
		return true
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return isClientStatus(stripeErr.HTTPStatusCode)
	}

	var midtransErr *midtrans.Error
	if errors.As(err, &midtransErr) {
		return isClientStatus(midtransErr.StatusCode)
	}

	return false
}

func isClientStatus(code int) bool {
	return code >= 400 && code < 500 && code != http.StatusTooManyRequests
}
