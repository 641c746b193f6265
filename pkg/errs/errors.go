package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer     = http.StatusInternalServerError
	ErrStatusClient             = http.StatusBadRequest
	ErrStatusUnprocessable      = http.StatusUnprocessableEntity
	ErrStatusNotFound           = http.StatusNotFound
	ErrStatusFileTooLarge       = http.StatusRequestEntityTooLarge
	ErrStatusServiceUnavailable = http.StatusServiceUnavailable
)

var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrClient              = errors.New("Bad request")
	ErrNotFound            = errors.New("Resource not found")
	ErrMissingFields       = errors.New("Please Fill All Fields!")
	ErrEmptyCart           = errors.New("Empty Cart!")
	ErrServiceNotFound     = errors.New("Service not found")
	ErrNotAnImage          = errors.New("Uploaded file is not an image")
	ErrTooManyImages       = errors.New("Too many images uploaded")
	ErrFileTooLarge        = errors.New("Uploaded file exceeds the size limit")
	ErrInvalidLineItem     = errors.New("Invalid line item")
	ErrUnsupportedPayload  = errors.New("Unsupported checkout payload")
	ErrPaymentGatewayBusy  = errors.New("Payment gateway is temporarily unavailable")
	ErrSearchNotConfigured = errors.New("Product search is not configured")
)

var errorMap = map[error]int{
	ErrInternalServer:      ErrStatusInternalServer,
	ErrClient:              ErrStatusClient,
	ErrNotFound:            ErrStatusNotFound,
	ErrMissingFields:       ErrStatusUnprocessable,
	ErrEmptyCart:           ErrStatusNotFound,
	ErrServiceNotFound:     ErrStatusNotFound,
	ErrNotAnImage:          ErrStatusClient,
	ErrTooManyImages:       ErrStatusClient,
	ErrFileTooLarge:        ErrStatusFileTooLarge,
	ErrInvalidLineItem:     ErrStatusUnprocessable,
	ErrUnsupportedPayload:  ErrStatusClient,
	ErrPaymentGatewayBusy:  ErrStatusServiceUnavailable,
	ErrSearchNotConfigured: ErrStatusServiceUnavailable,
}

// GetErrorStatusCode maps err, or any sentinel it wraps, to an HTTP status.
// Anything unknown is a 500.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}
