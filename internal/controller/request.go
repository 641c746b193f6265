package controller

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/media"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/response"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	primaryImageField = "image"
	galleryImageField = "multipleImages"
	idempotencyHeader = "Idempotency-Key"
)

// bindJSON binds and validates a JSON body, writing the error response itself
// when it returns false.
func bindJSON(e echo.Context, component string, payload interface{}) (ok bool, err error) {
	if err = e.Bind(payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", component).Msg("")
		return false, response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err = e.Validate(payload); err != nil {
		return false, response.WriteValidationErrorResponse(e, errs.ErrClient, err)
	}

	return true, nil
}

// validationSentinel reports a missing required field as ErrMissingFields and
// anything else as a plain client error.
func validationSentinel(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			if fe.Tag() == "required" {
				return errs.ErrMissingFields
			}
		}
	}

	return errs.ErrClient
}

// listingImages pulls the primary image and the gallery out of a multipart
// form. A missing primary image is returned as nil for validation to report.
func listingImages(e echo.Context) (primary *multipart.FileHeader, gallery []*multipart.FileHeader, err error) {
	form, err := e.MultipartForm()
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, nil, errs.ErrFileTooLarge
		}
		return nil, nil, errs.ErrClient
	}

	primaries := form.File[primaryImageField]
	if len(primaries) > 1 {
		return nil, nil, errs.ErrTooManyImages
	}
	if len(primaries) == 1 {
		primary = primaries[0]
	}

	gallery = form.File[galleryImageField]
	if len(gallery) > media.MaxGalleryImages {
		return nil, nil, errs.ErrTooManyImages
	}

	return primary, gallery, nil
}
