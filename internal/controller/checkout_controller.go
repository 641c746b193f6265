package controller

import (
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/service"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CheckoutController struct {
	service service.CheckoutService
}

func CreateCheckoutController(g *echo.Group, service service.CheckoutService) {
	c := CheckoutController{
		service: service,
	}

	g.POST("/create-checkout-session", c.CreateCheckoutSession)
}

// CreateCheckoutSession accepts the cart rows as returned by GET /getCartData
// under "products". A client retrying a submission should resend the same
// Idempotency-Key header.
func (c *CheckoutController) CreateCheckoutSession(e echo.Context) error {
	payload := dto.CheckoutRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "CreateCheckoutSession").Msg("")
		return response.WriteErrorResponse(e, errs.ErrUnsupportedPayload, nil)
	}

	resp, err := c.service.CreateCheckoutSession(e.Request().Context(), payload, e.Request().Header.Get(idempotencyHeader))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
