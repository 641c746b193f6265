package controller

import (
	"net/http"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/service"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ServiceListingController struct {
	service service.ServiceListingService
}

func CreateServiceListingController(g *echo.Group, service service.ServiceListingService) {
	c := ServiceListingController{
		service: service,
	}

	g.POST("/create-service", c.AddService)
	g.GET("/getServices", c.GetServices)
	g.DELETE("/deleteServices/:id", c.DeleteService)
	g.PUT("/update-status/:id", c.UpdateServiceStatus)
}

func (c *ServiceListingController) AddService(e echo.Context) error {
	payload := dto.ServiceRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddService").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	var err error
	payload.Image, payload.MultipleImages, err = listingImages(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if err = e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, validationSentinel(err), err)
	}

	resp, err := c.service.AddService(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Service added successfully", resp)
}

func (c *ServiceListingController) GetServices(e echo.Context) error {
	resp, err := c.service.GetServices(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ServiceListingController) DeleteService(e echo.Context) error {
	err := c.service.DeleteService(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.NoContent(http.StatusNoContent)
}

func (c *ServiceListingController) UpdateServiceStatus(e echo.Context) error {
	payload := dto.ServiceStatusRequest{}
	if ok, err := bindJSON(e, "UpdateServiceStatus", &payload); !ok {
		return err
	}

	resp, err := c.service.UpdateServiceStatus(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Service status updated", resp)
}
