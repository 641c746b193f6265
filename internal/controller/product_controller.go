package controller

import (
	"net/http"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/service"
	pkgdto "github.com/alimikegami/pos-microservices/marketplace-service/pkg/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}

	g.POST("/postProduct", c.AddProduct)
	g.GET("/getProducts", c.GetProducts)
	g.GET("/getProducts/:productId", c.GetProduct)
	g.GET("/searchProducts", c.SearchProducts)
	g.DELETE("/deleteProducts/:productId", c.DeleteProduct)
	g.POST("/update-solds", c.UpdateSolds)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
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

	resp, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product added successfully", resp)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	resp, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	resp, err := c.service.GetProduct(e.Request().Context(), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) SearchProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.SearchProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.NoContent(http.StatusNoContent)
}

func (c *ProductController) UpdateSolds(e echo.Context) error {
	payload := dto.SoldsUpdateRequest{}
	if ok, err := bindJSON(e, "UpdateSolds", &payload); !ok {
		return err
	}

	err := c.service.UpdateSolds(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Solds updated", nil)
}
