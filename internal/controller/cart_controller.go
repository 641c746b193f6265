package controller

import (
	"net/http"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/service"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(g *echo.Group, service service.CartService) {
	c := CartController{
		service: service,
	}

	g.POST("/addToCart", c.AddToCart)
	g.GET("/getCartData/:userId", c.GetCart)
	g.DELETE("/deleteCartProducts/:cartProductId", c.DeleteCartEntry)
	g.DELETE("/deleteCartProductsAfterPayment/:userId", c.ClearCartAfterPayment)
}

func (c *CartController) AddToCart(e echo.Context) error {
	payload := dto.CartRequest{}
	if ok, err := bindJSON(e, "AddToCart", &payload); !ok {
		return err
	}

	err := c.service.AddToCart(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product added to cart", nil)
}

func (c *CartController) GetCart(e echo.Context) error {
	resp, err := c.service.GetCart(e.Request().Context(), e.Param("userId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) DeleteCartEntry(e echo.Context) error {
	err := c.service.DeleteCartEntry(e.Request().Context(), e.Param("cartProductId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.NoContent(http.StatusNoContent)
}

func (c *CartController) ClearCartAfterPayment(e echo.Context) error {
	err := c.service.ClearCartAfterPayment(e.Request().Context(), e.Param("userId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.NoContent(http.StatusNoContent)
}
