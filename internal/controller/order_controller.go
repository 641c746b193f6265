package controller

import (
	"net/http"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/service"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(g *echo.Group, service service.OrderService) {
	c := OrderController{
		service: service,
	}

	g.POST("/createOrder", c.CreateOrder)
}

func (c *OrderController) CreateOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	if ok, err := bindJSON(e, "CreateOrder", &payload); !ok {
		return err
	}

	resp, err := c.service.CreateOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteResponse(e, http.StatusCreated, "Order created", resp)
}
