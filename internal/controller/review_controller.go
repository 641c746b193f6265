package controller

import (
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/service"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
)

const noReviewsMessage = "Product yet not have any review!"

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(g *echo.Group, service service.ReviewService) {
	c := ReviewController{
		service: service,
	}

	g.POST("/productsReview", c.AddReview)
	g.GET("/getReviews/:productId", c.GetReviews)
}

func (c *ReviewController) AddReview(e echo.Context) error {
	payload := dto.ReviewRequest{}
	if ok, err := bindJSON(e, "AddReview", &payload); !ok {
		return err
	}

	err := c.service.AddReview(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Review added", nil)
}

func (c *ReviewController) GetReviews(e echo.Context) error {
	resp, err := c.service.GetReviews(e.Request().Context(), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if len(resp) == 0 {
		return response.WriteSuccessResponse(e, noReviewsMessage, resp)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
