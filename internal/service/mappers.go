package service

import (
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
)

func ownerName(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.UserName
}

func toProductResponse(p domain.Product, owner *domain.User) dto.ProductResponse {
	gallery := p.Gallery
	if gallery == nil {
		gallery = []domain.Image{}
	}

	return dto.ProductResponse{
		ID:                 p.ID.Hex(),
		UserID:             p.UserID,
		UserName:           ownerName(owner),
		ProductName:        p.Name,
		ProductCode:        p.Code,
		ProductDescription: p.Description,
		ProductPrice:       p.Price,
		StockQuantity:      p.StockQuantity,
		Category:           p.Category,
		Image:              p.Image,
		MultipleImages:     gallery,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Solds:              p.Solds,
		CreatedAt:          p.CreatedAt,
	}
}

func toServiceResponse(s domain.Service, owner *domain.User) dto.ServiceResponse {
	gallery := s.Gallery
	if gallery == nil {
		gallery = []domain.Image{}
	}

	return dto.ServiceResponse{
		ID:             s.ID.Hex(),
		UserID:         s.UserID,
		UserName:       ownerName(owner),
		ServiceName:    s.Name,
		Description:    s.Description,
		ServicePrice:   s.Price,
		Image:          s.Image,
		MultipleImages: gallery,
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
	}
}

func toOrderResponse(o domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              o.ID,
		ReferenceNumber: o.ReferenceNumber,
		Email:           o.Email,
		FirstName:       o.FirstName,
		LastName:        o.LastName,
		Contact:         o.Contact,
		Address:         o.Address,
		Street:          o.Street,
		City:            o.City,
		Postal:          o.Postal,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
