package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/repository"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartServiceImpl struct {
	cartRepo repository.CartRepository
}

func CreateCartService(cartRepo repository.CartRepository) CartService {
	return &CartServiceImpl{cartRepo: cartRepo}
}

// AddToCart records a new entry even when the user already has one for the
// same product.
func (s *CartServiceImpl) AddToCart(ctx context.Context, req dto.CartRequest) (err error) {
	if req.ProductID == "" || req.UserID == "" || req.Quantity <= 0 {
		return errs.ErrClient
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return fmt.Errorf("%w: invalid productId", errs.ErrClient)
	}

	_, err = s.cartRepo.AddCartEntry(ctx, domain.CartEntry{
		ProductID: productID,
		UserID:    req.UserID,
		Quantity:  req.Quantity,
		CreatedAt: time.Now().UTC(),
	})

	return
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID string) (resp []dto.CartRowResponse, err error) {
	rows, err := s.cartRepo.GetCartRows(ctx, userID)
	if err != nil {
		return
	}

	if len(rows) == 0 {
		return nil, errs.ErrEmptyCart
	}

	resp = make([]dto.CartRowResponse, 0, len(rows))
	for _, row := range rows {
		item := dto.CartRowResponse{
			ID:        row.ID.Hex(),
			UserID:    row.UserID,
			Quantity:  row.Quantity,
			CreatedAt: row.CreatedAt,
		}
		if row.Product != nil {
			product := toProductResponse(*row.Product, nil)
			item.Product = &product
		}
		resp = append(resp, item)
	}

	return resp, nil
}

func (s *CartServiceImpl) DeleteCartEntry(ctx context.Context, id string) (err error) {
	return s.cartRepo.DeleteCartEntry(ctx, id)
}

func (s *CartServiceImpl) ClearCartAfterPayment(ctx context.Context, userID string) (err error) {
	_, err = s.cartRepo.DeleteCartEntriesByUser(ctx, userID)
	return
}
