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

type ReviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
}

func CreateReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo}
}

func (s *ReviewServiceImpl) AddReview(ctx context.Context, req dto.ReviewRequest) (err error) {
	if req.ProductID == "" || req.UserID == "" || req.Content == "" {
		return errs.ErrClient
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return fmt.Errorf("%w: invalid productId", errs.ErrClient)
	}

	_, err = s.reviewRepo.AddReview(ctx, domain.Review{
		ProductID: productID,
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	})

	return
}

// GetReviews returns an empty, non-nil slice when the product has no reviews.
func (s *ReviewServiceImpl) GetReviews(ctx context.Context, productID string) (resp []dto.ReviewResponse, err error) {
	reviews, err := s.reviewRepo.GetReviewsWithAuthor(ctx, productID)
	if err != nil {
		return
	}

	resp = make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ReviewResponse{
			ID:        r.ID.Hex(),
			ProductID: r.ProductID.Hex(),
			UserID:    r.UserID,
			UserName:  ownerName(r.Author),
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		})
	}

	return resp, nil
}
