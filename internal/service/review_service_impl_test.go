package service

import (
	"context"
	"testing"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddReview(t *testing.T) {
	repo := &MockReviewRepository{}
	svc := CreateReviewService(repo)

	err := svc.AddReview(context.Background(), dto.ReviewRequest{ProductID: "bad", UserID: "u1", Content: "ok"})
	assert.ErrorIs(t, err, errs.ErrClient)

	productID := primitive.NewObjectID()
	err = svc.AddReview(context.Background(), dto.ReviewRequest{ProductID: productID.Hex(), UserID: "u1", Content: "sturdy"})
	require.NoError(t, err)
	require.Len(t, repo.Added, 1)
	assert.Equal(t, productID, repo.Added[0].ProductID)
}

func TestGetReviews(t *testing.T) {
	t.Run("no reviews yields empty list", func(t *testing.T) {
		svc := CreateReviewService(&MockReviewRepository{})

		resp, err := svc.GetReviews(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("author name is resolved", func(t *testing.T) {
		productID := primitive.NewObjectID()
		svc := CreateReviewService(&MockReviewRepository{Reviews: []domain.ReviewWithAuthor{
			{Review: domain.Review{ID: primitive.NewObjectID(), ProductID: productID, UserID: "u1", Content: "sturdy"}, Author: &domain.User{ID: "u1", UserName: "Ana"}},
		}})

		resp, err := svc.GetReviews(context.Background(), productID.Hex())
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Ana", resp[0].UserName)
		assert.Equal(t, productID.Hex(), resp[0].ProductID)
	})
}
