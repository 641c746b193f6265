package repository

import (
	"context"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepositoryImpl struct {
	db *mongo.Database
}

func CreateReviewRepository(db *mongo.Database) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(reviewsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *ReviewRepositoryImpl) GetReviewsWithAuthor(ctx context.Context, productID string) (data []domain.ReviewWithAuthor, err error) {
	objectID, err := parseObjectID(ctx, "GetReviewsWithAuthor", productID)
	if err != nil {
		return
	}

	pipeline := append(bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "product_id", Value: objectID}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}, lookupOne(usersCollection, "user_id", "_id", "author")...)

	cursor, err := r.db.Collection(reviewsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsWithAuthor").Msg("")
		return
	}

	data = []domain.ReviewWithAuthor{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsWithAuthor").Msg("")
		return nil, err
	}

	return data, nil
}
