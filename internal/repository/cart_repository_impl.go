package repository

import (
	"context"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartRepositoryImpl struct {
	db *mongo.Database
}

func CreateCartRepository(db *mongo.Database) CartRepository {
	return &CartRepositoryImpl{db: db}
}

// AddCartEntry always inserts; repeated adds of the same product are
// separate rows.
func (r *CartRepositoryImpl) AddCartEntry(ctx context.Context, data domain.CartEntry) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(cartsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCartEntry").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *CartRepositoryImpl) GetCartRows(ctx context.Context, userID string) (data []domain.CartRow, err error) {
	pipeline := append(bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
	}, lookupOne(productsCollection, "product_id", "_id", "product")...)

	cursor, err := r.db.Collection(cartsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartRows").Msg("")
		return
	}

	data = []domain.CartRow{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartRows").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *CartRepositoryImpl) DeleteCartEntry(ctx context.Context, id string) (err error) {
	entryID, err := parseObjectID(ctx, "DeleteCartEntry", id)
	if err != nil {
		return
	}

	_, err = r.db.Collection(cartsCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: entryID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCartEntry").Msg("")
	}

	return
}

func (r *CartRepositoryImpl) DeleteCartEntriesByUser(ctx context.Context, userID string) (deleted int64, err error) {
	result, err := r.db.Collection(cartsCollection).DeleteMany(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCartEntriesByUser").Msg("")
		return
	}

	return result.DeletedCount, nil
}
