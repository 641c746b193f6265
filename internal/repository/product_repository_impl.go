package repository

import (
	"context"
	"errors"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateProductRepository(db *mongo.Database) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(productsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *ProductRepositoryImpl) GetProductsWithOwner(ctx context.Context) (data []domain.ProductWithOwner, err error) {
	pipeline := append(bson.A{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}, lookupOne(usersCollection, "user_id", "_id", "owner")...)

	cursor, err := r.db.Collection(productsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsWithOwner").Msg("")
		return
	}

	data = []domain.ProductWithOwner{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsWithOwner").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := parseObjectID(ctx, "GetProductByID", id)
	if err != nil {
		return
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection(productsCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		if errors.Is(err, mongo.ErrNoDocuments) {
			return product, errs.ErrNotFound
		}

		return product, err
	}

	return product, nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (deleted bool, err error) {
	productID, err := parseObjectID(ctx, "DeleteProduct", id)
	if err != nil {
		return
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection(productsCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	return result.DeletedCount == 1, nil
}

func (r *ProductRepositoryImpl) IncrementSolds(ctx context.Context, id string, quantity int64) (err error) {
	productID, err := parseObjectID(ctx, "IncrementSolds", id)
	if err != nil {
		return
	}

	filter := bson.D{{Key: "_id", Value: productID}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "solds", Value: quantity}}}}

	result, err := r.db.Collection(productsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IncrementSolds").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
