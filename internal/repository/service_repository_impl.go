package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceRepositoryImpl struct {
	db *mongo.Database
}

func CreateServiceRepository(db *mongo.Database) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) AddService(ctx context.Context, data domain.Service) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(servicesCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddService").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *ServiceRepositoryImpl) GetServicesWithOwner(ctx context.Context) (data []domain.ServiceWithOwner, err error) {
	pipeline := append(bson.A{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}, lookupOne(usersCollection, "user_id", "_id", "owner")...)

	cursor, err := r.db.Collection(servicesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetServicesWithOwner").Msg("")
		return
	}

	data = []domain.ServiceWithOwner{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetServicesWithOwner").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *ServiceRepositoryImpl) DeleteService(ctx context.Context, id string) (deleted bool, err error) {
	serviceID, err := parseObjectID(ctx, "DeleteService", id)
	if err != nil {
		return
	}

	result, err := r.db.Collection(servicesCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: serviceID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteService").Msg("")
		return
	}

	return result.DeletedCount == 1, nil
}

// UpdateServiceStatus returns the updated document, or ErrServiceNotFound
// without writing anything when the id matches nothing.
func (r *ServiceRepositoryImpl) UpdateServiceStatus(ctx context.Context, id string, status string) (service domain.Service, err error) {
	serviceID, err := parseObjectID(ctx, "UpdateServiceStatus", id)
	if err != nil {
		return
	}

	filter := bson.D{{Key: "_id", Value: serviceID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(servicesCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&service)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return service, errs.ErrServiceNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateServiceStatus").Msg("")
		return service, err
	}

	return service, nil
}
