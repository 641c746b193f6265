package repository

import (
	"context"
	"fmt"

	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	productsCollection = "products"
	servicesCollection = "services"
	cartsCollection    = "carts"
	reviewsCollection  = "reviews"
	usersCollection    = "users"
)

// parseObjectID turns a malformed id into a client error.
func parseObjectID(ctx context.Context, component, id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return objectID, fmt.Errorf("%w: invalid id %q", errs.ErrClient, id)
	}

	return objectID, nil
}

// lookupOne joins a single document from another collection as field "as".
// The joined field is absent when nothing matches.
func lookupOne(from, localField, foreignField, as string) bson.A {
	return bson.A{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: foreignField},
			{Key: "as", Value: as},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}
