package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ServiceStatusPending = "pending"

// Service is a bookable offering listed next to products.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Name        string             `bson:"service_name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"service_price"`
	Image       Image              `bson:"image"`
	Gallery     []Image            `bson:"multiple_images"`
	StartDate   *time.Time         `bson:"start_date,omitempty"`
	EndDate     *time.Time         `bson:"end_date,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type ServiceWithOwner struct {
	Service `bson:",inline"`
	Owner   *User `bson:"owner,omitempty"`
}
