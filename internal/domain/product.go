package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	Name          string             `bson:"product_name"`
	Code          string             `bson:"product_code"`
	Description   string             `bson:"product_description"`
	Price         float64            `bson:"product_price"`
	StockQuantity int64              `bson:"stock_quantity"`
	Category      string             `bson:"category"`
	Image         Image              `bson:"image"`
	Gallery       []Image            `bson:"multiple_images"`
	StartDate     *time.Time         `bson:"start_date,omitempty"`
	EndDate       *time.Time         `bson:"end_date,omitempty"`
	Solds         int64              `bson:"solds"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// ProductWithOwner is a product joined with its owner's projection. Owner is
// nil when no user event for the owner has been seen yet.
type ProductWithOwner struct {
	Product `bson:",inline"`
	Owner   *User `bson:"owner,omitempty"`
}
