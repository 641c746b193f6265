package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID primitive.ObjectID `bson:"product_id"`
	UserID    string             `bson:"user_id"`
	Quantity  int64              `bson:"quantity"`
	CreatedAt time.Time          `bson:"created_at"`
}

// CartRow is a cart entry with its product resolved. Product is nil when the
// product was deleted after the entry was added.
type CartRow struct {
	CartEntry `bson:",inline"`
	Product   *Product `bson:"product,omitempty"`
}
