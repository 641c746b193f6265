package dto

import "time"

type CartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CartRowResponse keeps the joined product under productId so a cart fetched
// from the API can be posted back unchanged to create a checkout session.
type CartRowResponse struct {
	ID        string           `json:"_id"`
	UserID    string           `json:"userId"`
	Quantity  int64            `json:"quantity"`
	Product   *ProductResponse `json:"productId"`
	CreatedAt time.Time        `json:"createdAt"`
}
