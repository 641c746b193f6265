package dto

import "encoding/json"

type CheckoutImage struct {
	URL string `json:"url"`
}

// CheckoutProduct is the product object of a cart row. ProductPrice is kept
// raw because clients send it either as a JSON number or a numeric string.
type CheckoutProduct struct {
	ID           string          `json:"_id"`
	ProductName  string          `json:"productName"`
	ProductPrice json.RawMessage `json:"productPrice"`
	Image        CheckoutImage   `json:"image"`
}

type CheckoutItem struct {
	Product  *CheckoutProduct `json:"productId"`
	Quantity int64            `json:"quantity"`
}

type CheckoutRequest struct {
	Products []CheckoutItem `json:"products"`
}

type CheckoutResponse struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}
