package dto

import "time"

type OrderRequest struct {
	Email         string `json:"email" validate:"required,email"`
	FirstName     string `json:"fname" validate:"required"`
	LastName      string `json:"lname" validate:"required"`
	Contact       string `json:"contact" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Street        string `json:"street" validate:"required"`
	City          string `json:"city" validate:"required"`
	Postal        string `json:"postal" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type OrderResponse struct {
	ID              int64     `json:"id"`
	ReferenceNumber string    `json:"reference_number"`
	Email           string    `json:"email"`
	FirstName       string    `json:"fname"`
	LastName        string    `json:"lname"`
	Contact         string    `json:"contact"`
	Address         string    `json:"address"`
	Street          string    `json:"street"`
	City            string    `json:"city"`
	Postal          string    `json:"postal"`
	PaymentMethod   string    `json:"payment_method"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
