package domain

import "time"

type Order struct {
	ID              int64     `db:"id"`
	ReferenceNumber string    `db:"reference_number"`
	Email           string    `db:"email"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	Contact         string    `db:"contact"`
	Address         string    `db:"address"`
	Street          string    `db:"street"`
	City            string    `db:"city"`
	Postal          string    `db:"postal"`
	PaymentMethod   string    `db:"payment_method"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
