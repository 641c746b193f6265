package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type OrderRepositoryImpl struct {
	db *sqlx.DB
}

func CreateOrderRepository(db *sqlx.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id int64, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, `INSERT INTO orders(reference_number, email, first_name, last_name, contact, address, street, city, postal, payment_method, created_at, updated_at)
		VALUES (:reference_number, :email, :first_name, :last_name, :contact, :address, :street, :city, :postal, :payment_method, :created_at, :updated_at) RETURNING id`)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return id, nil
}

func (r *OrderRepositoryImpl) GetOrderByReference(ctx context.Context, referenceNumber string) (order domain.Order, err error) {
	err = r.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE reference_number = $1", referenceNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return order, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByReference").Msg("")
		return order, err
	}

	return order, nil
}
