package repository

import (
	"context"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProductsWithOwner(ctx context.Context) (data []domain.ProductWithOwner, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (deleted bool, err error)
	IncrementSolds(ctx context.Context, id string, quantity int64) (err error)
}

type ServiceRepository interface {
	AddService(ctx context.Context, data domain.Service) (id primitive.ObjectID, err error)
	GetServicesWithOwner(ctx context.Context) (data []domain.ServiceWithOwner, err error)
	DeleteService(ctx context.Context, id string) (deleted bool, err error)
	UpdateServiceStatus(ctx context.Context, id string, status string) (service domain.Service, err error)
}

type CartRepository interface {
	AddCartEntry(ctx context.Context, data domain.CartEntry) (id primitive.ObjectID, err error)
	GetCartRows(ctx context.Context, userID string) (data []domain.CartRow, err error)
	DeleteCartEntry(ctx context.Context, id string) (err error)
	DeleteCartEntriesByUser(ctx context.Context, userID string) (deleted int64, err error)
}

type ReviewRepository interface {
	AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error)
	GetReviewsWithAuthor(ctx context.Context, productID string) (data []domain.ReviewWithAuthor, err error)
}

type UserRepository interface {
	UpsertUser(ctx context.Context, data domain.User) (err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id int64, err error)
	GetOrderByReference(ctx context.Context, referenceNumber string) (order domain.Order, err error)
}

type ProductSearchRepository interface {
	IndexProduct(ctx context.Context, data dto.ProductResponse) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	SearchProducts(ctx context.Context, query string, limit int) (data []dto.ProductResponse, err error)
}
