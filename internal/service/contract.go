package service

import (
	"context"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/media"
	pkgdto "github.com/alimikegami/pos-microservices/marketplace-service/pkg/dto"
	"github.com/segmentio/kafka-go"
)

type ProductService interface {
	AddProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context) (resp []dto.ProductResponse, err error)
	GetProduct(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	SearchProducts(ctx context.Context, filter pkgdto.Filter) (resp []dto.ProductResponse, err error)
	UpdateSolds(ctx context.Context, req dto.SoldsUpdateRequest) (err error)
}

type ServiceListingService interface {
	AddService(ctx context.Context, req dto.ServiceRequest) (resp dto.ServiceResponse, err error)
	GetServices(ctx context.Context) (resp []dto.ServiceResponse, err error)
	DeleteService(ctx context.Context, id string) (err error)
	UpdateServiceStatus(ctx context.Context, id string, req dto.ServiceStatusRequest) (resp dto.ServiceResponse, err error)
}

type CartService interface {
	AddToCart(ctx context.Context, req dto.CartRequest) (err error)
	GetCart(ctx context.Context, userID string) (resp []dto.CartRowResponse, err error)
	DeleteCartEntry(ctx context.Context, id string) (err error)
	ClearCartAfterPayment(ctx context.Context, userID string) (err error)
}

type ReviewService interface {
	AddReview(ctx context.Context, req dto.ReviewRequest) (err error)
	GetReviews(ctx context.Context, productID string) (resp []dto.ReviewResponse, err error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, req dto.OrderRequest) (resp dto.OrderResponse, err error)
}

type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, req dto.CheckoutRequest, idempotencyKey string) (resp dto.CheckoutResponse, err error)
}

type EventConsumer interface {
	ConsumeEvent(ctx context.Context)
	HandleMessage(ctx context.Context, value []byte) (err error)
}

// EventPublisher emits domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, data interface{}) error
}

// ImageUploader hosts the images attached to a listing.
type ImageUploader interface {
	UploadImages(ctx context.Context, req media.ImageUpload) (media.UploadedImages, error)
	Rollback(ctx context.Context, images media.UploadedImages)
}

// MessageReader is satisfied by *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}
