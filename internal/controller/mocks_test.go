package controller

import (
	"context"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	pkgdto "github.com/alimikegami/pos-microservices/marketplace-service/pkg/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
)

// MockProductService implements service.ProductService
type MockProductService struct {
	Added     []dto.ProductRequest
	Products  []dto.ProductResponse
	DeletedID string
	Filter    pkgdto.Filter
	Solds     []dto.SoldsUpdateRequest
	Err       error
}

func (m *MockProductService) AddProduct(_ context.Context, req dto.ProductRequest) (dto.ProductResponse, error) {
	m.Added = append(m.Added, req)
	return dto.ProductResponse{ID: "p1", ProductName: req.ProductName}, m.Err
}

func (m *MockProductService) GetProducts(_ context.Context) ([]dto.ProductResponse, error) {
	return m.Products, m.Err
}

func (m *MockProductService) GetProduct(_ context.Context, id string) (dto.ProductResponse, error) {
	for _, p := range m.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return dto.ProductResponse{}, errs.ErrNotFound
}

func (m *MockProductService) DeleteProduct(_ context.Context, id string) error {
	m.DeletedID = id
	return m.Err
}

func (m *MockProductService) SearchProducts(_ context.Context, filter pkgdto.Filter) ([]dto.ProductResponse, error) {
	m.Filter = filter
	return m.Products, m.Err
}

func (m *MockProductService) UpdateSolds(_ context.Context, req dto.SoldsUpdateRequest) error {
	m.Solds = append(m.Solds, req)
	return m.Err
}

// MockServiceListingService implements service.ServiceListingService
type MockServiceListingService struct {
	Added    []dto.ServiceRequest
	StatusID string
	Err      error
}

func (m *MockServiceListingService) AddService(_ context.Context, req dto.ServiceRequest) (dto.ServiceResponse, error) {
	m.Added = append(m.Added, req)
	return dto.ServiceResponse{ID: "s1", ServiceName: req.ServiceName, Status: "pending"}, m.Err
}

func (m *MockServiceListingService) GetServices(_ context.Context) ([]dto.ServiceResponse, error) {
	return nil, m.Err
}

func (m *MockServiceListingService) DeleteService(_ context.Context, _ string) error {
	return m.Err
}

func (m *MockServiceListingService) UpdateServiceStatus(_ context.Context, id string, req dto.ServiceStatusRequest) (dto.ServiceResponse, error) {
	m.StatusID = id
	return dto.ServiceResponse{ID: id, Status: req.Status}, m.Err
}

// MockCartService implements service.CartService
type MockCartService struct {
	Added       []dto.CartRequest
	Rows        []dto.CartRowResponse
	ClearedUser string
	Err         error
}

func (m *MockCartService) AddToCart(_ context.Context, req dto.CartRequest) error {
	m.Added = append(m.Added, req)
	return m.Err
}

func (m *MockCartService) GetCart(_ context.Context, _ string) ([]dto.CartRowResponse, error) {
	return m.Rows, m.Err
}

func (m *MockCartService) DeleteCartEntry(_ context.Context, _ string) error {
	return m.Err
}

func (m *MockCartService) ClearCartAfterPayment(_ context.Context, userID string) error {
	m.ClearedUser = userID
	return m.Err
}

// MockReviewService implements service.ReviewService
type MockReviewService struct {
	Reviews []dto.ReviewResponse
	Err     error
}

func (m *MockReviewService) AddReview(_ context.Context, _ dto.ReviewRequest) error {
	return m.Err
}

func (m *MockReviewService) GetReviews(_ context.Context, _ string) ([]dto.ReviewResponse, error) {
	return m.Reviews, m.Err
}

// MockOrderService implements service.OrderService
type MockOrderService struct {
	Err error
}

func (m *MockOrderService) CreateOrder(_ context.Context, req dto.OrderRequest) (dto.OrderResponse, error) {
	return dto.OrderResponse{ID: 1, ReferenceNumber: "01J9REF", Email: req.Email}, m.Err
}

// MockCheckoutService implements service.CheckoutService
type MockCheckoutService struct {
	Request        dto.CheckoutRequest
	IdempotencyKey string
	Err            error
}

func (m *MockCheckoutService) CreateCheckoutSession(_ context.Context, req dto.CheckoutRequest, idempotencyKey string) (dto.CheckoutResponse, error) {
	m.Request = req
	m.IdempotencyKey = idempotencyKey
	return dto.CheckoutResponse{ID: "cs_test_1"}, m.Err
}
