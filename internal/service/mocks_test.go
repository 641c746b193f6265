package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/cache"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/media"
	paymentgateway "github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/payment-gateway"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository implements repository.ProductRepository
type MockProductRepository struct {
	Added        []domain.Product
	AddErr       error
	Products     []domain.ProductWithOwner
	ListCalls    int
	ListErr      error
	Deleted      bool
	DeleteErr    error
	Increments   map[string]int64
	IncrementErr map[string]error
	// DuringList runs inside GetProductsWithOwner after the snapshot is taken
	DuringList func()
}

func (m *MockProductRepository) AddProduct(_ context.Context, data domain.Product) (primitive.ObjectID, error) {
	if m.AddErr != nil {
		return primitive.NilObjectID, m.AddErr
	}
	m.Added = append(m.Added, data)
	return primitive.NewObjectID(), nil
}

func (m *MockProductRepository) GetProductsWithOwner(_ context.Context) ([]domain.ProductWithOwner, error) {
	m.ListCalls++
	products := append([]domain.ProductWithOwner(nil), m.Products...)
	if m.DuringList != nil {
		m.DuringList()
	}
	return products, m.ListErr
}

func (m *MockProductRepository) GetProductByID(_ context.Context, id string) (domain.Product, error) {
	for _, p := range m.Products {
		if p.ID.Hex() == id {
			return p.Product, nil
		}
	}
	return domain.Product{}, errs.ErrNotFound
}

func (m *MockProductRepository) DeleteProduct(_ context.Context, _ string) (bool, error) {
	return m.Deleted, m.DeleteErr
}

func (m *MockProductRepository) IncrementSolds(_ context.Context, id string, quantity int64) error {
	if err := m.IncrementErr[id]; err != nil {
		return err
	}
	if m.Increments == nil {
		m.Increments = map[string]int64{}
	}
	m.Increments[id] += quantity
	return nil
}

// MockServiceRepository implements repository.ServiceRepository
type MockServiceRepository struct {
	Added     []domain.Service
	AddErr    error
	Services  []domain.ServiceWithOwner
	Deleted   bool
	Updated   domain.Service
	UpdateErr error
	Status    string
}

func (m *MockServiceRepository) AddService(_ context.Context, data domain.Service) (primitive.ObjectID, error) {
	if m.AddErr != nil {
		return primitive.NilObjectID, m.AddErr
	}
	m.Added = append(m.Added, data)
	return primitive.NewObjectID(), nil
}

func (m *MockServiceRepository) GetServicesWithOwner(_ context.Context) ([]domain.ServiceWithOwner, error) {
	return m.Services, nil
}

func (m *MockServiceRepository) DeleteService(_ context.Context, _ string) (bool, error) {
	return m.Deleted, nil
}

func (m *MockServiceRepository) UpdateServiceStatus(_ context.Context, _ string, status string) (domain.Service, error) {
	m.Status = status
	if m.UpdateErr != nil {
		return domain.Service{}, m.UpdateErr
	}
	updated := m.Updated
	updated.Status = status
	return updated, nil
}

// MockCartRepository implements repository.CartRepository
type MockCartRepository struct {
	Added        []domain.CartEntry
	Rows         []domain.CartRow
	DeletedID    string
	DeleteErr    error
	ClearedUser  string
	ClearedCount int64
}

func (m *MockCartRepository) AddCartEntry(_ context.Context, data domain.CartEntry) (primitive.ObjectID, error) {
	m.Added = append(m.Added, data)
	return primitive.NewObjectID(), nil
}

func (m *MockCartRepository) GetCartRows(_ context.Context, _ string) ([]domain.CartRow, error) {
	return m.Rows, nil
}

func (m *MockCartRepository) DeleteCartEntry(_ context.Context, id string) error {
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockCartRepository) DeleteCartEntriesByUser(_ context.Context, userID string) (int64, error) {
	m.ClearedUser = userID
	return m.ClearedCount, nil
}

// MockReviewRepository implements repository.ReviewRepository
type MockReviewRepository struct {
	Added   []domain.Review
	Reviews []domain.ReviewWithAuthor
}

func (m *MockReviewRepository) AddReview(_ context.Context, data domain.Review) (primitive.ObjectID, error) {
	m.Added = append(m.Added, data)
	return primitive.NewObjectID(), nil
}

func (m *MockReviewRepository) GetReviewsWithAuthor(_ context.Context, _ string) ([]domain.ReviewWithAuthor, error) {
	return m.Reviews, nil
}

// MockUserRepository implements repository.UserRepository
type MockUserRepository struct {
	Upserted []domain.User
}

func (m *MockUserRepository) UpsertUser(_ context.Context, data domain.User) error {
	m.Upserted = append(m.Upserted, data)
	return nil
}

// MockOrderRepository implements repository.OrderRepository
type MockOrderRepository struct {
	Added  []domain.Order
	AddErr error
}

func (m *MockOrderRepository) AddOrder(_ context.Context, data domain.Order) (int64, error) {
	if m.AddErr != nil {
		return 0, m.AddErr
	}
	m.Added = append(m.Added, data)
	return int64(len(m.Added)), nil
}

func (m *MockOrderRepository) GetOrderByReference(_ context.Context, _ string) (domain.Order, error) {
	return domain.Order{}, nil
}

// MockSearchRepository implements repository.ProductSearchRepository
type MockSearchRepository struct {
	Indexed []dto.ProductResponse
	Removed []string
	Query   string
	Limit   int
	Results []dto.ProductResponse
}

func (m *MockSearchRepository) IndexProduct(_ context.Context, data dto.ProductResponse) error {
	m.Indexed = append(m.Indexed, data)
	return nil
}

func (m *MockSearchRepository) DeleteProduct(_ context.Context, id string) error {
	m.Removed = append(m.Removed, id)
	return nil
}

func (m *MockSearchRepository) SearchProducts(_ context.Context, query string, limit int) ([]dto.ProductResponse, error) {
	m.Query, m.Limit = query, limit
	return m.Results, nil
}

// MockCache is an in-memory cache.CatalogCache
type MockCache struct {
	mu          sync.Mutex
	Entries     map[string][]byte
	Generations map[string]int64
	Deletes     []string
}

func (m *MockCache) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.Entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *MockCache) Generation(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Generations[key], nil
}

func (m *MockCache) SetIfGeneration(_ context.Context, key string, generation int64, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Generations[key] != generation {
		return cache.ErrStaleGeneration
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.Entries == nil {
		m.Entries = map[string][]byte{}
	}
	m.Entries[key] = raw
	return nil
}

func (m *MockCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Generations == nil {
		m.Generations = map[string]int64{}
	}
	for _, k := range keys {
		delete(m.Entries, k)
		m.Generations[k]++
	}
	m.Deletes = append(m.Deletes, keys...)
	return nil
}

type publishedEvent struct {
	EventType string
	Key       string
	Data      interface{}
}

// MockPublisher records published events
type MockPublisher struct {
	Events []publishedEvent
	Err    error
}

func (m *MockPublisher) Publish(_ context.Context, eventType, key string, data interface{}) error {
	m.Events = append(m.Events, publishedEvent{EventType: eventType, Key: key, Data: data})
	return m.Err
}

// MockImageUploader implements ImageUploader
type MockImageUploader struct {
	Requests   []media.ImageUpload
	Err        error
	RolledBack []media.UploadedImages
}

func (m *MockImageUploader) UploadImages(_ context.Context, req media.ImageUpload) (media.UploadedImages, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return media.UploadedImages{}, m.Err
	}

	result := media.UploadedImages{
		Primary: domain.Image{PublicID: req.PrimaryFolder + "/primary", URL: "https://img.example/primary.png"},
	}
	for range req.Gallery {
		result.Gallery = append(result.Gallery, domain.Image{PublicID: req.GalleryFolder + "/gallery", URL: "https://img.example/gallery.png"})
	}
	return result, nil
}

func (m *MockImageUploader) Rollback(_ context.Context, images media.UploadedImages) {
	m.RolledBack = append(m.RolledBack, images)
}

// MockGateway implements paymentgateway.Gateway
type MockGateway struct {
	Requests []paymentgateway.SessionRequest
	Session  paymentgateway.Session
	Err      error
}

func (m *MockGateway) CreateSession(_ context.Context, req paymentgateway.SessionRequest) (paymentgateway.Session, error) {
	m.Requests = append(m.Requests, req)
	return m.Session, m.Err
}

// MockMessageReader replays Messages and then blocks until ctx ends
type MockMessageReader struct {
	Messages []kafka.Message
}

func (m *MockMessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(m.Messages) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := m.Messages[0]
	m.Messages = m.Messages[1:]
	return msg, nil
}
