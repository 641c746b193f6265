package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/cache"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/media"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/repository"
	pkgdto "github.com/alimikegami/pos-microservices/marketplace-service/pkg/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	searchRepo  repository.ProductSearchRepository
	cache       cache.CatalogCache
	images      ImageUploader
	publisher   EventPublisher
}

// CreateProductService wires the product use cases. searchRepo may be nil
// when no search cluster is configured.
func CreateProductService(productRepo repository.ProductRepository, searchRepo repository.ProductSearchRepository, catalogCache cache.CatalogCache, images ImageUploader, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		searchRepo:  searchRepo,
		cache:       catalogCache,
		images:      images,
		publisher:   publisher,
	}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error) {
	if req.Image == nil || strings.TrimSpace(req.ProductName) == "" || strings.TrimSpace(req.ProductCode) == "" ||
		strings.TrimSpace(req.ProductDescription) == "" || req.ProductPrice == "" || req.StockQuantity == "" ||
		strings.TrimSpace(req.Category) == "" {
		return resp, errs.ErrMissingFields
	}

	price, err := parsePrice("productPrice", req.ProductPrice)
	if err != nil {
		return
	}

	stock, err := strconv.ParseInt(req.StockQuantity, 10, 64)
	if err != nil || stock < 0 {
		return resp, fmt.Errorf("%w: stockQuantity must be a non-negative integer", errs.ErrClient)
	}

	startDate, err := utils.ParseOptionalDate(req.StartDate)
	if err != nil {
		return resp, fmt.Errorf("%w: startDate: %v", errs.ErrClient, err)
	}

	endDate, err := utils.ParseOptionalDate(req.EndDate)
	if err != nil {
		return resp, fmt.Errorf("%w: endDate: %v", errs.ErrClient, err)
	}

	images, err := s.images.UploadImages(ctx, media.ImageUpload{
		Primary:       req.Image,
		Gallery:       req.MultipleImages,
		PrimaryFolder: media.ProductsFolder,
		GalleryFolder: media.ProductsFolder,
	})
	if err != nil {
		return
	}

	now := time.Now().UTC()
	product := domain.Product{
		UserID:        req.UserID,
		Name:          strings.TrimSpace(req.ProductName),
		Code:          strings.TrimSpace(req.ProductCode),
		Description:   req.ProductDescription,
		Price:         price,
		StockQuantity: stock,
		Category:      strings.TrimSpace(req.Category),
		Image:         images.Primary,
		Gallery:       images.Gallery,
		StartDate:     startDate,
		EndDate:       endDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	product.ID, err = s.productRepo.AddProduct(ctx, product)
	if err != nil {
		s.images.Rollback(ctx, images)
		return
	}

	invalidateCache(ctx, s.cache, cache.ProductsKey)

	resp = toProductResponse(product, nil)
	publishEvent(ctx, s.publisher, dto.EventProductCreated, resp.ID, resp)

	return resp, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (resp []dto.ProductResponse, err error) {
	err = s.cache.Get(ctx, cache.ProductsKey, &resp)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetProducts").Msg("cache read failed")
	}

	gen, genErr := s.cache.Generation(ctx, cache.ProductsKey)
	if genErr != nil {
		log.Ctx(ctx).Warn().Err(genErr).Str("component", "GetProducts").Msg("cache generation read failed")
	}

	products, err := s.productRepo.GetProductsWithOwner(ctx)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p.Product, p.Owner))
	}

	if genErr == nil {
		fillCache(ctx, s.cache, cache.ProductsKey, gen, resp)
	}

	return resp, nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(product, nil), nil
}

// DeleteProduct removes exactly the given product. Carts and reviews that
// reference it are left untouched.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	deleted, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	if !deleted {
		log.Ctx(ctx).Info().Str("component", "DeleteProduct").Str("product_id", id).Msg("product already absent")
		return nil
	}

	invalidateCache(ctx, s.cache, cache.ProductsKey)
	publishEvent(ctx, s.publisher, dto.EventProductDeleted, id, dto.ProductDeletedEvent{ID: id})

	return nil
}

func (s *ProductServiceImpl) SearchProducts(ctx context.Context, filter pkgdto.Filter) (resp []dto.ProductResponse, err error) {
	if s.searchRepo == nil {
		return nil, errs.ErrSearchNotConfigured
	}

	if strings.TrimSpace(filter.Q) == "" {
		return nil, fmt.Errorf("%w: q is required", errs.ErrClient)
	}

	return s.searchRepo.SearchProducts(ctx, filter.Q, filter.SearchLimit())
}

// UpdateSolds adds each item's quantity to its product's sold counter. The
// increments are independent: they are not tied to a confirmed payment and a
// product that no longer exists is skipped.
func (s *ProductServiceImpl) UpdateSolds(ctx context.Context, req dto.SoldsUpdateRequest) (err error) {
	if len(req.UpdateProducts) == 0 {
		return fmt.Errorf("%w: updateproducts is empty", errs.ErrClient)
	}

	for i, item := range req.UpdateProducts {
		if item.Product == nil || item.Product.ID == "" || item.Quantity <= 0 {
			return fmt.Errorf("%w: updateproducts[%d] needs productId._id and a positive quantity", errs.ErrClient, i)
		}
	}

	updated := make([]dto.SoldsItem, 0, len(req.UpdateProducts))
	for _, item := range req.UpdateProducts {
		err = s.productRepo.IncrementSolds(ctx, item.Product.ID, item.Quantity)
		if errors.Is(err, errs.ErrNotFound) {
			log.Ctx(ctx).Warn().Str("component", "UpdateSolds").Str("product_id", item.Product.ID).Msg("product not found, skipped")
			continue
		}
		if err != nil {
			return err
		}

		updated = append(updated, item)
	}

	invalidateCache(ctx, s.cache, cache.ProductsKey)
	publishEvent(ctx, s.publisher, dto.EventSoldsUpdated, "", updated)

	return nil
}
