package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/cache"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/infrastructure/media"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/repository"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type ServiceListingServiceImpl struct {
	serviceRepo repository.ServiceRepository
	cache       cache.CatalogCache
	images      ImageUploader
	publisher   EventPublisher
}

func CreateServiceListingService(serviceRepo repository.ServiceRepository, catalogCache cache.CatalogCache, images ImageUploader, publisher EventPublisher) ServiceListingService {
	return &ServiceListingServiceImpl{
		serviceRepo: serviceRepo,
		cache:       catalogCache,
		images:      images,
		publisher:   publisher,
	}
}

func (s *ServiceListingServiceImpl) AddService(ctx context.Context, req dto.ServiceRequest) (resp dto.ServiceResponse, err error) {
	if req.Image == nil || strings.TrimSpace(req.ServiceName) == "" || strings.TrimSpace(req.Description) == "" || req.ServicePrice == "" {
		return resp, errs.ErrMissingFields
	}

	price, err := parsePrice("servicePrice", req.ServicePrice)
	if err != nil {
		return
	}

	startDate, err := utils.ParseOptionalDate(req.StartDate)
	if err != nil {
		return resp, fmt.Errorf("%w: startDate: %v", errs.ErrClient, err)
	}

	endDate, err := utils.ParseOptionalDate(req.EndDate)
	if err != nil {
		return resp, fmt.Errorf("%w: endDate: %v", errs.ErrClient, err)
	}

	// the cover image shares the product folder, the gallery has its own
	images, err := s.images.UploadImages(ctx, media.ImageUpload{
		Primary:       req.Image,
		Gallery:       req.MultipleImages,
		PrimaryFolder: media.ProductsFolder,
		GalleryFolder: media.ServicesFolder,
	})
	if err != nil {
		return
	}

	now := time.Now().UTC()
	svc := domain.Service{
		UserID:      req.UserID,
		Name:        strings.TrimSpace(req.ServiceName),
		Description: req.Description,
		Price:       price,
		Image:       images.Primary,
		Gallery:     images.Gallery,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      domain.ServiceStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	svc.ID, err = s.serviceRepo.AddService(ctx, svc)
	if err != nil {
		s.images.Rollback(ctx, images)
		return
	}

	invalidateCache(ctx, s.cache, cache.ServicesKey)

	resp = toServiceResponse(svc, nil)
	publishEvent(ctx, s.publisher, dto.EventServiceCreated, resp.ID, dto.ServiceEvent{ID: resp.ID, Status: svc.Status})

	return resp, nil
}

func (s *ServiceListingServiceImpl) GetServices(ctx context.Context) (resp []dto.ServiceResponse, err error) {
	err = s.cache.Get(ctx, cache.ServicesKey, &resp)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetServices").Msg("cache read failed")
	}

	gen, genErr := s.cache.Generation(ctx, cache.ServicesKey)
	if genErr != nil {
		log.Ctx(ctx).Warn().Err(genErr).Str("component", "GetServices").Msg("cache generation read failed")
	}

	services, err := s.serviceRepo.GetServicesWithOwner(ctx)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		resp = append(resp, toServiceResponse(svc.Service, svc.Owner))
	}

	if genErr == nil {
		fillCache(ctx, s.cache, cache.ServicesKey, gen, resp)
	}

	return resp, nil
}

func (s *ServiceListingServiceImpl) DeleteService(ctx context.Context, id string) (err error) {
	deleted, err := s.serviceRepo.DeleteService(ctx, id)
	if err != nil || !deleted {
		return
	}

	invalidateCache(ctx, s.cache, cache.ServicesKey)
	publishEvent(ctx, s.publisher, dto.EventServiceDeleted, id, dto.ServiceEvent{ID: id})

	return nil
}

func (s *ServiceListingServiceImpl) UpdateServiceStatus(ctx context.Context, id string, req dto.ServiceStatusRequest) (resp dto.ServiceResponse, err error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		return resp, fmt.Errorf("%w: status is required", errs.ErrClient)
	}

	svc, err := s.serviceRepo.UpdateServiceStatus(ctx, id, status)
	if err != nil {
		return
	}

	invalidateCache(ctx, s.cache, cache.ServicesKey)
	publishEvent(ctx, s.publisher, dto.EventServiceStatus, id, dto.ServiceEvent{ID: id, Status: status})

	return toServiceResponse(svc, nil), nil
}
