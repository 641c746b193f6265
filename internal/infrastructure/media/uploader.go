package media

import (
	"context"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
)

const (
	ProductsFolder = "products"
	ServicesFolder = "services"
)

// Uploader stores a local file on the media host.
type Uploader interface {
	Upload(ctx context.Context, path, folder string) (domain.Image, error)
	Destroy(ctx context.Context, publicID string) error
}
