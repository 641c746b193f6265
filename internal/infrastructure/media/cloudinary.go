package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// CreateCloudinaryUploader reads credentials from a cloudinary:// URL.
func CreateCloudinaryUploader(url string) (*CloudinaryUploader, error) {
	if url == "" {
		return nil, errors.New("cloudinary url is not configured")
	}

	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("creating cloudinary client: %w", err)
	}

	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, path, folder string) (domain.Image, error) {
	resp, err := u.cld.Upload.Upload(ctx, path, uploader.UploadParams{Folder: folder})
	if err != nil {
		return domain.Image{}, fmt.Errorf("uploading %s: %w", path, err)
	}

	if resp.Error.Message != "" {
		return domain.Image{}, fmt.Errorf("uploading %s: %s", path, resp.Error.Message)
	}

	return domain.Image{PublicID: resp.PublicID, URL: resp.SecureURL}, nil
}

func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	resp, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroying %s: %w", publicID, err)
	}

	if resp.Error.Message != "" {
		return fmt.Errorf("destroying %s: %s", publicID, resp.Error.Message)
	}

	return nil
}
