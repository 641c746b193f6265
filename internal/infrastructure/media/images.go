package media

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const MaxGalleryImages = 12

type ImageUpload struct {
	Primary       *multipart.FileHeader
	Gallery       []*multipart.FileHeader
	PrimaryFolder string
	GalleryFolder string
}

type UploadedImages struct {
	Primary domain.Image
	Gallery []domain.Image
}

// PublicIDs lists every hosted asset, primary first.
func (u UploadedImages) PublicIDs() []string {
	ids := make([]string, 0, len(u.Gallery)+1)
	if u.Primary.PublicID != "" {
		ids = append(ids, u.Primary.PublicID)
	}
	for _, img := range u.Gallery {
		if img.PublicID != "" {
			ids = append(ids, img.PublicID)
		}
	}
	return ids
}

type ImageService struct {
	uploader Uploader
	dir      string
}

func CreateImageService(uploader Uploader, stagingDir string) *ImageService {
	return &ImageService{uploader: uploader, dir: stagingDir}
}

// UploadImages stages every file, uploads the primary image and then the
// gallery concurrently. Either all images end up hosted or none do: on any
// failure the images already uploaded are destroyed before returning.
func (s *ImageService) UploadImages(ctx context.Context, req ImageUpload) (result UploadedImages, err error) {
	if req.Primary == nil {
		return result, errs.ErrMissingFields
	}

	if len(req.Gallery) > MaxGalleryImages {
		return result, fmt.Errorf("%w: at most %d gallery images", errs.ErrTooManyImages, MaxGalleryImages)
	}

	files := make([]stagedFile, 0, len(req.Gallery)+1)
	defer func() {
		for _, f := range files {
			f.remove()
		}
	}()

	for _, fh := range append([]*multipart.FileHeader{req.Primary}, req.Gallery...) {
		f, err := stage(s.dir, fh)
		if err != nil {
			return result, err
		}
		files = append(files, f)
	}

	result.Primary, err = s.uploader.Upload(ctx, files[0].path, req.PrimaryFolder)
	if err != nil {
		return UploadedImages{}, err
	}

	result.Gallery = make([]domain.Image, len(req.Gallery))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files[1:] {
		i, f := i, f
		g.Go(func() error {
			img, err := s.uploader.Upload(gctx, f.path, req.GalleryFolder)
			if err != nil {
				return err
			}
			result.Gallery[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.Rollback(ctx, result)
		return UploadedImages{}, err
	}

	return result, nil
}

// Rollback destroys hosted images on a best-effort basis. It runs detached
// from ctx so a cancelled request still cleans up.
func (s *ImageService) Rollback(ctx context.Context, images UploadedImages) {
	cleanupCtx := context.WithoutCancel(ctx)

	var errList []error
	for _, id := range images.PublicIDs() {
		if err := s.uploader.Destroy(cleanupCtx, id); err != nil {
			errList = append(errList, err)
		}
	}

	if err := errors.Join(errList...); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Rollback").Msg("failed to destroy uploaded images")
	}
}
