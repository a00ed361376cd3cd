package media

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"
	"Pantry-Share-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MediaService interface {
		SaveImage(ctx context.Context, req domain.SaveImageRequest) (domain.ImageResponse, error)
		GetImage(ctx context.Context, uuid string) (domain.ImageResponse, error)
		DeleteImage(ctx context.Context, uuid string) error
	}

	mediaService struct {
		mediaRepository MediaRepository
		s3              storage.AwsS3
	}
)

func NewMediaService(mediaRepository MediaRepository, s3 storage.AwsS3) MediaService {
	return &mediaService{
		mediaRepository: mediaRepository,
		s3:              s3,
	}
}

func (s *mediaService) SaveImage(ctx context.Context, req domain.SaveImageRequest) (domain.ImageResponse, error) {
	ext := filepath.Ext(req.Image.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return domain.ImageResponse{}, domain.ErrInvalidImageFormat
	}

	id := uuid.New()
	key := fmt.Sprintf("images/%s%s", id, ext)
	url, err := s.s3.UploadFile(ctx, key, req.Image)
	if err != nil {
		return domain.ImageResponse{}, err
	}

	image := &entities.Image{ID: id, URL: url}
	if err := s.mediaRepository.SaveImage(ctx, image); err != nil {
		return domain.ImageResponse{}, err
	}

	return domain.ImageResponse{UUID: image.ID.String(), URL: image.URL}, nil
}

func (s *mediaService) GetImage(ctx context.Context, uuid string) (domain.ImageResponse, error) {
	image, err := s.mediaRepository.GetImage(ctx, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImageResponse{}, domain.ErrImageNotFound
		}
		return domain.ImageResponse{}, err
	}
	return domain.ImageResponse{UUID: image.ID.String(), URL: image.URL}, nil
}

func (s *mediaService) DeleteImage(ctx context.Context, uuid string) error {
	image, err := s.mediaRepository.GetImage(ctx, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrImageNotFound
		}
		return err
	}

	if err := s.s3.DeleteFile(ctx, fmt.Sprintf("images/%s", filepath.Base(image.URL))); err != nil {
		log.Warnf("delete image: removing %s from storage failed: %v", image.ID, err)
	}
	return s.mediaRepository.DeleteImage(ctx, uuid)
}
