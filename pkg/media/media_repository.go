package media

import (
	"context"

	"Pantry-Share-Backend/entities"

	"gorm.io/gorm"
)

type (
	MediaRepository interface {
		SaveImage(ctx context.Context, image *entities.Image) error
		GetImage(ctx context.Context, uuid string) (*entities.Image, error)
		DeleteImage(ctx context.Context, uuid string) error
	}

	mediaRepository struct {
		db *gorm.DB
	}
)

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) SaveImage(ctx context.Context, image *entities.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *mediaRepository) GetImage(ctx context.Context, uuid string) (*entities.Image, error) {
	var image entities.Image
	if err := r.db.WithContext(ctx).Where("id = ?", uuid).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *mediaRepository) DeleteImage(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Where("id = ?", uuid).Delete(&entities.Image{}).Error
}
