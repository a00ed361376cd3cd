package container

import (
	"context"
	"encoding/json"

	"Pantry-Share-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	ContainerRepository interface {
		CreateContainer(ctx context.Context, ownerUUID uuid.UUID) (*entities.Container, error)
		FindContainerByOwner(ctx context.Context, ownerUUID string) (*entities.Container, error)
		GetContainer(ctx context.Context, uuid string) (*entities.Container, error)
		GetContainerWithProduct(ctx context.Context, productUUID string) (*entities.Container, error)
		UpdateContainer(ctx context.Context, container *entities.Container) error
		DeleteContainer(ctx context.Context, uuid string) error
	}

	containerRepository struct {
		db *gorm.DB
	}
)

func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &containerRepository{db: db}
}

func (r *containerRepository) CreateContainer(ctx context.Context, ownerUUID uuid.UUID) (*entities.Container, error) {
	container := &entities.Container{
		ID:             uuid.New(),
		OwnerUUID:      ownerUUID,
		OwnerProducts:  datatypes.JSONSlice[string]{},
		SharedProducts: datatypes.JSONSlice[string]{},
		UsersUUIDs:     datatypes.JSONSlice[string]{},
	}
	if err := r.db.WithContext(ctx).Create(container).Error; err != nil {
		return nil, err
	}
	return container, nil
}

func (r *containerRepository) FindContainerByOwner(ctx context.Context, ownerUUID string) (*entities.Container, error) {
	var container entities.Container
	if err := r.db.WithContext(ctx).Where("owner_uuid = ?", ownerUUID).First(&container).Error; err != nil {
		return nil, err
	}
	return &container, nil
}

func (r *containerRepository) GetContainer(ctx context.Context, uuid string) (*entities.Container, error) {
	var container entities.Container
	if err := r.db.WithContext(ctx).Where("id = ?", uuid).First(&container).Error; err != nil {
		return nil, err
	}
	return &container, nil
}

// GetContainerWithProduct locates the container registering the given
// entry uuid in either of its product lists.
func (r *containerRepository) GetContainerWithProduct(ctx context.Context, productUUID string) (*entities.Container, error) {
	needle, err := json.Marshal([]string{productUUID})
	if err != nil {
		return nil, err
	}
	var container entities.Container
	if err := r.db.WithContext(ctx).
		Where("owner_products @> ? OR shared_products @> ?", needle, needle).
		First(&container).Error; err != nil {
		return nil, err
	}
	return &container, nil
}

func (r *containerRepository) UpdateContainer(ctx context.Context, container *entities.Container) error {
	return r.db.WithContext(ctx).Save(container).Error
}

func (r *containerRepository) DeleteContainer(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Where("id = ?", uuid).Delete(&entities.Container{}).Error
}
