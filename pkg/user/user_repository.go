package user

import (
	"context"

	"Pantry-Share-Backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByUUID(ctx context.Context, uuid string) (*entities.User, error)
		GetUsersByUUIDs(ctx context.Context, uuids []string) ([]entities.User, error)
		CountByEmailOrLogin(ctx context.Context, email, login string) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByUUID(ctx context.Context, uuid string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", uuid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUsersByUUIDs(ctx context.Context, uuids []string) ([]entities.User, error) {
	var users []entities.User
	if len(uuids) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", uuids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CountByEmailOrLogin(ctx context.Context, email, login string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("email = ? OR login = ?", email, login).
		Count(&count).Error
	return count, err
}
