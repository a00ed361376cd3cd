package card

import (
	"context"

	"Pantry-Share-Backend/entities"

	"gorm.io/gorm"
)

type (
	CardRepository interface {
		FindCard(ctx context.Context, barcode string) (*entities.ProductCard, error)
		AddCard(ctx context.Context, card *entities.ProductCard) error
		UpdateCard(ctx context.Context, card *entities.ProductCard) error
	}

	cardRepository struct {
		db *gorm.DB
	}
)

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) FindCard(ctx context.Context, barcode string) (*entities.ProductCard, error) {
	var card entities.ProductCard
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) AddCard(ctx context.Context, card *entities.ProductCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *cardRepository) UpdateCard(ctx context.Context, card *entities.ProductCard) error {
	return r.db.WithContext(ctx).Save(card).Error
}
