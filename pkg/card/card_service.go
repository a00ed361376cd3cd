package card

import (
	"context"
	"errors"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"

	"gorm.io/gorm"
)

type (
	CardService interface {
		GetCard(ctx context.Context, barcode string) (entities.ProductCard, error)
		UpsertCard(ctx context.Context, incoming entities.ProductCard) (entities.ProductCard, error)
	}

	cardService struct {
		cardRepository CardRepository
	}
)

func NewCardService(cardRepository CardRepository) CardService {
	return &cardService{cardRepository: cardRepository}
}

func (s *cardService) GetCard(ctx context.Context, barcode string) (entities.ProductCard, error) {
	card, err := s.cardRepository.FindCard(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ProductCard{}, domain.ErrProductCardNotFound
		}
		return entities.ProductCard{}, err
	}
	return *card, nil
}

// UpsertCard registers a barcode on first sight and afterwards only fills
// blank fields of the stored card from the incoming copy. The merged card
// is returned so callers can keep their embedded snapshot in step.
func (s *cardService) UpsertCard(ctx context.Context, incoming entities.ProductCard) (entities.ProductCard, error) {
	existing, err := s.cardRepository.FindCard(ctx, incoming.Barcode)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ProductCard{}, err
		}
		if err := s.cardRepository.AddCard(ctx, &incoming); err != nil {
			return entities.ProductCard{}, err
		}
		return incoming, nil
	}

	merged := MergeOnlyEmptyFields(*existing, incoming)
	if err := s.cardRepository.UpdateCard(ctx, &merged); err != nil {
		return entities.ProductCard{}, err
	}
	return merged, nil
}
