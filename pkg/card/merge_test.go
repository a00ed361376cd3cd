package card

import (
	"context"
	"testing"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMergeOnlyEmptyFieldsFillsBlanks(t *testing.T) {
	existing := entities.ProductCard{
		Barcode: "5901234123457",
		Name:    "",
		Brand:   "X",
	}
	incoming := entities.ProductCard{
		Barcode: "5901234123457",
		Name:    "Y",
		Brand:   "Z",
	}

	merged := MergeOnlyEmptyFields(existing, incoming)

	assert.Equal(t, "Y", merged.Name)
	assert.Equal(t, "X", merged.Brand)
}

func TestMergeOnlyEmptyFieldsTreatsSentinelAsBlank(t *testing.T) {
	existing := entities.ProductCard{
		Barcode:  "5901234123457",
		Name:     "NOT_FOUND",
		Category: "NOT_FOUND",
	}
	incoming := entities.ProductCard{
		Barcode:  "5901234123457",
		Name:     "Oat Milk",
		Category: "dairy-substitutes",
	}

	merged := MergeOnlyEmptyFields(existing, incoming)

	assert.Equal(t, "Oat Milk", merged.Name)
	assert.Equal(t, "dairy-substitutes", merged.Category)
}

func TestMergeOnlyEmptyFieldsIsIdempotent(t *testing.T) {
	card := entities.ProductCard{
		Barcode:         "5901234123457",
		Name:            "Oat Milk",
		Brand:           "Oatly",
		Category:        "dairy-substitutes",
		Price:           entities.Price{Value: 2.49, Currency: "EUR"},
		TotalQuantity:   1000,
		MeasurementUnit: "ml",
	}

	assert.Equal(t, card, MergeOnlyEmptyFields(card, card))
}

func TestMergeOnlyEmptyFieldsNestedStructs(t *testing.T) {
	existing := entities.ProductCard{
		Barcode: "5901234123457",
		Price:   entities.Price{Value: 2.49},
		Nutriments: entities.Nutriments{
			Energy: 187,
		},
	}
	incoming := entities.ProductCard{
		Barcode: "5901234123457",
		Price:   entities.Price{Value: 3.99, Currency: "EUR"},
		Nutriments: entities.Nutriments{
			Energy: 200,
			Sugars: 4.1,
		},
	}

	merged := MergeOnlyEmptyFields(existing, incoming)

	assert.Equal(t, 2.49, merged.Price.Value)
	assert.Equal(t, "EUR", merged.Price.Currency)
	assert.Equal(t, 187.0, merged.Nutriments.Energy)
	assert.Equal(t, 4.1, merged.Nutriments.Sugars)
}

type cardRepositoryFake struct {
	cards map[string]entities.ProductCard
}

func newCardRepositoryFake() *cardRepositoryFake {
	return &cardRepositoryFake{cards: make(map[string]entities.ProductCard)}
}

func (f *cardRepositoryFake) FindCard(_ context.Context, barcode string) (*entities.ProductCard, error) {
	card, ok := f.cards[barcode]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &card, nil
}

func (f *cardRepositoryFake) AddCard(_ context.Context, card *entities.ProductCard) error {
	f.cards[card.Barcode] = *card
	return nil
}

func (f *cardRepositoryFake) UpdateCard(_ context.Context, card *entities.ProductCard) error {
	f.cards[card.Barcode] = *card
	return nil
}

func TestUpsertCardRegistersUnknownBarcode(t *testing.T) {
	repo := newCardRepositoryFake()
	service := NewCardService(repo)

	card := entities.ProductCard{Barcode: "5901234123457", Name: "Oat Milk"}
	got, err := service.UpsertCard(context.Background(), card)

	require.NoError(t, err)
	assert.Equal(t, card, got)
	assert.Contains(t, repo.cards, "5901234123457")
}

func TestUpsertCardNeverClobbersKnownFields(t *testing.T) {
	repo := newCardRepositoryFake()
	repo.cards["5901234123457"] = entities.ProductCard{
		Barcode: "5901234123457",
		Name:    "Oat Milk",
		Brand:   "Oatly",
	}
	service := NewCardService(repo)

	got, err := service.UpsertCard(context.Background(), entities.ProductCard{
		Barcode:  "5901234123457",
		Name:     "Different Name",
		Category: "dairy-substitutes",
	})

	require.NoError(t, err)
	assert.Equal(t, "Oat Milk", got.Name)
	assert.Equal(t, "Oatly", got.Brand)
	assert.Equal(t, "dairy-substitutes", got.Category)
	assert.Equal(t, got, repo.cards["5901234123457"])
}

func TestGetCardUnknownBarcode(t *testing.T) {
	service := NewCardService(newCardRepositoryFake())

	_, err := service.GetCard(context.Background(), "0000000000000")

	assert.ErrorIs(t, err, domain.ErrProductCardNotFound)
}
