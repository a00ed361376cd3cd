package product

import (
	"time"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ToCard lifts the inlined card fields of a wire product into the catalog
// shape.
func ToCard(req domain.Product) entities.ProductCard {
	return entities.ProductCard{
		Barcode:         req.Barcode,
		Name:            req.Name,
		Brand:           req.Brand,
		PhotoURL:        req.PhotoURL,
		Category:        req.Category,
		Price:           req.Price,
		TotalQuantity:   req.TotalQuantity,
		MeasurementUnit: req.MeasurementUnit,
		Nutriments:      req.Nutriments,
	}
}

// ToInternalProduct builds a fresh aggregate root from a wire product. The
// root gets its own uuid; a client-declared createdDate is honored,
// otherwise today's date is stamped.
func ToInternalProduct(req domain.Product, card entities.ProductCard) (*entities.Product, error) {
	metadata, err := toInternalMetadata(req.Metadata)
	if err != nil {
		return nil, err
	}
	return &entities.Product{
		ID:         uuid.New(),
		Barcode:    req.Barcode,
		Card:       datatypes.NewJSONType(card),
		Quantity:   req.Quantity,
		Metadata:   metadata,
		Associated: datatypes.JSONSlice[entities.AssociatedProduct]{},
	}, nil
}

// ToAssociatedProduct builds the entry appended to an existing aggregate
// for a repeated purchase. The entry carries its own uuid and createdDate.
func ToAssociatedProduct(req domain.Product) (entities.AssociatedProduct, error) {
	metadata, err := toInternalMetadata(req.Metadata)
	if err != nil {
		return entities.AssociatedProduct{}, err
	}
	metadata.CreatedDate = today()
	return entities.AssociatedProduct{
		UUID:     uuid.New(),
		Quantity: req.Quantity,
		Metadata: metadata,
	}, nil
}

func toInternalMetadata(web domain.Metadata) (entities.Metadata, error) {
	createdDate := today()
	if web.CreatedDate != "" {
		parsed, err := time.Parse(domain.DateLayout, web.CreatedDate)
		if err != nil {
			return entities.Metadata{}, domain.ErrInvalidDateFormat
		}
		createdDate = parsed
	}

	var expiryDate *time.Time
	if web.ExpiryDate != nil {
		parsed, err := time.Parse(domain.DateLayout, *web.ExpiryDate)
		if err != nil {
			return entities.Metadata{}, domain.ErrInvalidDateFormat
		}
		expiryDate = &parsed
	}

	return entities.Metadata{
		Synchronized: true,
		ToBeDeleted:  false,
		CreatedDate:  createdDate,
		ExpiryDate:   expiryDate,
		Shared:       web.Shared,
	}, nil
}

func toWebMetadata(metadata entities.Metadata) domain.Metadata {
	var expiryDate *string
	if metadata.ExpiryDate != nil {
		formatted := metadata.ExpiryDate.Format(domain.DateLayout)
		expiryDate = &formatted
	}
	return domain.Metadata{
		Synchronized: metadata.Synchronized,
		ToBeDeleted:  metadata.ToBeDeleted,
		CreatedDate:  metadata.CreatedDate.Format(domain.DateLayout),
		ExpiryDate:   expiryDate,
		Shared:       metadata.Shared,
	}
}

// ProjectEntry flattens the entry named by entryUUID out of an aggregate
// into the wire shape: the root projects as-is, an associated entry
// borrows the root's card.
func ProjectEntry(full *entities.Product, entryUUID string) domain.Product {
	quantity := full.Quantity
	metadata := full.Metadata
	if entryUUID != full.ID.String() {
		for _, associated := range full.Associated {
			if associated.UUID.String() == entryUUID {
				quantity = associated.Quantity
				metadata = associated.Metadata
				break
			}
		}
	}

	card := full.Card.Data()
	return domain.Product{
		UUID:            entryUUID,
		Barcode:         card.Barcode,
		Name:            card.Name,
		Brand:           card.Brand,
		PhotoURL:        card.PhotoURL,
		Category:        card.Category,
		Price:           card.Price,
		TotalQuantity:   card.TotalQuantity,
		Quantity:        quantity,
		MeasurementUnit: card.MeasurementUnit,
		Nutriments:      card.Nutriments,
		Metadata:        toWebMetadata(metadata),
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
