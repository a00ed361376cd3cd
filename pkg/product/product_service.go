package product

import (
	"context"
	"errors"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"
	"Pantry-Share-Backend/pkg/card"
	"Pantry-Share-Backend/pkg/container"
	"Pantry-Share-Backend/pkg/filter"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.Product, userUUID string) (domain.Product, error)
		UpdateProduct(ctx context.Context, req domain.Product) (domain.Product, error)
		DeleteProduct(ctx context.Context, uuid string, userUUID string) error
		GetProduct(ctx context.Context, uuid string) (domain.Product, error)
		GetAllProducts(ctx context.Context, userUUID string, query *domain.QueryFilter) ([]domain.Product, error)
		SynchronizeProducts(ctx context.Context, userUUID string, products []domain.Product) (domain.SynchronizeResponse, error)
		GetOutdatedProducts(ctx context.Context) ([]domain.OutdatedProductResponse, error)
		NotifyOutdatedProducts(ctx context.Context) (int, error)
	}

	productService struct {
		productRepository   ProductRepository
		cardService         card.CardService
		containerRepository container.ContainerRepository
		containerService    container.ContainerService
	}
)

func NewProductService(
	productRepository ProductRepository,
	cardService card.CardService,
	containerRepository container.ContainerRepository,
	containerService container.ContainerService,
) ProductService {
	return &productService{
		productRepository:   productRepository,
		cardService:         cardService,
		containerRepository: containerRepository,
		containerService:    containerService,
	}
}

// AddProduct merges a purchased instance into the owner's inventory.
// A barcode already present in the owner's container grows the existing
// aggregate by one associated entry; a new barcode starts a new aggregate.
// The global card is upserted either way.
func (s *productService) AddProduct(ctx context.Context, req domain.Product, userUUID string) (domain.Product, error) {
	holder, err := s.resolveContainer(ctx, userUUID)
	if err != nil {
		return domain.Product{}, err
	}

	mergedCard, err := s.cardService.UpsertCard(ctx, ToCard(req))
	if err != nil {
		return domain.Product{}, err
	}

	candidates := append([]string{}, holder.OwnerProducts...)
	candidates = append(candidates, holder.SharedProducts...)

	existing, err := s.productRepository.FindAggregateByBarcode(ctx, candidates, req.Barcode)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, err
		}
		return s.addAggregate(ctx, req, mergedCard, holder)
	}
	return s.addAssociated(ctx, req, existing, holder)
}

func (s *productService) addAggregate(ctx context.Context, req domain.Product, mergedCard entities.ProductCard, holder *entities.Container) (domain.Product, error) {
	internal, err := ToInternalProduct(req, mergedCard)
	if err != nil {
		return domain.Product{}, err
	}

	if err := s.productRepository.AddProduct(ctx, internal); err != nil {
		return domain.Product{}, err
	}

	holder.RegisterProduct(internal.ID.String(), internal.Metadata.Shared)
	if err := s.containerRepository.UpdateContainer(ctx, holder); err != nil {
		return domain.Product{}, err
	}
	return ProjectEntry(internal, internal.ID.String()), nil
}

func (s *productService) addAssociated(ctx context.Context, req domain.Product, existing *entities.Product, holder *entities.Container) (domain.Product, error) {
	if req.Barcode != existing.Barcode {
		return domain.Product{}, domain.ErrBarcodeImmutable
	}

	associated, err := ToAssociatedProduct(req)
	if err != nil {
		return domain.Product{}, err
	}

	existing.Associated = append(existing.Associated, associated)
	existing.Card = datatypes.NewJSONType(card.MergeOnlyEmptyFields(existing.Card.Data(), ToCard(req)))

	if err := s.productRepository.UpdateProduct(ctx, existing); err != nil {
		return domain.Product{}, err
	}

	holder.RegisterProduct(associated.UUID.String(), associated.Metadata.Shared)
	if err := s.containerRepository.UpdateContainer(ctx, holder); err != nil {
		return domain.Product{}, err
	}
	return ProjectEntry(existing, associated.UUID.String()), nil
}

// UpdateProduct replaces the mutable fields of one entry. Barcode and
// createdDate are immutable, quantity is capped by the card's total
// quantity (old and incoming copy), and a successful update stamps the
// whole aggregate synchronized.
func (s *productService) UpdateProduct(ctx context.Context, req domain.Product) (domain.Product, error) {
	if req.UUID == "" {
		return domain.Product{}, domain.ErrMissingProductUUID
	}

	full, err := s.productRepository.GetFullProductByEntryUUID(ctx, req.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, err
	}

	slot := slotMetadata(full, req.UUID)
	if err := validateUpdate(full, slot, req); err != nil {
		return domain.Product{}, err
	}

	metadata, err := toInternalMetadata(req.Metadata)
	if err != nil {
		return domain.Product{}, err
	}
	metadata.CreatedDate = slot.CreatedDate
	// shared only ever flips false to true; a downgrade is ignored so the
	// entry's container registration stays consistent.
	metadata.Shared = slot.Shared || req.Metadata.Shared

	if _, err := s.cardService.UpsertCard(ctx, ToCard(req)); err != nil {
		return domain.Product{}, err
	}
	full.Card = datatypes.NewJSONType(card.MergeOnlyEmptyFields(full.Card.Data(), ToCard(req)))

	if req.UUID == full.ID.String() {
		full.Quantity = req.Quantity
		full.Metadata = metadata
	} else {
		for i := range full.Associated {
			if full.Associated[i].UUID.String() == req.UUID {
				full.Associated[i].Quantity = req.Quantity
				full.Associated[i].Metadata = metadata
				break
			}
		}
	}
	markSynchronized(full)

	if err := s.productRepository.UpdateProduct(ctx, full); err != nil {
		return domain.Product{}, err
	}

	// shared is a one-way transition; flipping it moves the entry into
	// the container's shared list so sharing users gain visibility.
	if !slot.Shared && metadata.Shared {
		if err := s.propagateShared(ctx, req.UUID); err != nil {
			return domain.Product{}, err
		}
	}
	return ProjectEntry(full, req.UUID), nil
}

// DeleteProduct removes one entry from an aggregate the requester can see:
// either from the requester's own container or from the shared list of a
// container shared with them. Deleting the root promotes the most recently
// added associated entry into the root's identity slot; deleting the last
// entry removes the aggregate.
func (s *productService) DeleteProduct(ctx context.Context, entryUUID string, userUUID string) error {
	holder, err := s.locateHolder(ctx, entryUUID, userUUID)
	if err != nil {
		return err
	}

	full, err := s.productRepository.GetFullProductByEntryUUID(ctx, entryUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	switch {
	case len(full.Associated) == 0:
		if err := s.productRepository.DeleteProduct(ctx, full.ID.String()); err != nil {
			return err
		}
		holder.UnregisterProduct(entryUUID, full.Metadata.Shared)

	case entryUUID == full.ID.String():
		oldShared := full.Metadata.Shared
		promoted := full.Associated[len(full.Associated)-1]
		full.Associated = full.Associated[:len(full.Associated)-1]
		full.ID = promoted.UUID
		full.Quantity = promoted.Quantity
		full.Metadata = promoted.Metadata

		// The primary key changes with the promotion, so the old row is
		// replaced rather than updated in place.
		if err := s.productRepository.DeleteProduct(ctx, entryUUID); err != nil {
			return err
		}
		if err := s.productRepository.AddProduct(ctx, full); err != nil {
			return err
		}
		holder.UnregisterProduct(entryUUID, oldShared)

	default:
		entryShared := false
		kept := make(datatypes.JSONSlice[entities.AssociatedProduct], 0, len(full.Associated)-1)
		for _, associated := range full.Associated {
			if associated.UUID.String() == entryUUID {
				entryShared = associated.Metadata.Shared
				continue
			}
			kept = append(kept, associated)
		}
		full.Associated = kept
		if err := s.productRepository.UpdateProduct(ctx, full); err != nil {
			return err
		}
		holder.UnregisterProduct(entryUUID, entryShared)
	}

	return s.containerRepository.UpdateContainer(ctx, holder)
}

func (s *productService) GetProduct(ctx context.Context, entryUUID string) (domain.Product, error) {
	full, err := s.productRepository.GetFullProductByEntryUUID(ctx, entryUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, err
	}
	return ProjectEntry(full, entryUUID), nil
}

// GetAllProducts assembles every entry visible to the user — own products
// plus the shared products of every container shared with them — and runs
// the optional filter/sort over the result.
func (s *productService) GetAllProducts(ctx context.Context, userUUID string, query *domain.QueryFilter) ([]domain.Product, error) {
	holder, err := s.containerRepository.FindContainerByOwner(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContainerNotFound
		}
		return nil, err
	}

	visible := append([]string{}, holder.OwnerProducts...)
	visible = append(visible, holder.SharedProducts...)
	for _, sharerUUID := range holder.UsersUUIDs {
		sharer, err := s.containerRepository.FindContainerByOwner(ctx, sharerUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		visible = append(visible, sharer.SharedProducts...)
	}

	aggregates, err := s.productRepository.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	byEntry := make(map[string]*entities.Product)
	for i := range aggregates {
		aggregate := &aggregates[i]
		byEntry[aggregate.ID.String()] = aggregate
		for _, associated := range aggregate.Associated {
			byEntry[associated.UUID.String()] = aggregate
		}
	}

	products := make([]domain.Product, 0, len(visible))
	for _, entryUUID := range visible {
		if aggregate, ok := byEntry[entryUUID]; ok {
			products = append(products, ProjectEntry(aggregate, entryUUID))
		}
	}

	return filter.Apply(products, query)
}

func (s *productService) resolveContainer(ctx context.Context, ownerUUID string) (*entities.Container, error) {
	holder, err := s.containerRepository.FindContainerByOwner(ctx, ownerUUID)
	if err == nil {
		return holder, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	parsed, err := uuid.Parse(ownerUUID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.containerRepository.CreateContainer(ctx, parsed)
}

func (s *productService) locateHolder(ctx context.Context, entryUUID string, userUUID string) (*entities.Container, error) {
	own, err := s.containerRepository.FindContainerByOwner(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if own.HasProduct(entryUUID) {
		return own, nil
	}

	for _, sharerUUID := range own.UsersUUIDs {
		sharer, err := s.containerRepository.FindContainerByOwner(ctx, sharerUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		for _, id := range sharer.SharedProducts {
			if id == entryUUID {
				return sharer, nil
			}
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *productService) propagateShared(ctx context.Context, entryUUID string) error {
	holder, err := s.containerRepository.GetContainerWithProduct(ctx, entryUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrContainerNotFound
		}
		return err
	}
	holder.UnregisterProduct(entryUUID, false)
	holder.RegisterProduct(entryUUID, true)
	return s.containerRepository.UpdateContainer(ctx, holder)
}

func slotMetadata(full *entities.Product, entryUUID string) entities.Metadata {
	if entryUUID == full.ID.String() {
		return full.Metadata
	}
	for _, associated := range full.Associated {
		if associated.UUID.String() == entryUUID {
			return associated.Metadata
		}
	}
	return full.Metadata
}

func validateUpdate(full *entities.Product, slot entities.Metadata, req domain.Product) error {
	if req.Barcode != full.Barcode {
		return domain.ErrBarcodeImmutable
	}
	if req.Metadata.CreatedDate != "" &&
		req.Metadata.CreatedDate != slot.CreatedDate.Format(domain.DateLayout) {
		return domain.ErrCreatedDateImmutable
	}

	// The cap is checked against both card copies: the stored snapshot
	// may still be mid-merge with the incoming one.
	storedTotal := full.Card.Data().TotalQuantity
	if storedTotal > 0 && req.Quantity > storedTotal {
		return domain.ErrQuantityExceedsTotal
	}
	if req.TotalQuantity > 0 && req.Quantity > req.TotalQuantity {
		return domain.ErrQuantityExceedsTotal
	}
	return nil
}

func markSynchronized(full *entities.Product) {
	full.Metadata.Synchronized = true
	for i := range full.Associated {
		full.Associated[i].Metadata.Synchronized = true
	}
}
