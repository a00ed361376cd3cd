package product

import (
	"context"
	"encoding/json"

	"Pantry-Share-Backend/entities"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		AddProduct(ctx context.Context, product *entities.Product) error
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, uuid string) error
		FindAggregateByBarcode(ctx context.Context, entryUUIDs []string, barcode string) (*entities.Product, error)
		GetFullProductByEntryUUID(ctx context.Context, uuid string) (*entities.Product, error)
		GetAllProducts(ctx context.Context) ([]entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Where("id = ?", uuid).Delete(&entities.Product{}).Error
}

// FindAggregateByBarcode looks for an aggregate rooted at one of the given
// entry uuids carrying the given barcode. Used by the duplicate scan on
// add; candidates come from a single container, so the set stays small.
func (r *productRepository) FindAggregateByBarcode(ctx context.Context, entryUUIDs []string, barcode string) (*entities.Product, error) {
	if len(entryUUIDs) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND barcode = ?", entryUUIDs, barcode).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetFullProductByEntryUUID loads the whole aggregate that contains the
// given uuid, whether it names the root or one of the associated entries.
func (r *productRepository) GetFullProductByEntryUUID(ctx context.Context, uuid string) (*entities.Product, error) {
	needle, err := json.Marshal([]map[string]string{{"uuid": uuid}})
	if err != nil {
		return nil, err
	}
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? OR associated @> ?", uuid, needle).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAllProducts(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
