package domain

import (
	"errors"

	"Pantry-Share-Backend/entities"
)

var (
	MessageSuccessAddProduct          = "product added successfully"
	MessageSuccessUpdateProduct       = "product updated successfully"
	MessageSuccessDeleteProduct       = "product deleted successfully"
	MessageSuccessGetProduct          = "product retrieved successfully"
	MessageSuccessGetProducts         = "products retrieved successfully"
	MessageSuccessSynchronizeProducts = "products synchronized successfully"
	MessageSuccessGetOutdated         = "outdated products retrieved successfully"
	MessageSuccessNotifyOutdated      = "outdated product notifications sent"
	MessageSuccessGetProductCard      = "product card retrieved successfully"

	MessageFailedAddProduct          = "failed to add product"
	MessageFailedUpdateProduct       = "failed to update product"
	MessageFailedDeleteProduct       = "failed to delete product"
	MessageFailedGetProduct          = "failed to retrieve product"
	MessageFailedGetProducts         = "failed to retrieve products"
	MessageFailedSynchronizeProducts = "failed to synchronize products"
	MessageFailedGetOutdated         = "failed to retrieve outdated products"
	MessageFailedNotifyOutdated      = "failed to send outdated product notifications"
	MessageFailedGetProductCard      = "failed to retrieve product card"

	ErrProductNotFound      = errors.New("product not found")
	ErrProductCardNotFound  = errors.New("product card not found")
	ErrMissingProductUUID   = errors.New("product uuid is required")
	ErrBarcodeImmutable     = errors.New("barcode cannot be changed")
	ErrCreatedDateImmutable = errors.New("created date cannot be changed")
	ErrQuantityExceedsTotal = errors.New("quantity exceeds product card total quantity")
	ErrInvalidDateFormat    = errors.New("invalid date format, expected YYYY-MM-DD")

	ErrUnknownFilterSelector = errors.New("unknown filter selector")
	ErrUnknownSortSelector   = errors.New("unknown sort selector")
	ErrAmbiguousFilterRange  = errors.New("filter cannot combine exact value with minimum or maximum")
	ErrInvalidDateRange      = errors.New("date range minimum must be before maximum")
	ErrInvalidFilterValue    = errors.New("invalid filter value")
)

// Filter and sort selectors accepted by the query engine.
const (
	SelectorPrice       = "PRICE"
	SelectorCurrency    = "CURRENCY"
	SelectorCategory    = "CATEGORY"
	SelectorCreatedDate = "CREATED_DATE"
	SelectorExpiryDate  = "EXPIRY_DATE"
)

// Synchronization status strings returned to offline clients.
const (
	SyncStatusOK      = "SYNCHRONIZED"
	SyncStatusPartial = "PARTIALLY_SYNCHRONIZED"
)

type (
	// Product is the flat wire representation of a single purchased
	// product: card fields inlined next to the per-instance quantity
	// and metadata.
	Product struct {
		UUID            string              `json:"uuid,omitempty"`
		Barcode         string              `json:"barcode" validate:"required"`
		Name            string              `json:"name" validate:"required"`
		Brand           string              `json:"brand,omitempty"`
		PhotoURL        string              `json:"photoUrl,omitempty"`
		Category        string              `json:"category,omitempty"`
		Price           entities.Price      `json:"price"`
		TotalQuantity   float64             `json:"totalQuantity,omitempty" validate:"omitempty,gt=0"`
		Quantity        float64             `json:"quantity" validate:"omitempty,gt=0"`
		MeasurementUnit string              `json:"measurementUnit,omitempty"`
		Nutriments      entities.Nutriments `json:"nutriments"`
		Metadata        Metadata            `json:"metadata"`
	}

	Metadata struct {
		Synchronized bool    `json:"synchronized"`
		ToBeDeleted  bool    `json:"toBeDeleted"`
		CreatedDate  string  `json:"createdDate,omitempty"`
		ExpiryDate   *string `json:"expiryDate,omitempty"`
		Shared       bool    `json:"shared"`
	}

	SynchronizeRequest struct {
		Products []Product `json:"products" validate:"required,dive"`
	}

	SynchronizeResponse struct {
		SynchronizedProducts []Product `json:"synchronizedProducts"`
		Status               string    `json:"status"`
	}

	OutdatedProductResponse struct {
		OutdatedProduct Product        `json:"outdatedProduct"`
		Users           []UserResponse `json:"users"`
	}

	// QueryFilter is the filter/sort body accepted by the product
	// listing endpoint. Range values are numbers for PRICE, strings for
	// CURRENCY/CATEGORY and YYYY-MM-DD strings for date selectors.
	QueryFilter struct {
		Filters []Filter `json:"filters"`
		Sorting *Sorting `json:"sorting"`
	}

	Filter struct {
		Selector string      `json:"selector"`
		Range    FilterRange `json:"range"`
	}

	FilterRange struct {
		MinimumValue interface{} `json:"minimumValue"`
		ExactValue   interface{} `json:"exactValue"`
		MaximumValue interface{} `json:"maximumValue"`
	}

	Sorting struct {
		Selector  string `json:"selector"`
		Ascending bool   `json:"ascending"`
	}
)
