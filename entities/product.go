package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Product is an aggregate root: the first purchase of a barcode plus an
// ordered list of associated entries for every repeated purchase. All
// entries share the root's barcode; every uuid (root and associated) is
// globally unique.
type Product struct {
	ID         uuid.UUID                              `gorm:"type:uuid;primary_key" json:"uuid"`
	Barcode    string                                 `gorm:"index" json:"barcode"`
	Card       datatypes.JSONType[ProductCard]        `json:"productCard"`
	Quantity   float64                                `json:"quantity"`
	Metadata   Metadata                               `gorm:"embedded;embeddedPrefix:meta_" json:"metadata"`
	Associated datatypes.JSONSlice[AssociatedProduct] `json:"associatedProducts"`

	Timestamp
}

// AssociatedProduct is one additional purchased batch of a barcode already
// present as a root Product. It lives inside the root's document, never as
// its own row.
type AssociatedProduct struct {
	UUID     uuid.UUID `json:"uuid"`
	Quantity float64   `json:"quantity"`
	Metadata Metadata  `json:"metadata"`
}

type Metadata struct {
	Synchronized bool       `json:"synchronized"`
	ToBeDeleted  bool       `json:"toBeDeleted"`
	CreatedDate  time.Time  `json:"createdDate"`
	ExpiryDate   *time.Time `json:"expiryDate"`
	Shared       bool       `json:"shared"`
}
