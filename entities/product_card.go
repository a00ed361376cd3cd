package entities

// ProductCard is the global catalog entry for a barcode, shared by every
// user. At most one row exists per barcode; fields are only ever filled
// in by merging, never overwritten (see pkg/card).
type ProductCard struct {
	Barcode         string     `gorm:"primaryKey" json:"barcode"`
	Name            string     `json:"name"`
	Brand           string     `json:"brand,omitempty"`
	PhotoURL        string     `json:"photoUrl,omitempty"`
	Category        string     `json:"category,omitempty"`
	Price           Price      `gorm:"embedded;embeddedPrefix:price_" json:"price"`
	TotalQuantity   float64    `json:"totalQuantity,omitempty"`
	MeasurementUnit string     `json:"measurementUnit,omitempty"`
	Nutriments      Nutriments `gorm:"embedded;embeddedPrefix:nutriment_" json:"nutriments"`
}

type Price struct {
	Value    float64 `json:"value,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

type Nutriments struct {
	Energy        float64 `json:"energy,omitempty"`
	Fat           float64 `json:"fat,omitempty"`
	SaturatedFat  float64 `json:"saturatedFat,omitempty"`
	InsatiableFat float64 `json:"insatiableFat,omitempty"`
	Carbohydrates float64 `json:"carbohydrates,omitempty"`
	Sugars        float64 `json:"sugars,omitempty"`
	Fiber         float64 `json:"fiber,omitempty"`
	Salt          float64 `json:"salt,omitempty"`
	Sodium        float64 `json:"sodium,omitempty"`
}
