package card

import (
	"Pantry-Share-Backend/entities"
)

// Some upstream catalog feeds fill unknown fields with this literal.
const notFoundSentinel = "NOT_FOUND"

func isBlankString(value string) bool {
	return value == "" || value == notFoundSentinel
}

func isBlankNumber(value float64) bool {
	return value == 0
}

func mergeString(existing, incoming string) string {
	if isBlankString(existing) && !isBlankString(incoming) {
		return incoming
	}
	return existing
}

func mergeNumber(existing, incoming float64) float64 {
	if isBlankNumber(existing) && !isBlankNumber(incoming) {
		return incoming
	}
	return existing
}

// MergeOnlyEmptyFields fills blank fields of the existing card from the
// incoming copy without ever clobbering non-blank values: first non-empty
// wins. The function is pure and idempotent; merging a card with itself
// returns the same card.
func MergeOnlyEmptyFields(existing, incoming entities.ProductCard) entities.ProductCard {
	merged := existing
	merged.Barcode = mergeString(existing.Barcode, incoming.Barcode)
	merged.Name = mergeString(existing.Name, incoming.Name)
	merged.Brand = mergeString(existing.Brand, incoming.Brand)
	merged.PhotoURL = mergeString(existing.PhotoURL, incoming.PhotoURL)
	merged.Category = mergeString(existing.Category, incoming.Category)
	merged.Price = mergePrice(existing.Price, incoming.Price)
	merged.TotalQuantity = mergeNumber(existing.TotalQuantity, incoming.TotalQuantity)
	merged.MeasurementUnit = mergeString(existing.MeasurementUnit, incoming.MeasurementUnit)
	merged.Nutriments = mergeNutriments(existing.Nutriments, incoming.Nutriments)
	return merged
}

func mergePrice(existing, incoming entities.Price) entities.Price {
	return entities.Price{
		Value:    mergeNumber(existing.Value, incoming.Value),
		Currency: mergeString(existing.Currency, incoming.Currency),
	}
}

func mergeNutriments(existing, incoming entities.Nutriments) entities.Nutriments {
	return entities.Nutriments{
		Energy:        mergeNumber(existing.Energy, incoming.Energy),
		Fat:           mergeNumber(existing.Fat, incoming.Fat),
		SaturatedFat:  mergeNumber(existing.SaturatedFat, incoming.SaturatedFat),
		InsatiableFat: mergeNumber(existing.InsatiableFat, incoming.InsatiableFat),
		Carbohydrates: mergeNumber(existing.Carbohydrates, incoming.Carbohydrates),
		Sugars:        mergeNumber(existing.Sugars, incoming.Sugars),
		Fiber:         mergeNumber(existing.Fiber, incoming.Fiber),
		Salt:          mergeNumber(existing.Salt, incoming.Salt),
		Sodium:        mergeNumber(existing.Sodium, incoming.Sodium),
	}
}
