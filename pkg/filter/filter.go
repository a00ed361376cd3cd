package filter

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"Pantry-Share-Backend/domain"
)

// Apply evaluates the filter conjunction and optional sort over the given
// product set. Any malformed filter or sort spec aborts with a bad-input
// error; the unfiltered set is never returned on error.
func Apply(products []domain.Product, query *domain.QueryFilter) ([]domain.Product, error) {
	if query == nil {
		return products, nil
	}

	matchers := make([]matcher, 0, len(query.Filters))
	for _, f := range query.Filters {
		m, err := buildMatcher(f)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesAll(p, matchers) {
			out = append(out, p)
		}
	}

	if query.Sorting != nil {
		if err := sortProducts(out, *query.Sorting); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type matcher func(domain.Product) bool

func matchesAll(p domain.Product, matchers []matcher) bool {
	for _, m := range matchers {
		if !m(p) {
			return false
		}
	}
	return true
}

func buildMatcher(f domain.Filter) (matcher, error) {
	hasExact := f.Range.ExactValue != nil
	hasBound := f.Range.MinimumValue != nil || f.Range.MaximumValue != nil
	if hasExact && hasBound {
		return nil, domain.ErrAmbiguousFilterRange
	}

	switch f.Selector {
	case domain.SelectorPrice:
		return buildNumberMatcher(f.Range, func(p domain.Product) float64 { return p.Price.Value })
	case domain.SelectorCurrency:
		return buildStringMatcher(f.Range, func(p domain.Product) string { return p.Price.Currency })
	case domain.SelectorCategory:
		return buildStringMatcher(f.Range, func(p domain.Product) string { return p.Category })
	case domain.SelectorCreatedDate:
		return buildDateMatcher(f.Range, func(p domain.Product) (time.Time, bool) {
			return parseProductDate(p.Metadata.CreatedDate)
		})
	case domain.SelectorExpiryDate:
		return buildDateMatcher(f.Range, func(p domain.Product) (time.Time, bool) {
			if p.Metadata.ExpiryDate == nil {
				return time.Time{}, false
			}
			return parseProductDate(*p.Metadata.ExpiryDate)
		})
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFilterSelector, f.Selector)
	}
}

func buildNumberMatcher(r domain.FilterRange, value func(domain.Product) float64) (matcher, error) {
	if r.ExactValue != nil {
		exact, err := asNumber(r.ExactValue)
		if err != nil {
			return nil, err
		}
		return func(p domain.Product) bool { return value(p) == exact }, nil
	}

	minimum, maximum, err := numberBounds(r)
	if err != nil {
		return nil, err
	}
	return func(p domain.Product) bool {
		v := value(p)
		if minimum != nil && v < *minimum {
			return false
		}
		if maximum != nil && v > *maximum {
			return false
		}
		return true
	}, nil
}

func buildStringMatcher(r domain.FilterRange, value func(domain.Product) string) (matcher, error) {
	if r.ExactValue == nil {
		return nil, fmt.Errorf("%w: exact value required", domain.ErrInvalidFilterValue)
	}
	exact, err := asString(r.ExactValue)
	if err != nil {
		return nil, err
	}
	return func(p domain.Product) bool { return value(p) == exact }, nil
}

func buildDateMatcher(r domain.FilterRange, value func(domain.Product) (time.Time, bool)) (matcher, error) {
	if r.ExactValue != nil {
		exact, err := asDate(r.ExactValue)
		if err != nil {
			return nil, err
		}
		return func(p domain.Product) bool {
			d, ok := value(p)
			return ok && d.Equal(exact)
		}, nil
	}

	var minimum, maximum *time.Time
	if r.MinimumValue != nil {
		d, err := asDate(r.MinimumValue)
		if err != nil {
			return nil, err
		}
		minimum = &d
	}
	if r.MaximumValue != nil {
		d, err := asDate(r.MaximumValue)
		if err != nil {
			return nil, err
		}
		maximum = &d
	}
	if minimum != nil && maximum != nil && !minimum.Before(*maximum) {
		return nil, domain.ErrInvalidDateRange
	}
	return func(p domain.Product) bool {
		d, ok := value(p)
		if !ok {
			return false
		}
		if minimum != nil && d.Before(*minimum) {
			return false
		}
		if maximum != nil && d.After(*maximum) {
			return false
		}
		return true
	}, nil
}

func sortProducts(products []domain.Product, sorting domain.Sorting) error {
	var less func(a, b domain.Product) bool
	switch sorting.Selector {
	case domain.SelectorPrice:
		less = func(a, b domain.Product) bool { return a.Price.Value < b.Price.Value }
	case domain.SelectorCreatedDate:
		less = func(a, b domain.Product) bool {
			return dateKey(a.Metadata.CreatedDate).Before(dateKey(b.Metadata.CreatedDate))
		}
	case domain.SelectorExpiryDate:
		less = func(a, b domain.Product) bool {
			return expiryKey(a).Before(expiryKey(b))
		}
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSortSelector, sorting.Selector)
	}

	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
	if !sorting.Ascending {
		reverse(products)
	}
	return nil
}

func reverse(products []domain.Product) {
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
}

func parseProductDate(value string) (time.Time, bool) {
	d, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func dateKey(value string) time.Time {
	d, _ := parseProductDate(value)
	return d
}

// Products without an expiry date sort after everything dated.
func expiryKey(p domain.Product) time.Time {
	if p.Metadata.ExpiryDate == nil {
		return time.Unix(1<<62, 0)
	}
	return dateKey(*p.Metadata.ExpiryDate)
}

func numberBounds(r domain.FilterRange) (*float64, *float64, error) {
	var minimum, maximum *float64
	if r.MinimumValue != nil {
		v, err := asNumber(r.MinimumValue)
		if err != nil {
			return nil, nil, err
		}
		minimum = &v
	}
	if r.MaximumValue != nil {
		v, err := asNumber(r.MaximumValue)
		if err != nil {
			return nil, nil, err
		}
		maximum = &v
	}
	return minimum, maximum, nil
}

func asNumber(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	default:
		return 0, fmt.Errorf("%w: expected number, got %T", domain.ErrInvalidFilterValue, value)
	}
}

func asString(value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string, got %T", domain.ErrInvalidFilterValue, value)
	}
	return s, nil
}

func asDate(value interface{}) (time.Time, error) {
	s, err := asString(value)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateFormat
	}
	return d, nil
}
