package catalog

import (
	"math"
	"sort"

	"comparehubapi/models"
)

// Fallback range for an empty catalog so filter controls always get a
// numeric domain.
var fallbackPriceRange = models.PriceRange{Min: 0, Max: 10000}

// DeriveMetadata computes the distinct categories, distinct non-empty
// brands and the rounded price bounds of a product collection.
func DeriveMetadata(products []models.Product) models.Metadata {
	if len(products) == 0 {
		return models.Metadata{
			Categories: []string{},
			Brands:     []string{},
			PriceRange: fallbackPriceRange,
		}
	}

	categorySet := map[string]bool{}
	brandSet := map[string]bool{}
	minPrice := products[0].Price
	maxPrice := products[0].Price

	for _, p := range products {
		categorySet[p.Category] = true
		if p.Brand != "" {
			brandSet[p.Brand] = true
		}
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	brands := make([]string, 0, len(brandSet))
	for b := range brandSet {
		brands = append(brands, b)
	}
	sort.Strings(brands)

	return models.Metadata{
		Categories: categories,
		Brands:     brands,
		PriceRange: models.PriceRange{
			Min: int(math.Floor(minPrice)),
			Max: int(math.Ceil(maxPrice)),
		},
	}
}
