package catalog

import (
	"sort"
	"strings"

	"comparehubapi/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query runs the filter -> sort -> paginate pipeline over the full
// catalog. The input slice is never mutated.
func Query(products []models.Product, params models.QueryParams) ([]models.Product, models.PaginationMeta) {
	filtered := FilterProducts(products, params)
	sorted := SortProducts(filtered, params.SortBy)
	return Paginate(sorted, params.Page, params.Limit)
}

// FilterProducts applies every supplied predicate conjunctively. Each
// price bound is optional on its own.
func FilterProducts(products []models.Product, params models.QueryParams) []models.Product {
	result := make([]models.Product, 0, len(products))

	search := strings.ToLower(params.Search)

	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}

		if params.Category != "" && !strings.EqualFold(p.Category, params.Category) {
			continue
		}

		if params.Brand != "" && !strings.EqualFold(p.Brand, params.Brand) {
			continue
		}

		if params.MinPrice != nil && p.Price < *params.MinPrice {
			continue
		}

		if params.MaxPrice != nil && p.Price > *params.MaxPrice {
			continue
		}

		if params.MinRating > 0 && p.Rating < params.MinRating {
			continue
		}

		result = append(result, p)
	}

	return result
}

// SortProducts orders by a single sort key, falling back to title-asc
// for unknown keys. The sort is stable so ties keep their filtered
// order.
func SortProducts(products []models.Product, sortBy string) []models.Product {
	result := make([]models.Product, len(products))
	copy(result, products)

	switch sortBy {
	case models.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case models.SortRatingDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	case models.SortDiscountDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DiscountPercentage > result[j].DiscountPercentage
		})
	default:
		// a Collator carries iterator state and must not be shared
		// across goroutines
		titleCollator := collate.New(language.English)
		sort.SliceStable(result, func(i, j int) bool {
			return titleCollator.CompareString(result[i].Title, result[j].Title) < 0
		})
	}

	return result
}

// Paginate slices out one page. A page past the end yields an empty
// slice, not an error.
func Paginate(products []models.Product, page, limit int) ([]models.Product, models.PaginationMeta) {
	total := len(products)
	totalPages := (total + limit - 1) / limit

	meta := models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}

	offset := (page - 1) * limit
	if offset >= total {
		return []models.Product{}, meta
	}

	end := offset + limit
	if end > total {
		end = total
	}

	pageItems := make([]models.Product, end-offset)
	copy(pageItems, products[offset:end])

	return pageItems, meta
}
