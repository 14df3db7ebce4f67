package comparison

import (
	"strconv"
	"strings"

	"comparehubapi/models"
)

// EncodeIds renders an id sequence as the comma-separated form used in
// shareable comparison links.
func EncodeIds(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// DecodeIds parses a comma-separated id list, silently discarding
// non-numeric and non-positive tokens.
func DecodeIds(raw string) []int {
	if raw == "" {
		return []int{}
	}

	ids := []int{}
	for _, token := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// Highlights marks the standout product per metric for the comparison
// view. Nil when there is nothing to compare.
type Highlights struct {
	CheapestId        *int `json:"cheapestId"`
	HighestRatedId    *int `json:"highestRatedId"`
	HighestDiscountId *int `json:"highestDiscountId"`
}

func DeriveHighlights(products []models.Product) Highlights {
	if len(products) == 0 {
		return Highlights{}
	}

	cheapest := products[0]
	highestRated := products[0]
	highestDiscount := products[0]

	for _, p := range products[1:] {
		if p.Price < cheapest.Price {
			cheapest = p
		}
		if p.Rating > highestRated.Rating {
			highestRated = p
		}
		if p.DiscountPercentage > highestDiscount.DiscountPercentage {
			highestDiscount = p
		}
	}

	return Highlights{
		CheapestId:        &cheapest.Id,
		HighestRatedId:    &highestRated.Id,
		HighestDiscountId: &highestDiscount.Id,
	}
}
