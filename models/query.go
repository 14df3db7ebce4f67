package models

// Sort keys accepted by the query pipeline.
const (
	SortTitleAsc     = "title-asc"
	SortPriceAsc     = "price-asc"
	SortPriceDesc    = "price-desc"
	SortRatingDesc   = "rating-desc"
	SortDiscountDesc = "discount-desc"
)

// QueryParams carries one request's filter/sort/pagination settings.
// Nil price bounds mean the bound is not applied; MinRating 0 disables
// the rating floor.
type QueryParams struct {
	Page      int
	Limit     int
	Search    string
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating float64
	SortBy    string
}

type PaginationMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}
