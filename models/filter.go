package models

// ServiceFilter is the storage independent form of a service search. Nil
// bounds and empty strings impose no constraint. Only available services
// are ever matched.
type ServiceFilter struct {
	CategoryID string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
}

type SortOrder int

const (
	SortDesc SortOrder = -1
	SortAsc  SortOrder = 1
)

// ServiceSort orders a listing by one allow-listed field.
type ServiceSort struct {
	Field string
	Order SortOrder
}

// ServiceQuery is a fully validated listing request.
type ServiceQuery struct {
	Filter ServiceFilter
	Sort   ServiceSort
	Page   Page
}

// ServicePage is one page of a service listing.
type ServicePage struct {
	Services    []ServiceListing `json:"services"`
	TotalPages  int64            `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// ReviewPage is one page of a service's reviews.
type ReviewPage struct {
	Reviews     []ReviewWithAuthor `json:"reviews"`
	TotalPages  int64              `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
}
