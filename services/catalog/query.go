package catalog

import (
	"math"
	"strconv"
	"strings"

	"marketly/models"
	"marketly/utils"
)

// sortFields maps accepted sortBy values to document fields.
var sortFields = map[string]string{
	"rating":      "rating",
	"price":       "price",
	"createdAt":   "createdAt",
	"title":       "title",
	"reviewCount": "reviewCount",
}

const defaultSortField = "rating"

// ParseServiceQuery validates listing parameters. searchKey names the
// parameter carrying the free text search ("search" or "q").
func ParseServiceQuery(p utils.QueryParams, searchKey string) (models.ServiceQuery, error) {
	filter, err := ParseFilter(p, searchKey)
	if err != nil {
		return models.ServiceQuery{}, err
	}
	sort, err := ParseSort(p)
	if err != nil {
		return models.ServiceQuery{}, err
	}
	page, err := utils.ParsePage(p)
	if err != nil {
		return models.ServiceQuery{}, err
	}
	return models.ServiceQuery{Filter: filter, Sort: sort, Page: page}, nil
}

// ParseFilter builds a ServiceFilter. Empty values impose no constraint.
func ParseFilter(p utils.QueryParams, searchKey string) (models.ServiceFilter, error) {
	var f models.ServiceFilter
	f.CategoryID = strings.TrimSpace(p.Get("category"))
	f.Search = strings.TrimSpace(p.Get(searchKey))

	var err error
	if f.MinPrice, err = parsePrice(p.Get("minPrice"), "minPrice"); err != nil {
		return models.ServiceFilter{}, err
	}
	if f.MaxPrice, err = parsePrice(p.Get("maxPrice"), "maxPrice"); err != nil {
		return models.ServiceFilter{}, err
	}
	return f, nil
}

func parsePrice(raw, name string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, utils.NewValidationError("%s must be a number", name)
	}
	return &v, nil
}

// ParseSort reads sortBy and sortOrder, defaulting to highest rated first.
func ParseSort(p utils.QueryParams) (models.ServiceSort, error) {
	sort := models.ServiceSort{Field: defaultSortField, Order: models.SortDesc}

	if by := strings.TrimSpace(p.Get("sortBy")); by != "" {
		field, ok := sortFields[by]
		if !ok {
			return models.ServiceSort{}, utils.NewValidationError("unsupported sortBy %q", by)
		}
		sort.Field = field
	}

	switch order := strings.ToLower(strings.TrimSpace(p.Get("sortOrder"))); order {
	case "", "desc":
	case "asc":
		sort.Order = models.SortAsc
	default:
		return models.ServiceSort{}, utils.NewValidationError("sortOrder must be asc or desc")
	}
	return sort, nil
}
