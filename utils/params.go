package utils

import (
	"strconv"
	"strings"

	"marketly/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int64.
	MaxPage = 1_000_000_000
)

// QueryParams is the read side of url.Values.
type QueryParams interface {
	Get(key string) string
}

// ParsePage reads page and limit. Missing values take the defaults; anything
// else must be a positive integer no larger than MaxPage or MaxLimit.
func ParsePage(p QueryParams) (models.Page, error) {
	page, err := positiveInt(p.Get("page"), "page", DefaultPage, MaxPage)
	if err != nil {
		return models.Page{}, err
	}
	limit, err := positiveInt(p.Get("limit"), "limit", DefaultLimit, MaxLimit)
	if err != nil {
		return models.Page{}, err
	}
	return models.Page{Page: page, Limit: limit}, nil
}

func positiveInt(raw, name string, def, max int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewValidationError("%s must be an integer", name)
	}
	if n < 1 {
		return 0, NewValidationError("%s must be at least 1", name)
	}
	if n > max {
		return 0, NewValidationError("%s must be at most %d", name, max)
	}
	return n, nil
}
