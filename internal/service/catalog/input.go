package catalog

import (
	"strings"

	"github.com/heartmarshall/novelreader-backend/internal/validate"
)

// categoryAll is the listing filter value meaning "every category".
const categoryAll = "all"

// ListNovelsInput holds the parameters for listing novels.
// Zero Page and Limit select the defaults.
type ListNovelsInput struct {
	Category string
	Page     int `field:"page"  validate:"gte=0"`
	Limit    int `field:"limit" validate:"gte=0"`
}

// Validate checks all fields and collects all errors.
func (i ListNovelsInput) Validate() error {
	return validate.Struct(i)
}

// category returns the filter slug, or "" when no filter applies.
func (i ListNovelsInput) category() string {
	c := strings.TrimSpace(i.Category)
	if strings.EqualFold(c, categoryAll) {
		return ""
	}
	return c
}

// ListCategoryNovelsInput holds the parameters for listing a category's novels.
type ListCategoryNovelsInput struct {
	Slug  string `field:"slug"  validate:"required"`
	Page  int    `field:"page"  validate:"gte=0"`
	Limit int    `field:"limit" validate:"gte=0"`
}

// Validate checks all fields and collects all errors.
func (i ListCategoryNovelsInput) Validate() error {
	return validate.Struct(i)
}

// pageOrDefault returns 1 for an unset page.
func pageOrDefault(page int) int {
	if page == 0 {
		return 1
	}
	return page
}

// limitOrDefault applies def to an unset limit and clamps to MaxLimit.
func limitOrDefault(limit, def int) int {
	if limit == 0 {
		limit = def
	}
	return min(limit, MaxLimit)
}
