package search

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
	"github.com/heartmarshall/novelreader-backend/internal/validate"
)

// SearchInput holds the parameters of a search request.
// Zero Page and Limit select the defaults.
type SearchInput struct {
	Query string `field:"q"     validate:"-"`
	Page  int    `field:"page"  validate:"gte=0"`
	Limit int    `field:"limit" validate:"gte=0"`
}

// normalize trims the query and applies page/limit defaults. Limit is
// clamped to maxLimit.
func (i SearchInput) normalize(defaultLimit, maxLimit int) SearchInput {
	i.Query = strings.TrimSpace(i.Query)
	if i.Page == 0 {
		i.Page = 1
	}
	if i.Limit == 0 {
		i.Limit = defaultLimit
	}
	if i.Limit > maxLimit {
		i.Limit = maxLimit
	}
	return i
}

// validateQuery rejects a trimmed query longer than maxLen characters.
func validateQuery(q string, maxLen int) error {
	if utf8.RuneCountInString(q) <= maxLen {
		return nil
	}
	return domain.NewValidationError("q", fmt.Sprintf("search query too long (max %d characters)", maxLen))
}

// Validate checks page and limit.
func (i SearchInput) Validate() error {
	return validate.Struct(i)
}
