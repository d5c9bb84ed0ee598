package novel

// Filter defines parameters for listing novels.
type Filter struct {
	// Category filters by category slug. Empty means no filter.
	Category string

	// SortBy determines the sort column: "created_at" or "updated_at".
	// Always descending. Default: "created_at".
	SortBy string

	// Limit is the maximum number of novels to return. Default: 10, max: 100.
	Limit int

	// Offset is the number of novels to skip.
	Offset int
}

const (
	defaultLimit = 10
	maxLimit     = 100

	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case SortByCreatedAt, SortByUpdatedAt:
	default:
		f.SortBy = SortByCreatedAt
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}

func (f *Filter) sortColumn() string {
	if f.SortBy == SortByUpdatedAt {
		return "n.updated_at"
	}
	return "n.created_at"
}
