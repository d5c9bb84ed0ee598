package domain

// PageRequest is a 1-indexed offset pagination request.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns (Page-1)*Limit.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages returns the number of pages needed for total rows.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
