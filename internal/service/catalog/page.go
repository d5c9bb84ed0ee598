package catalog

import "github.com/heartmarshall/novelreader-backend/internal/domain"

// NovelPage is one page of a novel listing.
type NovelPage struct {
	Novels     []domain.Novel
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

func newNovelPage(novels []domain.Novel, page, limit, total int) *NovelPage {
	if novels == nil {
		novels = []domain.Novel{}
	}
	return &NovelPage{
		Novels:     novels,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: domain.TotalPages(total, limit),
	}
}
