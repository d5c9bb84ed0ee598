package rest

import (
	"time"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

type novelSummaryDTO struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	CoverURL         *string  `json:"cover_url"`
	ShortDescription string   `json:"short_description"`
	Status           string   `json:"status"`
	WordCount        int64    `json:"word_count"`
	AuthorName       *string  `json:"author_name"`
	Relevance        *float64 `json:"relevance,omitempty"`
}

type novelDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	CoverURL    *string   `json:"cover_url"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	WordCount   int64     `json:"word_count"`
	Category    *string   `json:"category"`
	AuthorName  *string   `json:"author_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type chapterDTO struct {
	ID            int64  `json:"id"`
	ChapterNumber int    `json:"chapter_number"`
	Title         string `json:"title"`
	WordCount     int64  `json:"word_count"`
}

type chapterDetailDTO struct {
	ID            int64     `json:"id"`
	ChapterNumber int       `json:"chapter_number"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	WordCount     int64     `json:"word_count"`
	CreatedAt     time.Time `json:"created_at"`
	NovelTitle    string    `json:"novel_title"`
	AuthorName    *string   `json:"author_name"`
}

type categoryDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	IsFeatured  bool    `json:"is_featured"`
	SortOrder   int     `json:"sort_order"`
}

func toNovelSummaries(ns []domain.NovelSummary) []novelSummaryDTO {
	out := make([]novelSummaryDTO, len(ns))
	for i, n := range ns {
		out[i] = novelSummaryDTO{
			ID:               n.ID,
			Title:            n.Title,
			CoverURL:         n.CoverURL,
			ShortDescription: n.ShortDescription,
			Status:           n.Status.String(),
			WordCount:        n.WordCount,
			AuthorName:       n.AuthorName,
			Relevance:        n.Relevance,
		}
	}
	return out
}

func toNovel(n domain.Novel) novelDTO {
	return novelDTO{
		ID:          n.ID,
		Title:       n.Title,
		CoverURL:    n.CoverURL,
		Description: n.Description,
		Status:      n.Status.String(),
		WordCount:   n.WordCount,
		Category:    n.Category,
		AuthorName:  n.AuthorName,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func toNovels(ns []domain.Novel) []novelDTO {
	out := make([]novelDTO, len(ns))
	for i, n := range ns {
		out[i] = toNovel(n)
	}
	return out
}

func toChapters(cs []domain.Chapter) []chapterDTO {
	out := make([]chapterDTO, len(cs))
	for i, c := range cs {
		out[i] = chapterDTO{
			ID:            c.ID,
			ChapterNumber: c.Number,
			Title:         c.Title,
			WordCount:     c.WordCount,
		}
	}
	return out
}

func toChapterDetail(c domain.Chapter) chapterDetailDTO {
	return chapterDetailDTO{
		ID:            c.ID,
		ChapterNumber: c.Number,
		Title:         c.Title,
		Content:       c.Content,
		WordCount:     c.WordCount,
		CreatedAt:     c.CreatedAt,
		NovelTitle:    c.NovelTitle,
		AuthorName:    c.AuthorName,
	}
}

func toCategory(c domain.Category) categoryDTO {
	return categoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsFeatured:  c.IsFeatured,
		SortOrder:   c.SortOrder,
	}
}

func toCategories(cs []domain.Category) []categoryDTO {
	out := make([]categoryDTO, len(cs))
	for i, c := range cs {
		out[i] = toCategory(c)
	}
	return out
}
