package seeder

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// Dataset is the YAML document the seeder loads.
type Dataset struct {
	Categories []CategoryRecord `yaml:"categories"`
	Novels     []NovelRecord    `yaml:"novels"`
}

// CategoryRecord describes one category.
type CategoryRecord struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Featured    bool   `yaml:"featured"`
	SortOrder   int    `yaml:"sort_order"`
}

// NovelRecord describes one novel and its chapters in reading order.
type NovelRecord struct {
	Title       string          `yaml:"title"`
	Author      string          `yaml:"author"`
	CoverURL    string          `yaml:"cover_url"`
	Description string          `yaml:"description"`
	Status      string          `yaml:"status"`
	Category    string          `yaml:"category"`
	Chapters    []ChapterRecord `yaml:"chapters"`
}

// ChapterRecord describes one chapter. Its number is its position in the list.
type ChapterRecord struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// LoadDataset reads and validates a dataset file. Unknown keys are rejected.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return &ds, nil
}

// Validate checks required fields and uniqueness of slugs and titles.
func (ds *Dataset) Validate() error {
	var errs []error

	slugs := make(map[string]bool, len(ds.Categories))
	for i, c := range ds.Categories {
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("categories[%d]: name is required", i))
		}
		if strings.TrimSpace(c.Slug) == "" {
			errs = append(errs, fmt.Errorf("categories[%d]: slug is required", i))
			continue
		}
		if slugs[c.Slug] {
			errs = append(errs, fmt.Errorf("categories[%d]: duplicate slug %q", i, c.Slug))
		}
		slugs[c.Slug] = true
	}

	titles := make(map[string]bool, len(ds.Novels))
	for i, n := range ds.Novels {
		if strings.TrimSpace(n.Title) == "" {
			errs = append(errs, fmt.Errorf("novels[%d]: title is required", i))
		} else if titles[n.Title] {
			errs = append(errs, fmt.Errorf("novels[%d]: duplicate title %q", i, n.Title))
		}
		titles[n.Title] = true

		if n.Status != "" && !domain.NovelStatus(n.Status).IsValid() {
			errs = append(errs, fmt.Errorf("novels[%d]: invalid status %q", i, n.Status))
		}
		for j, c := range n.Chapters {
			if strings.TrimSpace(c.Title) == "" {
				errs = append(errs, fmt.Errorf("novels[%d].chapters[%d]: title is required", i, j))
			}
		}
	}

	return errors.Join(errs...)
}

// categories converts records to domain categories.
func (ds *Dataset) categories() []domain.Category {
	out := make([]domain.Category, len(ds.Categories))
	for i, c := range ds.Categories {
		out[i] = domain.Category{
			Name:        c.Name,
			Slug:        c.Slug,
			Description: optional(c.Description),
			IsFeatured:  c.Featured,
			SortOrder:   c.SortOrder,
		}
	}
	return out
}

// authors returns the distinct non-empty author names in dataset order.
func (ds *Dataset) authors() []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range ds.Novels {
		if n.Author == "" || seen[n.Author] {
			continue
		}
		seen[n.Author] = true
		out = append(out, n.Author)
	}
	return out
}

// toDomain converts a record to a novel and its numbered chapters. The
// novel's word count is the sum of its chapters'.
func (n NovelRecord) toDomain() (domain.Novel, []domain.Chapter) {
	status := domain.NovelStatus(n.Status)
	if status == "" {
		status = domain.NovelStatusOngoing
	}

	chapters := make([]domain.Chapter, len(n.Chapters))
	var total int64
	for i, c := range n.Chapters {
		wc := wordCount(c.Content)
		chapters[i] = domain.Chapter{
			Number:    i + 1,
			Title:     c.Title,
			Content:   c.Content,
			WordCount: wc,
		}
		total += wc
	}

	return domain.Novel{
		Title:       n.Title,
		CoverURL:    optional(n.CoverURL),
		Description: n.Description,
		Status:      status,
		WordCount:   total,
		Category:    optional(n.Category),
	}, chapters
}

// wordCount counts non-space characters, the convention for CJK text.
func wordCount(s string) int64 {
	var n int64
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
