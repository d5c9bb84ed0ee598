package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// Phase names in canonical execution order.
const (
	PhaseCategories = "categories"
	PhaseNovels     = "novels"
)

var allPhases = []string{PhaseCategories, PhaseNovels}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline seeds categories first, then novels with their chapters.
type Pipeline struct {
	log     *slog.Logger
	repo    CatalogBulkRepo
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo CatalogBulkRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repo:    repo,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run loads the dataset and executes the pipeline. If phases is non-empty,
// only the listed phases run, still in canonical order. A failed phase does
// not stop later phases.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	if p.cfg.DataPath == "" {
		return errors.New("data path not configured")
	}
	ds, err := LoadDataset(p.cfg.DataPath)
	if err != nil {
		return err
	}
	p.log.Info("dataset loaded",
		slog.Int("categories", len(ds.Categories)),
		slog.Int("novels", len(ds.Novels)),
	)

	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseCategories:
			result = p.runCategories(ctx, ds)
		case PhaseNovels:
			result = p.runNovels(ctx, ds)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}
	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
			delete(filter, ph)
		}
	}
	for ph := range filter {
		return nil, fmt.Errorf("unknown phase %q", ph)
	}
	return out, nil
}

func (p *Pipeline) runCategories(ctx context.Context, ds *Dataset) PhaseResult {
	categories := ds.categories()
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(categories)}
	}

	inserted, err := batchProcess(categories, p.cfg.BatchSize, func(batch []domain.Category) (int, error) {
		return p.repo.InsertCategories(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Inserted: inserted, Err: fmt.Errorf("insert categories: %w", err)}
	}
	return PhaseResult{Inserted: inserted, Skipped: len(categories) - inserted}
}

// runNovels inserts every novel whose title is not yet stored. A failing
// novel is counted and logged; the rest still run.
func (p *Pipeline) runNovels(ctx context.Context, ds *Dataset) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(ds.Novels)}
	}

	titles := make([]string, len(ds.Novels))
	for i, n := range ds.Novels {
		titles[i] = n.Title
	}
	existing, err := p.repo.GetNovelIDsByTitles(ctx, titles)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("lookup novels: %w", err)}
	}

	authorIDs, err := p.repo.EnsureAuthors(ctx, ds.authors())
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("ensure authors: %w", err)}
	}

	var result PhaseResult
	for _, rec := range ds.Novels {
		if _, ok := existing[rec.Title]; ok {
			result.Skipped++
			continue
		}

		var authorID *int64
		if id, ok := authorIDs[rec.Author]; ok {
			authorID = &id
		}

		novel, chapters := rec.toDomain()
		id, err := p.repo.InsertNovel(ctx, novel, authorID, chapters)
		if err != nil {
			if ctx.Err() != nil {
				result.Err = ctx.Err()
				return result
			}
			result.Errors++
			p.log.Warn("insert novel failed",
				slog.String("title", rec.Title),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Inserted++
		p.log.Debug("novel inserted",
			slog.Int64("novel_id", id),
			slog.String("title", rec.Title),
			slog.Int("chapters", len(chapters)),
		)
	}
	return result
}

// batchProcess splits items into chunks of batchSize and calls fn for each.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
