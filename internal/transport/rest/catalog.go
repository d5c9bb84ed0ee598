package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
	"github.com/heartmarshall/novelreader-backend/internal/service/catalog"
)

type catalogService interface {
	ListNovels(ctx context.Context, input catalog.ListNovelsInput) (*catalog.NovelPage, error)
	GetNovel(ctx context.Context, id int64) (*domain.Novel, error)
	ListChapters(ctx context.Context, novelID int64) ([]domain.Chapter, error)
	GetChapter(ctx context.Context, novelID, chapterID int64) (*domain.Chapter, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*domain.Category, error)
	ListCategoryNovels(ctx context.Context, input catalog.ListCategoryNovelsInput) (*catalog.NovelPage, error)
}

// CatalogHandler serves novel, chapter and category read endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// ListNovels handles GET /api/novels?category=&page=&limit=.
func (h *CatalogHandler) ListNovels(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := h.pageParams(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ListNovels(r.Context(), catalog.ListNovelsInput{
		Category: r.URL.Query().Get("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		h.writeErr(w, r, err, "novel")
		return
	}
	writePage(w, res)
}

// GetNovel handles GET /api/novels/{id}.
func (h *CatalogHandler) GetNovel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeErr(w, r, err, "novel")
		return
	}

	n, err := h.svc.GetNovel(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err, "novel")
		return
	}
	writeData(w, toNovel(*n))
}

// ListChapters handles GET /api/novels/{id}/chapters.
func (h *CatalogHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeErr(w, r, err, "novel")
		return
	}

	chapters, err := h.svc.ListChapters(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err, "novel")
		return
	}
	writeData(w, toChapters(chapters))
}

// GetChapter handles GET /api/novels/{novelId}/chapters/{chapterId}.
func (h *CatalogHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	novelID, err := pathID(r, "novelId")
	if err != nil {
		h.writeErr(w, r, err, "chapter")
		return
	}
	chapterID, err := pathID(r, "chapterId")
	if err != nil {
		h.writeErr(w, r, err, "chapter")
		return
	}

	c, err := h.svc.GetChapter(r.Context(), novelID, chapterID)
	if err != nil {
		h.writeErr(w, r, err, "chapter")
		return
	}
	writeData(w, toChapterDetail(*c))
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.writeErr(w, r, err, "category")
		return
	}
	writeData(w, toCategories(categories))
}

// GetCategory handles GET /api/categories/{slug}.
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCategory(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.writeErr(w, r, err, "category")
		return
	}
	writeData(w, toCategory(*c))
}

// ListCategoryNovels handles GET /api/categories/{slug}/novels?page=&limit=.
func (h *CatalogHandler) ListCategoryNovels(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := h.pageParams(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ListCategoryNovels(r.Context(), catalog.ListCategoryNovelsInput{
		Slug:  r.PathValue("slug"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.writeErr(w, r, err, "category")
		return
	}
	writePage(w, res)
}

func (h *CatalogHandler) pageParams(w http.ResponseWriter, r *http.Request) (page, limit int, ok bool) {
	page, err := queryInt(r, "page")
	if err == nil {
		limit, err = queryInt(r, "limit")
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidParameter, validationMessage(err))
		return 0, 0, false
	}
	return page, limit, true
}

func (h *CatalogHandler) writeErr(w http.ResponseWriter, r *http.Request, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, CodeInvalidParameter, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, resource+" not found")
	default:
		h.log.ErrorContext(r.Context(), "catalog request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

func writePage(w http.ResponseWriter, p *catalog.NovelPage) {
	writeJSON(w, http.StatusOK, pageResponse{
		Success: true,
		Data:    toNovels(p.Novels),
		Pagination: pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      p.Total,
			TotalPages: p.TotalPages,
		},
	})
}
