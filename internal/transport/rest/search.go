package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
	"github.com/heartmarshall/novelreader-backend/internal/service/search"
)

const (
	emptyQueryMessage   = "please enter a search keyword"
	searchFailedMessage = "search service is temporarily unavailable"
)

type searchService interface {
	Search(ctx context.Context, input search.SearchInput) (*search.Result, error)
	Suggest(ctx context.Context, q string) ([]domain.NovelSummary, error)
}

// SearchHandler serves the novel search endpoints.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

type searchMeta struct {
	Query   string `json:"query,omitempty"`
	Count   int    `json:"count"`
	HasMore bool   `json:"hasMore"`
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	Method  string `json:"method,omitempty"`
	Time    string `json:"time"`
	Message string `json:"message,omitempty"`
}

type searchResponse struct {
	Success bool              `json:"success"`
	Data    []novelSummaryDTO `json:"data"`
	Meta    searchMeta        `json:"meta"`
}

// Search handles GET /api/search?q=&page=&limit=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidParameter, validationMessage(err))
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidParameter, validationMessage(err))
		return
	}

	res, err := h.svc.Search(r.Context(), search.SearchInput{
		Query: r.URL.Query().Get("q"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.writeSearchError(w, r, err)
		return
	}

	meta := searchMeta{
		Query:   res.Query,
		Count:   res.Count(),
		HasMore: res.HasMore,
		Page:    res.Page,
		Limit:   res.Limit,
		Method:  res.Method.String(),
		Time:    fmt.Sprintf("%dms", res.Elapsed.Milliseconds()),
	}
	if res.Empty {
		meta.Method = ""
		meta.Message = emptyQueryMessage
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success: true,
		Data:    toNovelSummaries(res.Novels),
		Meta:    meta,
	})
}

// Suggestions handles GET /api/search/suggestions?q=.
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	novels, err := h.svc.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeSearchError(w, r, err)
		return
	}
	writeData(w, toNovelSummaries(novels))
}

func (h *SearchHandler) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		code := CodeInvalidParameter
		if len(ve.Errors) > 0 && ve.Errors[0].Field == "q" {
			code = CodeInvalidQuery
		}
		writeError(w, http.StatusBadRequest, code, ve.Message())
		return
	}

	h.log.ErrorContext(r.Context(), "search failed",
		slog.String("query", r.URL.Query().Get("q")),
		slog.String("error", err.Error()),
	)
	writeError(w, http.StatusInternalServerError, CodeSearchUnavailable, searchFailedMessage)
}
