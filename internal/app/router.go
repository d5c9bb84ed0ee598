package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/novelreader-backend/internal/config"
	"github.com/heartmarshall/novelreader-backend/internal/transport/middleware"
	"github.com/heartmarshall/novelreader-backend/internal/transport/rest"
)

// Router collects the handlers and settings the HTTP API is built from.
// A nil Limiter disables rate limiting.
type Router struct {
	Search     *rest.SearchHandler
	Catalog    *rest.CatalogHandler
	Health     *rest.HealthHandler
	Limiter    *middleware.RateLimiter
	CORS       config.CORSConfig
	TrustProxy bool
	Logger     *slog.Logger
}

// NewRouter registers every route and wraps the mux in the middleware chain.
func NewRouter(r Router) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", r.Health.Live)
	mux.HandleFunc("GET /ready", r.Health.Ready)
	mux.HandleFunc("GET /health", r.Health.Health)

	var limit middleware.Middleware
	if r.Limiter != nil {
		limit = r.Limiter.Middleware()
	}
	limited := middleware.Chain(limit)
	mux.Handle("GET /api/search", limited(http.HandlerFunc(r.Search.Search)))
	mux.Handle("GET /api/search/suggestions", limited(http.HandlerFunc(r.Search.Suggestions)))

	mux.HandleFunc("GET /api/novels", r.Catalog.ListNovels)
	mux.HandleFunc("GET /api/novels/{id}", r.Catalog.GetNovel)
	mux.HandleFunc("GET /api/novels/{id}/chapters", r.Catalog.ListChapters)
	mux.HandleFunc("GET /api/novels/{novelId}/chapters/{chapterId}", r.Catalog.GetChapter)
	mux.HandleFunc("GET /api/categories", r.Catalog.ListCategories)
	mux.HandleFunc("GET /api/categories/{slug}", r.Catalog.GetCategory)
	mux.HandleFunc("GET /api/categories/{slug}/novels", r.Catalog.ListCategoryNovels)

	mux.HandleFunc("/api/", rest.NotFound)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(r.TrustProxy),
		middleware.Logger(r.Logger),
		middleware.Recovery(r.Logger),
		middleware.CORS(r.CORS),
	)(mux)
}
