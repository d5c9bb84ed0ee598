package rest

import "net/http"

// Endpoints lists the public API routes, advertised on unknown /api paths.
var Endpoints = []string{
	"/api/novels",
	"/api/novels/:id",
	"/api/novels/:id/chapters",
	"/api/novels/:novelId/chapters/:chapterId",
	"/api/categories",
	"/api/categories/:slug",
	"/api/categories/:slug/novels",
	"/api/search",
	"/api/search/suggestions",
}

type notFoundResponse struct {
	Success            bool     `json:"success"`
	Error              string   `json:"error"`
	Code               string   `json:"code"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// NotFound answers requests to unknown API paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, notFoundResponse{
		Error:              "API endpoint not found",
		Code:               CodeNotFound,
		AvailableEndpoints: Endpoints,
	})
}
