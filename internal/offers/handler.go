package offers

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/offer-board/pkg/handlers"
	"github.com/JaimeStill/offer-board/pkg/pagination"
	"github.com/JaimeStill/offer-board/pkg/routes"
)

// MatchRequest is the body of a match request.
type MatchRequest struct {
	CVText string `json:"cv_text"`
}

// Handler provides HTTP handlers for offer listing, retrieval, upsert, and CV matching.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
	maxBody    int64
}

// NewHandler creates a new offers HTTP handler. maxBody bounds request bodies.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, maxBody int64) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger,
		pagination: pagination,
		maxBody:    maxBody,
	}
}

// Routes returns the route group for offer endpoints, relative to the API base path.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/offers",
		Tags:        []string{"Offers"},
		Description: "Job offers and CV matching",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Save, OpenAPI: Spec.Save},
			{Method: "POST", Pattern: "/{id}/match", Handler: h.Match, OpenAPI: Spec.Match},
		},
	}
}

// List handles GET /offers to retrieve a paginated list of offers.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /offers/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Save handles PUT /offers/{id}. The path ID overrides any ID in the body.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var offer Offer
	if err := handlers.DecodeJSON(w, r, h.maxBody, &offer); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	offer.ID = r.PathValue("id")

	result, err := h.sys.Save(r.Context(), offer)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Match handles POST /offers/{id}/match to score a CV against an offer.
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := handlers.DecodeJSON(w, r, h.maxBody, &req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Match(r.Context(), r.PathValue("id"), req.CVText)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
