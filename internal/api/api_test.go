package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/offer-board/internal/api"
	"github.com/JaimeStill/offer-board/internal/config"
	"github.com/JaimeStill/offer-board/internal/infrastructure"
	"github.com/JaimeStill/offer-board/internal/offers"
	"github.com/JaimeStill/offer-board/pkg/middleware"
	"github.com/JaimeStill/offer-board/pkg/openapi"
	"github.com/JaimeStill/offer-board/pkg/pagination"
)

type stubOffers struct{}

func (stubOffers) List(ctx context.Context, page pagination.PageRequest, filters offers.Filters) (*pagination.PageResult[offers.Offer], error) {
	result := pagination.NewPageResult([]offers.Offer{}, 0, page.Page, page.PageSize)
	return &result, nil
}

func (stubOffers) Find(ctx context.Context, id string) (*offers.Offer, error) {
	if id != "194DZZT" {
		return nil, offers.ErrNotFound
	}
	return &offers.Offer{ID: id, Title: "Développeur Go"}, nil
}

func (stubOffers) Save(ctx context.Context, o offers.Offer) (*offers.Offer, error) {
	return &o, nil
}

func (stubOffers) SaveAll(ctx context.Context, list []offers.Offer) (int, error) {
	return len(list), nil
}

func (stubOffers) Match(ctx context.Context, id, cvText string) (*offers.MatchResult, error) {
	return nil, offers.ErrNotFound
}

func newHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Version: "1.2.3",
		API: config.APIConfig{
			BasePath:   "/api",
			Pagination: pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
			OpenAPI:    openapi.Config{Title: "Offer Board API", Description: "Offers"},
			CORS: middleware.CORSConfig{
				Enabled:        true,
				Origins:        []string{"http://localhost:5173"},
				AllowedMethods: []string{"GET", "PUT", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type"},
				MaxAge:         600,
			},
		},
	}

	runtime := api.NewRuntime(cfg, &infrastructure.Infrastructure{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	domain := &api.Domain{Offers: stubOffers{}}

	h, err := api.New(cfg, runtime, domain)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return h
}

func TestNew_Routes(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "list", method: http.MethodGet, path: "/api/offers", status: http.StatusOK},
		{name: "find", method: http.MethodGet, path: "/api/offers/194DZZT", status: http.StatusOK},
		{name: "find missing", method: http.MethodGet, path: "/api/offers/000000", status: http.StatusNotFound},
		{name: "spec", method: http.MethodGet, path: "/api/openapi.json", status: http.StatusOK},
		{name: "outside base path", method: http.MethodGet, path: "/offers", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestNew_OpenAPIDocument(t *testing.T) {
	h := newHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/openapi.json", nil))

	var doc openapi.Spec
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode spec: %v", err)
	}

	if doc.Info.Title != "Offer Board API" || doc.Info.Version != "1.2.3" {
		t.Errorf("Info = %+v", doc.Info)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "/api" {
		t.Errorf("Servers = %+v, want /api", doc.Servers)
	}

	match := doc.Paths["/offers/{id}/match"]
	if match == nil || match.Post == nil {
		t.Fatalf("paths = %v, want POST /offers/{id}/match", doc.Paths)
	}
	if match.Post.OperationID != "matchOffer" {
		t.Errorf("OperationID = %q, want matchOffer", match.Post.OperationID)
	}
	if len(match.Post.Tags) != 1 || match.Post.Tags[0] != "Offers" {
		t.Errorf("Tags = %v, want [Offers]", match.Post.Tags)
	}

	for _, name := range []string{"Error", "Offer", "OfferPageResult", "MatchRequest", "MatchResult", "SkillProfile"} {
		if _, ok := doc.Components.Schemas[name]; !ok {
			t.Errorf("schema %s missing", name)
		}
	}
}

func TestNew_CORSPreflight(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/offers/194DZZT/match", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
