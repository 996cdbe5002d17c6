package offers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/offer-board/internal/offers"
	"github.com/JaimeStill/offer-board/pkg/pagination"
)

type fakeSystem struct {
	offers   map[string]offers.Offer
	lastPage pagination.PageRequest
	lastF    offers.Filters
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{offers: map[string]offers.Offer{
		"42": {
			ID:          "42",
			Title:       "Développeur Go",
			Description: "Communication avec les clients et travail en équipe agile.",
		},
	}}
}

func (f *fakeSystem) List(ctx context.Context, page pagination.PageRequest, filters offers.Filters) (*pagination.PageResult[offers.Offer], error) {
	f.lastPage = page
	f.lastF = filters
	data := make([]offers.Offer, 0, len(f.offers))
	for _, o := range f.offers {
		data = append(data, o)
	}
	result := pagination.NewPageResult(data, len(data), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeSystem) Find(ctx context.Context, id string) (*offers.Offer, error) {
	if err := offers.ValidateID(id); err != nil {
		return nil, err
	}
	o, ok := f.offers[id]
	if !ok {
		return nil, offers.ErrNotFound
	}
	return &o, nil
}

func (f *fakeSystem) Save(ctx context.Context, o offers.Offer) (*offers.Offer, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	f.offers[o.ID] = o
	return &o, nil
}

func (f *fakeSystem) SaveAll(ctx context.Context, all []offers.Offer) (int, error) {
	for _, o := range all {
		if _, err := f.Save(ctx, o); err != nil {
			return 0, err
		}
	}
	return len(all), nil
}

func (f *fakeSystem) Match(ctx context.Context, id, cvText string) (*offers.MatchResult, error) {
	o, err := f.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return offers.Analyze(*o, cvText)
}

var testPagination = pagination.Config{DefaultPageSize: 12, MaxPageSize: 100}

func newTestMux(sys offers.System) *http.ServeMux {
	h := offers.NewHandler(sys, slog.New(slog.NewTextHandler(io.Discard, nil)), testPagination, 1024)

	mux := http.NewServeMux()
	for _, r := range h.Routes().Flatten("/api") {
		mux.HandleFunc(r.Method+" "+r.Pattern, r.Handler)
	}
	return mux
}

func TestHandler_Routes(t *testing.T) {
	h := offers.NewHandler(newFakeSystem(), slog.Default(), testPagination, 0)
	group := h.Routes()

	if group.Prefix != "/offers" {
		t.Errorf("Prefix = %q, want /offers", group.Prefix)
	}

	want := map[string]bool{
		"GET ":             true,
		"GET /{id}":        true,
		"PUT /{id}":        true,
		"POST /{id}/match": true,
	}
	if len(group.Routes) != len(want) {
		t.Fatalf("Routes = %d, want %d", len(group.Routes), len(want))
	}
	for _, r := range group.Routes {
		if !want[r.Method+" "+r.Pattern] {
			t.Errorf("unexpected route %s %s", r.Method, r.Pattern)
		}
	}
}

func TestHandler_List(t *testing.T) {
	sys := newFakeSystem()
	mux := newTestMux(sys)

	req := httptest.NewRequest(http.MethodGet, "/api/offers?page=2&page_size=500&contract_type=CDI&search=go", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if sys.lastPage.Page != 2 || sys.lastPage.PageSize != 100 {
		t.Errorf("page = %d/%d, want 2/100", sys.lastPage.Page, sys.lastPage.PageSize)
	}
	if sys.lastPage.Search == nil || *sys.lastPage.Search != "go" {
		t.Errorf("search = %v, want go", sys.lastPage.Search)
	}
	if sys.lastF.ContractType == nil || *sys.lastF.ContractType != "CDI" {
		t.Errorf("contract_type filter = %v, want CDI", sys.lastF.ContractType)
	}

	var result pagination.PageResult[offers.Offer]
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Total != 1 || len(result.Data) != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestHandler_Find(t *testing.T) {
	mux := newTestMux(newFakeSystem())

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "found", path: "/api/offers/42", status: http.StatusOK},
		{name: "missing", path: "/api/offers/404XYZ", status: http.StatusNotFound},
		{name: "invalid id", path: "/api/offers/a%20b", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if w.Code != http.StatusOK && !strings.Contains(w.Body.String(), `"error"`) {
				t.Errorf("body = %q, want error response", w.Body.String())
			}
		})
	}
}

func TestHandler_Save(t *testing.T) {
	sys := newFakeSystem()
	mux := newTestMux(sys)

	body := `{"id": "ignored", "title": "Chef de projet", "company": "ACME"}`
	req := httptest.NewRequest(http.MethodPut, "/api/offers/77", strings.NewReader(body))
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if o, ok := sys.offers["77"]; !ok || o.Title != "Chef de projet" {
		t.Errorf("stored offer = %+v", sys.offers["77"])
	}
	if _, ok := sys.offers["ignored"]; ok {
		t.Error("body id should not be used")
	}

	req = httptest.NewRequest(http.MethodPut, "/api/offers/78", strings.NewReader(`{"title": ""}`))
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandler_Match(t *testing.T) {
	mux := newTestMux(newFakeSystem())

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{name: "match", path: "/api/offers/42/match", body: `{"cv_text": "Bonne communication orale."}`, status: http.StatusOK},
		{name: "empty cv", path: "/api/offers/42/match", body: `{"cv_text": ""}`, status: http.StatusBadRequest},
		{name: "unknown field", path: "/api/offers/42/match", body: `{"cv": "x"}`, status: http.StatusBadRequest},
		{name: "malformed", path: "/api/offers/42/match", body: `{`, status: http.StatusBadRequest},
		{name: "too large", path: "/api/offers/42/match", body: `{"cv_text": "` + strings.Repeat("a", 2048) + `"}`, status: http.StatusBadRequest},
		{name: "missing offer", path: "/api/offers/99/match", body: `{"cv_text": "communication"}`, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.status, w.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}

			var result offers.MatchResult
			if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if result.OfferID != "42" || result.Rate != 40 {
				t.Errorf("result = %+v, want offer 42 at 40%%", result)
			}
		})
	}
}
