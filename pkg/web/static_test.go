package web_test

import (
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/offer-board/pkg/web"
)

//go:embed testdata/static/*
var staticFS embed.FS

func TestDistServerServesFile(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static", "/dist/")

	req := httptest.NewRequest(http.MethodGet, "/dist/app.js", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "console.log") {
		t.Error("body should contain file content")
	}
}

func TestDistServerNotFound(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static", "/dist/")

	req := httptest.NewRequest(http.MethodGet, "/dist/missing.js", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestPublicFileServesFile(t *testing.T) {
	handler := web.PublicFile(staticFS, "testdata/static", "test.txt")

	req := httptest.NewRequest(http.MethodGet, "/test.txt", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if strings.TrimSpace(w.Body.String()) != "hello" {
		t.Errorf("body = %q, want hello", w.Body.String())
	}
}

func TestPublicFileNotFound(t *testing.T) {
	handler := web.PublicFile(staticFS, "testdata/static", "missing.txt")

	req := httptest.NewRequest(http.MethodGet, "/missing.txt", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestPublicFileRoutes(t *testing.T) {
	routes := web.PublicFileRoutes(staticFS, "testdata/static", "test.txt", "app.js")

	if len(routes) != 2 {
		t.Fatalf("PublicFileRoutes() returned %d routes, want 2", len(routes))
	}

	expectedPatterns := []string{"/test.txt", "/app.js"}
	for i, route := range routes {
		if route.Method != "GET" {
			t.Errorf("route %d: Method = %q, want GET", i, route.Method)
		}
		if route.Pattern != expectedPatterns[i] {
			t.Errorf("route %d: Pattern = %q, want %q", i, route.Pattern, expectedPatterns[i])
		}
		if route.Handler == nil {
			t.Errorf("route %d: Handler is nil", i)
		}
	}
}

func TestServeEmbeddedFile(t *testing.T) {
	handler := web.ServeEmbeddedFile([]byte("hello world"), "text/plain")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "hello world" {
		t.Errorf("body = %q, want %q", string(body), "hello world")
	}
}
