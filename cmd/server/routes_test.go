package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type readiness bool

func (r readiness) Ready() bool { return bool(r) }

func marker(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(name + " " + r.URL.Path))
	})
}

func TestBuildRouter(t *testing.T) {
	tests := []struct {
		name    string
		appPath string
		ready   bool
		path    string
		status  int
		body    string
	}{
		{name: "healthz", path: "/healthz", status: http.StatusOK, body: "OK"},
		{name: "readyz before startup", path: "/readyz", status: http.StatusServiceUnavailable, body: "NOT READY"},
		{name: "readyz", ready: true, path: "/readyz", status: http.StatusOK, body: "READY"},
		{name: "api", path: "/api/offers", status: http.StatusOK, body: "api /api/offers"},
		{name: "app root", path: "/", status: http.StatusOK, body: "app /"},
		{name: "app offer", path: "/offre/42", status: http.StatusOK, body: "app /offre/42"},
		{name: "prefixed app root", appPath: "/emplois", path: "/emplois", status: http.StatusOK, body: "app "},
		{name: "prefixed app offer", appPath: "/emplois", path: "/emplois/offre/42", status: http.StatusOK, body: "app /offre/42"},
		{name: "prefixed app outside", appPath: "/emplois", path: "/offre/42", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modules := &Modules{
				APIPath: "/api",
				API:     marker("api"),
				AppPath: tt.appPath,
				App:     marker("app"),
			}
			h := buildRouter(readiness(tt.ready), modules)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}
