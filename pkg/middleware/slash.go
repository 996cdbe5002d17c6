package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects paths with trailing slashes to the same path without
// them, keeping the query. GET and HEAD get 301. Other methods get 308 so a
// posted form survives the redirect. "/" passes through.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if p == "/" || !strings.HasSuffix(p, "/") {
				next.ServeHTTP(w, r)
				return
			}

			u := *r.URL
			u.Path = strings.TrimRight(p, "/")
			u.RawPath = ""
			if u.Path == "" {
				u.Path = "/"
			}

			status := http.StatusPermanentRedirect
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				status = http.StatusMovedPermanently
			}
			http.Redirect(w, r, u.RequestURI(), status)
		})
	}
}
