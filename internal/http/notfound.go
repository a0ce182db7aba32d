package http

import (
	_ "embed"
	"net/http"
	"strings"
)

//go:embed views/404.html
var notFoundPage []byte

// NotFoundHandler answers anything no route claimed. API clients get a
// bare 400; browsers get the 404 page with the same status.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Accept"), "text/html") {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(notFoundPage)
			return
		}

		w.WriteHeader(http.StatusBadRequest)
	})
}
