package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects "/login/" to "/login", keeping the query string and
// any escaped segments. The root path "/" is preserved. Leading slashes
// collapse to one so the target can never name another host.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if path := r.URL.EscapedPath(); len(path) > 1 && strings.HasSuffix(path, "/") {
				target := "/" + strings.Trim(path, "/")
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
