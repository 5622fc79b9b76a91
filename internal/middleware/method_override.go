package middleware

import (
	"net/http"
	"strings"
)

const MethodOverrideHeader = "X-HTTP-Method-Override"

var overridableMethods = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride lets HTML forms reach PATCH and DELETE routes. A POST with
// ?_method=PATCH (or the X-HTTP-Method-Override header) is rewritten before
// gin picks a route, so it has to wrap the engine instead of being a gin
// middleware.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.Header.Get(MethodOverrideHeader)
			if method == "" {
				method = r.URL.Query().Get("_method")
			}
			method = strings.ToUpper(strings.TrimSpace(method))
			if overridableMethods[method] {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
