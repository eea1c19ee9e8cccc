package locale

import "net/http"

// Middleware stores the language negotiated from Accept-Language in the
// request context. Requests without a usable header pass through unchanged.
func Middleware(n *Negotiator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if lang, ok := n.Match(r.Header.Get("Accept-Language")); ok {
				r = r.WithContext(WithLanguage(r.Context(), lang))
			}
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r)
		})
	}
}
