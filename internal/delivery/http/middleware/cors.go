package middleware

import "net/http"

// CORS adds cross-origin headers for the configured front-end origin.
// An origin of "*" allows any caller.
func CORS(allowedOrigin string) func(http.HandlerFunc) http.HandlerFunc {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next(w, r)
		}
	}
}
