package middleware

import (
	"net/http"

	"github.com/signal-au/signal-api/internal/auth"
	"github.com/signal-au/signal-api/pkg/problem"
)

// Auth rejects requests without a valid bearer token and stores the
// authenticated user ID in the request context.
func Auth(verifier *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := verifier.UserID(r.Header.Get("Authorization"))
			if err != nil {
				problem.Unauthorized("Authentication required").Write(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// CronAuth guards operational endpoints with a shared secret. An empty
// secret leaves the endpoint open (local development).
func CronAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret != "" && r.Header.Get("Authorization") != "Bearer "+secret {
				problem.Unauthorized("Invalid cron secret").Write(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
