package middlewares

import (
	"net/http"
	"sync"
)

// SerializeMiddleware runs wrapped handlers one at a time.
// Account and ledger operations are unlocked load/modify/save cycles.
func SerializeMiddleware() func(http.Handler) http.Handler {
	var mu sync.Mutex
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}
