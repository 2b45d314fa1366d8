package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIdHeader = "X-Request-Id"

// RequestId tags every response with a request id, honoring one supplied
// by an upstream proxy.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, id)
		next.ServeHTTP(w, r)
	})
}
