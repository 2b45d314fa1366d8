package handler

import (
	"net/http"

	"github.com/anonbbs-dev/anonbbs/internal/domain"
	"github.com/anonbbs-dev/anonbbs/internal/middleware"
)

// requireUser fetches the session identity from the request context. A nil
// return means the response is already written; routes are always mounted
// under the session middleware, so this only trips on wiring mistakes.
func requireUser(w http.ResponseWriter, r *http.Request) *domain.User {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "No session", http.StatusUnauthorized)
		return nil
	}
	return user
}
