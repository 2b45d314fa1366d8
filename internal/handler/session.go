package handler

import (
	"net/http"

	"github.com/anonbbs-dev/anonbbs/internal/api"
	"github.com/anonbbs-dev/anonbbs/internal/utils"
)

// NewSession force-mints a fresh identity, abandoning the current one. The
// old user row stays behind; its posts keep their author.
func (h *Handler) NewSession(w http.ResponseWriter, r *http.Request) {
	clientAddr, err := utils.GetIP(r)
	if err != nil {
		clientAddr = r.RemoteAddr
	}

	user, err := h.identity.Mint(r.Context(), clientAddr)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.session.SetCookie(w, user.Session)

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, api.AuthorResponse{ShowId: user.ShowId, Nickname: user.Nickname})
}
