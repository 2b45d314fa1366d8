package handler

import (
	"net/http"

	"github.com/anonbbs-dev/anonbbs/internal/api"
	"github.com/anonbbs-dev/anonbbs/internal/utils"
)

// GetProfile returns the session identity's public face and its posting
// history across all boards.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	history, err := h.thread.UserHistory(r.Context(), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ProfileResponse{
		Identity: api.AuthorResponse{ShowId: user.ShowId, Nickname: user.Nickname},
		History:  make([]api.UserPostRecordResponse, len(history)),
	}
	for i, rec := range history {
		response.History[i] = api.UserPostRecordResponse{
			BoardId:   rec.BoardId,
			BoardName: rec.BoardName,
			ThreadId:  rec.ThreadId,
			PostId:    rec.PostId,
			Title:     rec.Title,
			CreatedAt: rec.CreatedAt,
		}
	}
	writeJSON(w, response)
}

// UpdateNickname overwrites the session identity's display name.
func (h *Handler) UpdateNickname(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	var body api.UpdateNicknameRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.identity.UpdateNickname(r.Context(), user.Id, body.Nickname); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
