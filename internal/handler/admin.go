package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anonbbs-dev/anonbbs/internal/api"
	"github.com/anonbbs-dev/anonbbs/internal/domain"
	"github.com/anonbbs-dev/anonbbs/internal/utils"
)

// CreateBoard is the admin operation behind POST /v1/admin/boards.
func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.board.Create(r.Context(), body.Name, body.Introduction)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, api.CreatedResponse{Id: id})
}

// UpdateBoard applies a partial board edit; absent fields are untouched.
func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	boardId, err := parseIntParam(chi.URLParam(r, "board"), "board")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdateBoardRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err = h.board.Update(r.Context(), boardId, domain.BoardUpdate{
		Name:         body.Name,
		Introduction: body.Introduction,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
