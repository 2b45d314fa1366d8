package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anonbbs-dev/anonbbs/internal/api"
	"github.com/anonbbs-dev/anonbbs/internal/domain"
	"github.com/anonbbs-dev/anonbbs/internal/utils"
)

func boardResponse(board domain.Board) api.BoardResponse {
	return api.BoardResponse{Id: board.Id, Name: board.Name, Introduction: board.Introduction}
}

// GetBoards lists every board: the homepage.
func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.GetAll(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.BoardListResponse{Boards: make([]api.BoardResponse, len(boards))}
	for i, board := range boards {
		response.Boards[i] = boardResponse(board)
	}
	writeJSON(w, response)
}

// GetBoard returns a board and its thread summaries, recently started
// first.
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardId, err := parseIntParam(chi.URLParam(r, "board"), "board")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Get(r.Context(), boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	threads, err := h.thread.ListByBoard(r.Context(), boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.BoardPageResponse{
		Board:   boardResponse(board),
		Threads: make([]api.ThreadSummaryResponse, len(threads)),
	}
	for i, t := range threads {
		response.Threads[i] = api.ThreadSummaryResponse{
			ThreadId:  t.ThreadId,
			Title:     t.Title,
			CreatedAt: t.CreatedAt,
			Author:    api.AuthorResponse{ShowId: t.AuthorShowId, Nickname: t.AuthorNickname},
		}
	}
	writeJSON(w, response)
}
