package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anonbbs-dev/anonbbs/internal/api"
	"github.com/anonbbs-dev/anonbbs/internal/domain"
	"github.com/anonbbs-dev/anonbbs/internal/logger"
	"github.com/anonbbs-dev/anonbbs/internal/utils"
)

// CreateThread starts a new thread on a board, authored by the session
// identity.
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	boardId, err := parseIntParam(chi.URLParam(r, "board"), "board")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threadId, err := h.thread.Create(r.Context(), domain.ThreadCreationData{
		Author:  user.Id,
		Board:   boardId,
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, api.CreatedResponse{Id: threadId})
}

// GetThread returns the owning board (breadcrumb) and the thread's posts
// in reading order.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.thread.Board(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	posts, err := h.thread.Posts(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadPageResponse{
		ThreadId: threadId,
		Board:    boardResponse(board),
		Posts:    make([]api.PostResponse, len(posts)),
	}
	for i, p := range posts {
		rendered, err := h.renderer.Render(p.Content)
		if err != nil {
			// raw content is still served; rendering is best effort
			logger.Log.Error("failed to render post content", "post", p.Id, "error", err)
		}
		response.Posts[i] = api.PostResponse{
			Id:          p.Id,
			Title:       p.Title,
			Content:     p.Content,
			ContentHtml: rendered,
			CreatedAt:   p.CreatedAt,
			Author:      api.AuthorResponse{ShowId: p.AuthorShowId, Nickname: p.AuthorNickname},
		}
	}
	writeJSON(w, response)
}

// CreatePost appends a reply to a thread.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateReplyRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	postId, err := h.thread.Reply(r.Context(), domain.ReplyCreationData{
		Author:  user.Id,
		Thread:  threadId,
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, api.CreatedResponse{Id: postId})
}
