package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anonbbs-dev/anonbbs/internal/config"
	internal_errors "github.com/anonbbs-dev/anonbbs/internal/errors"
	"github.com/anonbbs-dev/anonbbs/internal/logger"
	"github.com/anonbbs-dev/anonbbs/internal/markdown"
	"github.com/anonbbs-dev/anonbbs/internal/middleware"
	"github.com/anonbbs-dev/anonbbs/internal/service"
)

// HealthChecker is what the readiness probe needs from the storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	identity service.IdentityService
	board    service.BoardService
	thread   service.ThreadService
	renderer *markdown.Renderer
	session  *middleware.Session
	health   HealthChecker
	cfg      *config.Config
}

func New(identity service.IdentityService, board service.BoardService, thread service.ThreadService, renderer *markdown.Renderer, session *middleware.Session, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{identity, board, thread, renderer, session, health, cfg}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func parseIntParam(value, name string) (int64, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, internal_errors.InvalidInput(name + " must be an integer")
	}
	return parsed, nil
}
