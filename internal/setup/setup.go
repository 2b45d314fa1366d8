package setup

import (
	"github.com/anonbbs-dev/anonbbs/internal/config"
	"github.com/anonbbs-dev/anonbbs/internal/handler"
	"github.com/anonbbs-dev/anonbbs/internal/markdown"
	"github.com/anonbbs-dev/anonbbs/internal/middleware"
	"github.com/anonbbs-dev/anonbbs/internal/service"
	"github.com/anonbbs-dev/anonbbs/internal/storage/pg"
	"github.com/anonbbs-dev/anonbbs/internal/utils"
)

// Dependencies holds everything the router needs, wired together.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Session *middleware.Session
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	identity := service.NewIdentity(storage, &utils.NicknameValidator{})
	board := service.NewBoard(storage, &utils.BoardNameValidator{})
	thread := service.NewThread(storage, &utils.PostValidator{})

	session := middleware.NewSession(identity, cfg.SessionTTL(), cfg.Public.SecureCookies)
	renderer := markdown.New()

	h := handler.New(identity, board, thread, renderer, session, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Session: session,
		Config:  cfg,
	}, nil
}
