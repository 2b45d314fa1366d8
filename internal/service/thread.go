package service

import (
	"context"

	"github.com/anonbbs-dev/anonbbs/internal/domain"
)

// to mock service in tests
type ThreadService interface {
	Create(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error)
	Reply(ctx context.Context, creationData domain.ReplyCreationData) (domain.PostId, error)
	ListByBoard(ctx context.Context, boardId domain.BoardId) ([]domain.ThreadSummary, error)
	Posts(ctx context.Context, threadId domain.ThreadId) ([]domain.PostView, error)
	Board(ctx context.Context, threadId domain.ThreadId) (domain.Board, error)
	UserHistory(ctx context.Context, userId domain.UserId) ([]domain.UserPostRecord, error)
}

type Thread struct {
	storage   ThreadStorage
	validator PostValidator
}

type ThreadStorage interface {
	CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error)
	AddReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.PostId, error)
	ListThreads(ctx context.Context, boardId domain.BoardId) ([]domain.ThreadSummary, error)
	ListPosts(ctx context.Context, threadId domain.ThreadId) ([]domain.PostView, error)
	GetThreadBoard(ctx context.Context, threadId domain.ThreadId) (domain.Board, error)
	ListUserThreads(ctx context.Context, userId domain.UserId) ([]domain.UserPostRecord, error)
}

type PostValidator interface {
	Title(title string) error
	Content(content string) error
}

func NewThread(storage ThreadStorage, validator PostValidator) ThreadService {
	return &Thread{storage, validator}
}

func (t *Thread) Create(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	if err := t.validator.Title(creationData.Title); err != nil {
		return -1, err
	}
	if err := t.validator.Content(creationData.Content); err != nil {
		return -1, err
	}
	return t.storage.CreateThread(ctx, creationData)
}

func (t *Thread) Reply(ctx context.Context, creationData domain.ReplyCreationData) (domain.PostId, error) {
	// nil title means "derive from head post", validated after derivation
	// by construction: the derived title inherits a validated head title.
	if creationData.Title != nil {
		if err := t.validator.Title(*creationData.Title); err != nil {
			return -1, err
		}
	}
	if err := t.validator.Content(creationData.Content); err != nil {
		return -1, err
	}
	return t.storage.AddReply(ctx, creationData)
}

func (t *Thread) ListByBoard(ctx context.Context, boardId domain.BoardId) ([]domain.ThreadSummary, error) {
	return t.storage.ListThreads(ctx, boardId)
}

func (t *Thread) Posts(ctx context.Context, threadId domain.ThreadId) ([]domain.PostView, error) {
	return t.storage.ListPosts(ctx, threadId)
}

func (t *Thread) Board(ctx context.Context, threadId domain.ThreadId) (domain.Board, error) {
	return t.storage.GetThreadBoard(ctx, threadId)
}

func (t *Thread) UserHistory(ctx context.Context, userId domain.UserId) ([]domain.UserPostRecord, error) {
	return t.storage.ListUserThreads(ctx, userId)
}
