package service

import (
	"context"

	"github.com/anonbbs-dev/anonbbs/internal/domain"
)

// to mock service in tests
type BoardService interface {
	Create(ctx context.Context, name, introduction string) (domain.BoardId, error)
	Get(ctx context.Context, id domain.BoardId) (domain.Board, error)
	GetAll(ctx context.Context) ([]domain.Board, error)
	Update(ctx context.Context, id domain.BoardId, update domain.BoardUpdate) error
}

type Board struct {
	storage       BoardStorage
	nameValidator BoardValidator
}

type BoardStorage interface {
	CreateBoard(ctx context.Context, name, introduction string) (domain.BoardId, error)
	GetBoard(ctx context.Context, id domain.BoardId) (domain.Board, error)
	ListBoards(ctx context.Context) ([]domain.Board, error)
	UpdateBoard(ctx context.Context, id domain.BoardId, update domain.BoardUpdate) error
}

type BoardValidator interface {
	Name(name string) error
}

func NewBoard(storage BoardStorage, validator BoardValidator) BoardService {
	return &Board{storage, validator}
}

func (b *Board) Create(ctx context.Context, name, introduction string) (domain.BoardId, error) {
	if err := b.nameValidator.Name(name); err != nil {
		return -1, err
	}
	return b.storage.CreateBoard(ctx, name, introduction)
}

func (b *Board) Get(ctx context.Context, id domain.BoardId) (domain.Board, error) {
	return b.storage.GetBoard(ctx, id)
}

func (b *Board) GetAll(ctx context.Context) ([]domain.Board, error) {
	return b.storage.ListBoards(ctx)
}

func (b *Board) Update(ctx context.Context, id domain.BoardId, update domain.BoardUpdate) error {
	if update.Name != nil {
		if err := b.nameValidator.Name(*update.Name); err != nil {
			return err
		}
	}
	return b.storage.UpdateBoard(ctx, id, update)
}
