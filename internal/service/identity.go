package service

import (
	"context"

	"github.com/anonbbs-dev/anonbbs/internal/domain"
)

// to mock service in tests
type IdentityService interface {
	Mint(ctx context.Context, clientAddr string) (domain.User, error)
	Resolve(ctx context.Context, token, clientAddr string) (domain.User, error)
	UpdateNickname(ctx context.Context, userId domain.UserId, nickname string) error
}

type Identity struct {
	storage   IdentityStorage
	validator IdentityValidator
}

type IdentityStorage interface {
	MintIdentity(ctx context.Context, clientAddr string) (domain.User, error)
	ResolveSession(ctx context.Context, token, clientAddr string) (domain.User, error)
	UpdateNickname(ctx context.Context, userId domain.UserId, nickname string) error
}

type IdentityValidator interface {
	Nickname(nickname string) error
}

func NewIdentity(storage IdentityStorage, validator IdentityValidator) IdentityService {
	return &Identity{storage, validator}
}

func (s *Identity) Mint(ctx context.Context, clientAddr string) (domain.User, error) {
	return s.storage.MintIdentity(ctx, clientAddr)
}

func (s *Identity) Resolve(ctx context.Context, token, clientAddr string) (domain.User, error) {
	return s.storage.ResolveSession(ctx, token, clientAddr)
}

func (s *Identity) UpdateNickname(ctx context.Context, userId domain.UserId, nickname string) error {
	if err := s.validator.Nickname(nickname); err != nil {
		return err
	}
	return s.storage.UpdateNickname(ctx, userId, nickname)
}
