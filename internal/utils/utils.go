package utils

import (
	"unicode/utf8"

	"github.com/anonbbs-dev/anonbbs/internal/errors"
)

type BoardNameValidator struct{}

func (e *BoardNameValidator) Name(name string) error {
	if name == "" {
		return &errors.ErrorWithStatusCode{Message: "Board name is required", StatusCode: 400}
	}
	if utf8.RuneCountInString(name) > 50 {
		return &errors.ErrorWithStatusCode{Message: "Board name is too long", StatusCode: 400}
	}
	return nil
}

type PostValidator struct{}

func (e *PostValidator) Title(title string) error {
	if title == "" {
		return &errors.ErrorWithStatusCode{Message: "Title is required", StatusCode: 400}
	}
	if utf8.RuneCountInString(title) > 100 {
		return &errors.ErrorWithStatusCode{Message: "Title is too long", StatusCode: 400}
	}
	return nil
}

func (e *PostValidator) Content(content string) error {
	if utf8.RuneCountInString(content) > 10_000 {
		return &errors.ErrorWithStatusCode{Message: "Content is too long", StatusCode: 400}
	}
	return nil
}

type NicknameValidator struct{}

func (e *NicknameValidator) Nickname(nickname string) error {
	if utf8.RuneCountInString(nickname) > 30 {
		return &errors.ErrorWithStatusCode{Message: "Nickname is too long", StatusCode: 400}
	}
	return nil
}
