package model

import (
	"strings"
	"time"

	apperrors "blackeagles/pkg/app_errors"
)

type Notice struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type NoticeParams struct {
	Title   string
	Content string
	Author  string
}

func (p *NoticeParams) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	if p.Title == "" || p.Content == "" {
		return apperrors.NewValidationError("", "제목과 내용을 모두 입력해주세요.")
	}
	if p.Author == "" {
		p.Author = "admin"
	}
	return nil
}
