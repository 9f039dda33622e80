package model

import (
	"strings"
	"time"

	apperrors "blackeagles/pkg/app_errors"
)

// InquiryType separates contact messages from donation messages.
type InquiryType string

const (
	InquiryContact InquiryType = "contact"
	InquiryDonate  InquiryType = "donate"
)

func (t InquiryType) IsValid() bool {
	return t == InquiryContact || t == InquiryDonate
}

// AnonymousName is stored when a contact message arrives without a name.
const AnonymousName = "익명"

// Inquiry is a visitor message. For donations Email carries the pledged amount.
type Inquiry struct {
	ID        int         `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Email     string      `json:"email" db:"email"`
	Message   string      `json:"message" db:"message"`
	Type      InquiryType `json:"type" db:"type"`
	IsRead    bool        `json:"is_read" db:"is_read"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

type SubmitInquiryParams struct {
	Type    InquiryType
	Name    string
	Email   string
	Message string
}

func (p *SubmitInquiryParams) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Message = strings.TrimSpace(p.Message)

	switch p.Type {
	case InquiryContact:
		if p.Email == "" || p.Message == "" {
			return apperrors.NewValidationError("", "이메일과 메시지를 모두 입력해 주세요.")
		}
		if p.Name == "" {
			p.Name = AnonymousName
		}
	case InquiryDonate:
		if p.Email == "" || p.Message == "" {
			return apperrors.NewValidationError("", "금액과 메시지를 모두 입력해 주세요.")
		}
	default:
		return apperrors.NewValidationError("type", "unknown inquiry type")
	}
	return nil
}

// InquiryNotification is the queued payload announcing a new inquiry.
type InquiryNotification struct {
	InquiryID int         `json:"inquiry_id"`
	Type      InquiryType `json:"type"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewInquiryNotification(in *Inquiry) *InquiryNotification {
	return &InquiryNotification{
		InquiryID: in.ID,
		Type:      in.Type,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: in.CreatedAt,
	}
}
