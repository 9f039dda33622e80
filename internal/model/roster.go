package model

import (
	"strings"
	"time"

	apperrors "blackeagles/pkg/app_errors"
)

// Pilot is one formation slot on the about page.
type Pilot struct {
	ID         int       `json:"id" db:"id" form:"-"`
	Number     int       `json:"number" db:"number" form:"number"`
	Position   string    `json:"position" db:"position" form:"position"`
	Callsign   string    `json:"callsign" db:"callsign" form:"callsign"`
	Generation string    `json:"generation" db:"generation" form:"generation"`
	Aircraft   string    `json:"aircraft" db:"aircraft" form:"aircraft"`
	PhotoURL   string    `json:"photo_url" db:"photo_url" form:"photo_url"`
	OrderNum   int       `json:"order_num" db:"order_num" form:"order_num"`
	IsActive   bool      `json:"is_active" db:"is_active" form:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" form:"-"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at" form:"-"`
}

func (p *Pilot) Validate() error {
	p.Position = strings.TrimSpace(p.Position)
	p.Callsign = strings.TrimSpace(p.Callsign)
	p.Generation = strings.TrimSpace(p.Generation)
	p.Aircraft = strings.TrimSpace(p.Aircraft)
	if p.Number == 0 || p.Position == "" || p.Callsign == "" || p.Generation == "" || p.Aircraft == "" {
		return apperrors.NewValidationError("", "모든 필수 항목을 입력해주세요.")
	}
	return nil
}

type MaintenanceCrew struct {
	ID        int       `json:"id" db:"id" form:"-"`
	Name      string    `json:"name" db:"name" form:"name"`
	Role      string    `json:"role" db:"role" form:"role"`
	Callsign  string    `json:"callsign" db:"callsign" form:"callsign"`
	PhotoURL  string    `json:"photo_url" db:"photo_url" form:"photo_url"`
	Bio       string    `json:"bio" db:"bio" form:"bio"`
	OrderNum  int       `json:"order_num" db:"order_num" form:"order_num"`
	IsActive  bool      `json:"is_active" db:"is_active" form:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at" form:"-"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" form:"-"`
}

func (c *MaintenanceCrew) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Callsign = strings.TrimSpace(c.Callsign)
	if c.Name == "" || c.Callsign == "" {
		return apperrors.NewValidationError("", "이름과 콜사인은 필수 항목입니다.")
	}
	return nil
}

type Candidate struct {
	ID        int       `json:"id" db:"id" form:"-"`
	Name      string    `json:"name" db:"name" form:"name"`
	Callsign  string    `json:"callsign" db:"callsign" form:"callsign"`
	PhotoURL  string    `json:"photo_url" db:"photo_url" form:"photo_url"`
	Bio       string    `json:"bio" db:"bio" form:"bio"`
	OrderNum  int       `json:"order_num" db:"order_num" form:"order_num"`
	IsActive  bool      `json:"is_active" db:"is_active" form:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at" form:"-"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" form:"-"`
}

func (c *Candidate) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Callsign = strings.TrimSpace(c.Callsign)
	if c.Name == "" || c.Callsign == "" {
		return apperrors.NewValidationError("", "이름과 콜사인은 필수 항목입니다.")
	}
	return nil
}

// CommanderGreeting is stored once per language.
type CommanderGreeting struct {
	ID           int       `json:"id" db:"id" form:"-"`
	Name         string    `json:"name" db:"name" form:"name"`
	Rank         string    `json:"rank" db:"rank" form:"rank"`
	Callsign     string    `json:"callsign" db:"callsign" form:"callsign"`
	Generation   string    `json:"generation" db:"generation" form:"generation"`
	Aircraft     string    `json:"aircraft" db:"aircraft" form:"aircraft"`
	PhotoURL     string    `json:"photo_url" db:"photo_url" form:"photo_url"`
	GreetingText string    `json:"greeting_text" db:"greeting_text" form:"greeting_text"`
	Lang         string    `json:"lang" db:"lang" form:"lang"`
	OrderNum     int       `json:"order_num" db:"order_num" form:"order_num"`
	IsActive     bool      `json:"is_active" db:"is_active" form:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" form:"-"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at" form:"-"`
}

func (c *CommanderGreeting) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Rank = strings.TrimSpace(c.Rank)
	c.Callsign = strings.TrimSpace(c.Callsign)
	c.Generation = strings.TrimSpace(c.Generation)
	c.Aircraft = strings.TrimSpace(c.Aircraft)
	if c.Name == "" || c.Rank == "" || c.Callsign == "" || c.Generation == "" || c.Aircraft == "" {
		return apperrors.NewValidationError("", "모든 필수 항목을 입력해주세요.")
	}
	c.Lang = NormalizeLang(c.Lang)
	return nil
}

const (
	LangKO = "ko"
	LangEN = "en"
)

// NormalizeLang maps anything but "en" to the Korean default.
func NormalizeLang(lang string) string {
	if strings.EqualFold(strings.TrimSpace(lang), LangEN) {
		return LangEN
	}
	return LangKO
}
