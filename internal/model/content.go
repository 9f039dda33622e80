package model

import (
	"strings"
	"time"

	apperrors "blackeagles/pkg/app_errors"
)

// Banner is the hero block at the top of a public page, one per page name.
type Banner struct {
	ID               int       `json:"id" db:"id" form:"-"`
	PageName         string    `json:"page_name" db:"page_name" form:"page_name"`
	BackgroundImage  string    `json:"background_image" db:"background_image" form:"background_image"`
	Title            string    `json:"title" db:"title" form:"title"`
	Subtitle         string    `json:"subtitle" db:"subtitle" form:"subtitle"`
	Description      string    `json:"description" db:"description" form:"description"`
	ButtonText       string    `json:"button_text" db:"button_text" form:"button_text"`
	ButtonLink       string    `json:"button_link" db:"button_link" form:"button_link"`
	TitleFont        string    `json:"title_font" db:"title_font" form:"title_font"`
	TitleColor       string    `json:"title_color" db:"title_color" form:"title_color"`
	SubtitleColor    string    `json:"subtitle_color" db:"subtitle_color" form:"subtitle_color"`
	DescriptionColor string    `json:"description_color" db:"description_color" form:"description_color"`
	VerticalPosition string    `json:"vertical_position" db:"vertical_position" form:"vertical_position"`
	PaddingTop       int       `json:"padding_top" db:"padding_top" form:"padding_top"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at" form:"-"`
}

const DefaultBannerPaddingTop = 250

func (b *Banner) Validate() error {
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		return apperrors.NewValidationError("title", "제목을 입력해주세요.")
	}
	if b.TitleFont == "" {
		b.TitleFont = "Arial, sans-serif"
	}
	if b.TitleColor == "" {
		b.TitleColor = "#ffffff"
	}
	if b.SubtitleColor == "" {
		b.SubtitleColor = "#ffffff"
	}
	if b.DescriptionColor == "" {
		b.DescriptionColor = "#ffffff"
	}
	if b.VerticalPosition == "" {
		b.VerticalPosition = "center"
	}
	if b.PaddingTop <= 0 {
		b.PaddingTop = DefaultBannerPaddingTop
	}
	return nil
}

// PageSection is unique per (PageName, SectionID).
type PageSection struct {
	ID          int       `json:"id" db:"id" form:"-"`
	PageName    string    `json:"page_name" db:"page_name" form:"page_name"`
	SectionID   string    `json:"section_id" db:"section_id" form:"section_id"`
	SectionType string    `json:"section_type" db:"section_type" form:"section_type"`
	Title       string    `json:"title" db:"title" form:"title"`
	Content     string    `json:"content" db:"content" form:"content"`
	ImageURL    string    `json:"image_url" db:"image_url" form:"image_url"`
	LinkURL     string    `json:"link_url" db:"link_url" form:"link_url"`
	LinkText    string    `json:"link_text" db:"link_text" form:"link_text"`
	OrderNum    int       `json:"order_num" db:"order_num" form:"order_num"`
	IsActive    bool      `json:"is_active" db:"is_active" form:"is_active"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" form:"-"`
}

func (s *PageSection) Validate() error {
	s.PageName = strings.TrimSpace(s.PageName)
	s.SectionID = strings.TrimSpace(s.SectionID)
	if s.PageName == "" || s.SectionID == "" {
		return apperrors.NewValidationError("", "페이지 이름과 섹션 ID는 필수입니다.")
	}
	if s.SectionType == "" {
		s.SectionType = "text"
	}
	return nil
}

// HomeContent is an embeddable block on the home page (YouTube video, SNS feed).
type HomeContent struct {
	ID          int       `json:"id" db:"id" form:"-"`
	ContentType string    `json:"content_type" db:"content_type" form:"content_type"`
	Title       string    `json:"title" db:"title" form:"title"`
	ContentData string    `json:"content_data" db:"content_data" form:"content_data"`
	OrderNum    int       `json:"order_num" db:"order_num" form:"order_num"`
	IsActive    bool      `json:"is_active" db:"is_active" form:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" form:"-"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" form:"-"`
}

func (h *HomeContent) Validate() error {
	h.ContentType = strings.TrimSpace(h.ContentType)
	h.ContentData = strings.TrimSpace(h.ContentData)
	if h.ContentType == "" || h.ContentData == "" {
		return apperrors.NewValidationError("", "콘텐츠 유형과 데이터를 입력해주세요.")
	}
	return nil
}

// AboutSection types shown in the overview block of the about page.
var OverviewSectionTypes = []string{"mission", "selection", "formation"}

type AboutSection struct {
	ID          int       `json:"id" db:"id" form:"-"`
	SectionType string    `json:"section_type" db:"section_type" form:"section_type"`
	Title       string    `json:"title" db:"title" form:"title"`
	Content     string    `json:"content" db:"content" form:"content"`
	ImageURL    string    `json:"image_url" db:"image_url" form:"image_url"`
	Lang        string    `json:"lang" db:"lang" form:"lang"`
	OrderNum    int       `json:"order_num" db:"order_num" form:"order_num"`
	IsActive    bool      `json:"is_active" db:"is_active" form:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" form:"-"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" form:"-"`
}

func (a *AboutSection) Validate() error {
	a.SectionType = strings.TrimSpace(a.SectionType)
	a.Title = strings.TrimSpace(a.Title)
	if a.SectionType == "" || a.Title == "" {
		return apperrors.NewValidationError("", "섹션 유형과 제목은 필수입니다.")
	}
	a.Lang = NormalizeLang(a.Lang)
	return nil
}

// Items splits pipe-separated content ("최대속도: 마하 1.5|엔진: ...") into lines.
func (a *AboutSection) Items() []string {
	parts := strings.Split(a.Content, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type GalleryPhoto struct {
	ID          int       `json:"id" db:"id" form:"-"`
	Title       string    `json:"title" db:"title" form:"title"`
	Description string    `json:"description" db:"description" form:"description"`
	ImageURL    string    `json:"image_url" db:"image_url" form:"image_url"`
	UploadDate  time.Time `json:"upload_date" db:"upload_date" form:"-"`
	OrderNum    int       `json:"order_num" db:"order_num" form:"order_num"`
	IsActive    bool      `json:"is_active" db:"is_active" form:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" form:"-"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" form:"-"`
}

func (g *GalleryPhoto) Validate() error {
	g.Title = strings.TrimSpace(g.Title)
	g.ImageURL = strings.TrimSpace(g.ImageURL)
	if g.Title == "" || g.ImageURL == "" {
		return apperrors.NewValidationError("", "제목과 이미지 URL은 필수입니다.")
	}
	return nil
}

// SiteImage is a keyed image slot ("hero_banner", "default_pilot") used by templates.
type SiteImage struct {
	ID          int       `json:"id" db:"id" form:"-"`
	ImageKey    string    `json:"image_key" db:"image_key" form:"image_key"`
	ImageName   string    `json:"image_name" db:"image_name" form:"image_name"`
	ImagePath   string    `json:"image_path" db:"image_path" form:"image_path"`
	Description string    `json:"description" db:"description" form:"description"`
	Category    string    `json:"category" db:"category" form:"category"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" form:"-"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" form:"-"`
}
