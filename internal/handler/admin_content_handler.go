package handler

import (
	"context"
	"fmt"
	"net/http"

	"blackeagles/internal/model"
	"blackeagles/internal/service"
	"blackeagles/internal/session"

	"github.com/gin-gonic/gin"
)

var langOptions = []string{model.LangKO, model.LangEN}

// AdminContentHandler is the admin CRUD for roster and page content tables.
type AdminContentHandler struct {
	content   service.ContentService
	pages     *Pages
	uploads   *Uploader
	resources []adminResource
}

func NewAdminContentHandler(content service.ContentService, roster service.RosterService, pages *Pages, uploads *Uploader) *AdminContentHandler {
	h := &AdminContentHandler{content: content, pages: pages, uploads: uploads}
	h.resources = []adminResource{
		&resource[model.Pilot]{
			path:  "pilots",
			title: "조종사",
			fields: []field{
				{Name: "number", Label: "번호", Kind: kindNumber, List: true},
				{Name: "position", Label: "포지션", Kind: kindText, List: true},
				{Name: "callsign", Label: "콜사인", Kind: kindText, List: true},
				{Name: "generation", Label: "기수", Kind: kindText, List: true},
				{Name: "aircraft", Label: "기체", Kind: kindText, List: true},
				{Name: "photo_url", Label: "사진", Kind: kindImage},
				{Name: "order_num", Label: "정렬 순서", Kind: kindNumber},
				{Name: "is_active", Label: "활성", Kind: kindCheckbox, List: true},
			},
			messages: resourceMessages{
				Created:  "조종사가 추가되었습니다.",
				Updated:  "조종사 정보가 수정되었습니다.",
				Deleted:  "조종사가 삭제되었습니다.",
				NotFound: "조종사를 찾을 수 없습니다.",
			},
			list:   func(ctx context.Context) ([]*model.Pilot, error) { return roster.ListPilots(ctx, false) },
			get:    roster.GetPilot,
			save:   roster.SavePilot,
			remove: roster.DeletePilot,
			create: func() *model.Pilot { return &model.Pilot{IsActive: true} },
		},
		&resource[model.MaintenanceCrew]{
			path:  "crew",
			title: "정비사",
			fields: []field{
				{Name: "name", Label: "이름", Kind: kindText, List: true},
				{Name: "role", Label: "역할", Kind: kindText, List: true},
				{Name: "callsign", Label: "콜사인", Kind: kindText, List: true},
				{Name: "photo_url", Label: "사진", Kind: kindImage},
				{Name: "bio", Label: "소개", Kind: kindTextarea},
				{Name: "order_num", Label: "정렬 순서", Kind: kindNumber},
				{Name: "is_active", Label: "활성", Kind: kindCheckbox, List: true},
			},
			messages: resourceMessages{
				Created:  "정비사가 추가되었습니다.",
				Updated:  "정비사 정보가 수정되었습니다.",
				Deleted:  "정비사가 삭제되었습니다.",
				NotFound: "정비사를 찾을 수 없습니다.",
			},
			list:   func(ctx context.Context) ([]*model.MaintenanceCrew, error) { return roster.ListCrew(ctx, false) },
			get:    roster.GetCrew,
			save:   roster.SaveCrew,
			remove: roster.DeleteCrew,
			create: func() *model.MaintenanceCrew { return &model.MaintenanceCrew{IsActive: true} },
		},
		&resource[model.Candidate]{
			path:  "candidates",
			title: "후보자",
			fields: []field{
				{Name: "name", Label: "이름", Kind: kindText, List: true},
				{Name: "callsign", Label: "콜사인", Kind: kindText, List: true},
				{Name: "photo_url", Label: "사진", Kind: kindImage},
				{Name: "bio", Label: "소개", Kind: kindTextarea},
				{Name: "order_num", Label: "정렬 순서", Kind: kindNumber},
				{Name: "is_active", Label: "활성", Kind: kindCheckbox, List: true},
			},
			messages: resourceMessages{
				Created:  "후보자가 추가되었습니다.",
				Updated:  "후보자 정보가 수정되었습니다.",
				Deleted:  "후보자가 삭제되었습니다.",
				NotFound: "후보자를 찾을 수 없습니다.",
			},
			list:   func(ctx context.Context) ([]*model.Candidate, error) { return roster.ListCandidates(ctx, false) },
			get:    roster.GetCandidate,
			save:   roster.SaveCandidate,
			remove: roster.DeleteCandidate,
			create: func() *model.Candidate { return &model.Candidate{IsActive: true} },
		},
		&resource[model.CommanderGreeting]{
			path:  "commanders",
			title: "전대장 인사말",
			fields: []field{
				{Name: "lang", Label: "언어", Kind: kindSelect, Options: langOptions, List: true},
				{Name: "name", Label: "이름", Kind: kindText, List: true},
				{Name: "rank", Label: "직책", Kind: kindText, List: true},
				{Name: "callsign", Label: "콜사인", Kind: kindText, List: true},
				{Name: "generation", Label: "기수", Kind: kindText},
				{Name: "aircraft", Label: "기체", Kind: kindText},
				{Name: "photo_url", Label: "사진", Kind: kindImage},
				{Name: "greeting_text", Label: "인사말", Kind: kindTextarea},
				{Name: "order_num", Label: "정렬 순서", Kind: kindNumber},
				{Name: "is_active", Label: "활성", Kind: kindCheckbox, List: true},
			},
			messages: resourceMessages{
				Created:  "전대장 인사말이 추가되었습니다.",
				Updated:  "전대장 인사말이 수정되었습니다.",
				Deleted:  "전대장 인사말이 삭제되었습니다.",
				NotFound: "전대장 인사말을 찾을 수 없습니다.",
			},
			list: func(ctx context.Context) ([]*model.CommanderGreeting, error) {
				return roster.ListCommanders(ctx, false, "")
			},
			get:    roster.GetCommander,
			save:   roster.SaveCommander,
			remove: roster.DeleteCommander,
			create: func() *model.CommanderGreeting {
				return &model.CommanderGreeting{IsActive: true, Lang: model.LangKO}
			},
		},
		&resource[model.HomeContent]{
			path:  "home-contents",
			title: "홈 콘텐츠",
			fields: []field{
				{Name: "content_type", Label: "유형", Kind: kindSelect, Options: []string{"youtube", "instagram", "html"}, List: true},
				{Name: "title", Label: "제목", Kind: kindText, List: true},
				{Name: "content_data", Label: "데이터 (URL 또는 임베드 코드)", Kind: kindTextarea},
				{Name: "order_num", Label: "정렬 순서", Kind: kindNumber, List: true},
				{Name: "is_active", Label: "활성", Kind: kindCheckbox, List: true},
			},
			messages: resourceMessages{
				Created:  "홈 콘텐츠가 추가되었습니다.",
				Updated:  "홈 콘텐츠가 수정되었습니다.",
				Deleted:  "홈 콘텐츠가 삭제되었습니다.",
				NotFound: "콘텐츠를 찾을 수 없습니다.",
			},
			list: func(ctx context.Context) ([]*model.HomeContent, error) {
				return content.ListHomeContents(ctx, false)
			},
			get:    content.GetHomeContent,
			save:   content.SaveHomeContent,
			remove: content.DeleteHomeContent,
			create: func() *model.HomeContent { return &model.HomeContent{IsActive: true, ContentType: "youtube"} },
		},
		&resource[model.AboutSection]{
			path:  "about-sections",
			title: "팀소개 섹션",
			fields: []field{
				{Name: "lang", Label: "언어", Kind: kindSelect, Options: langOptions, List: true},
				{Name: "section_type", Label: "섹션 유형", Kind: kindText, List: true},
				{Name: "title", Label: "제목", Kind: kindText, List: true},
				{Name: "content", Label: "내용 (항목은 | 로 구분)", Kind: kindTextarea},
				{Name: "image_url", Label: "이미지", Kind: kindImage},
				{Name: "order_num", Label: "정렬 순서", Kind: kindNumber, List: true},
				{Name: "is_active", Label: "활성", Kind: kindCheckbox, List: true},
			},
			messages: resourceMessages{
				Created:  "팀소개 섹션이 추가되었습니다.",
				Updated:  "팀소개 섹션이 수정되었습니다.",
				Deleted:  "팀소개 섹션이 삭제되었습니다.",
				NotFound: "섹션을 찾을 수 없습니다.",
			},
			list: func(ctx context.Context) ([]*model.AboutSection, error) {
				return content.ListAboutSections(ctx, false, "")
			},
			get:    content.GetAboutSection,
			save:   content.SaveAboutSection,
			remove: content.DeleteAboutSection,
			create: func() *model.AboutSection { return &model.AboutSection{IsActive: true, Lang: model.LangKO} },
		},
		&resource[model.GalleryPhoto]{
			path:  "gallery",
			title: "갤러리",
			fields: []field{
				{Name: "title", Label: "제목", Kind: kindText, List: true},
				{Name: "description", Label: "설명", Kind: kindTextarea},
				{Name: "image_url", Label: "이미지", Kind: kindImage, List: true},
				{Name: "order_num", Label: "정렬 순서", Kind: kindNumber, List: true},
				{Name: "is_active", Label: "활성", Kind: kindCheckbox, List: true},
			},
			messages: resourceMessages{
				Created:  "사진이 추가되었습니다.",
				Updated:  "사진이 수정되었습니다.",
				Deleted:  "사진이 삭제되었습니다.",
				NotFound: "사진을 찾을 수 없습니다.",
			},
			list:   func(ctx context.Context) ([]*model.GalleryPhoto, error) { return content.ListPhotos(ctx, false) },
			get:    content.GetPhoto,
			save:   content.SavePhoto,
			remove: content.DeletePhoto,
			create: func() *model.GalleryPhoto { return &model.GalleryPhoto{IsActive: true} },
		},
		&resource[model.PageSection]{
			path:  "sections",
			title: "페이지 섹션",
			fields: []field{
				{Name: "page_name", Label: "페이지", Kind: kindText, List: true},
				{Name: "section_id", Label: "섹션 ID", Kind: kindText, List: true},
				{Name: "section_type", Label: "섹션 유형", Kind: kindSelect, Options: []string{"text", "image", "video", "html"}},
				{Name: "title", Label: "제목", Kind: kindText, List: true},
				{Name: "content", Label: "내용", Kind: kindTextarea},
				{Name: "image_url", Label: "이미지", Kind: kindImage},
				{Name: "link_url", Label: "링크 URL", Kind: kindText},
				{Name: "link_text", Label: "링크 텍스트", Kind: kindText},
				{Name: "order_num", Label: "정렬 순서", Kind: kindNumber, List: true},
				{Name: "is_active", Label: "활성", Kind: kindCheckbox, List: true},
			},
			messages: resourceMessages{
				Created:  "섹션이 추가되었습니다.",
				Updated:  "섹션이 수정되었습니다.",
				Deleted:  "섹션이 삭제되었습니다.",
				NotFound: "섹션을 찾을 수 없습니다.",
			},
			list:   content.ListSections,
			get:    content.GetSection,
			save:   content.SaveSection,
			remove: content.DeleteSection,
			create: func() *model.PageSection { return &model.PageSection{IsActive: true, SectionType: "text"} },
		},
		&resource[model.Banner]{
			path:  "banners",
			title: "배너 설정",
			fields: []field{
				{Name: "page_name", Label: "페이지", Kind: kindText, List: true},
				{Name: "background_image", Label: "배경 이미지", Kind: kindImage},
				{Name: "title", Label: "제목", Kind: kindText, List: true},
				{Name: "subtitle", Label: "부제목", Kind: kindText, List: true},
				{Name: "description", Label: "설명", Kind: kindTextarea},
				{Name: "button_text", Label: "버튼 텍스트", Kind: kindText},
				{Name: "button_link", Label: "버튼 링크", Kind: kindText},
				{Name: "title_font", Label: "제목 글꼴", Kind: kindText},
				{Name: "title_color", Label: "제목 색상", Kind: kindColor},
				{Name: "subtitle_color", Label: "부제목 색상", Kind: kindColor},
				{Name: "description_color", Label: "설명 색상", Kind: kindColor},
				{Name: "vertical_position", Label: "세로 위치", Kind: kindSelect, Options: []string{"top", "center", "bottom"}},
				{Name: "padding_top", Label: "상단 여백(px)", Kind: kindNumber},
			},
			messages: resourceMessages{
				Updated:  "배너 설정이 수정되었습니다.",
				NotFound: "배너 설정을 찾을 수 없습니다.",
			},
			list: content.ListBanners,
			get:  content.GetBanner,
			save: content.SaveBanner,
		},
	}
	return h
}

func (h *AdminContentHandler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	for _, r := range h.resources {
		r.register(admin, h.pages, h.uploads)
	}

	admin.GET("/site-images", h.SiteImages)
	admin.GET("/site-images/:id/edit", h.SiteImageForm)
	admin.POST("/site-images/:id/edit", h.UpdateSiteImage)
}

func (h *AdminContentHandler) SiteImages(c *gin.Context) {
	images, err := h.content.ListSiteImages(c)
	if err != nil {
		h.pages.handlePageError(c, err, "SiteImages", "/admin", "이미지를 찾을 수 없습니다.")
		return
	}
	h.pages.HTML(c, http.StatusOK, "admin/site_images", gin.H{
		"Images": images,
	})
}

func (h *AdminContentHandler) SiteImageForm(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		var img *model.SiteImage
		if img, err = h.content.GetSiteImage(c, id); err == nil {
			h.pages.HTML(c, http.StatusOK, "admin/site_image_form", gin.H{
				"Image":  img,
				"Action": fmt.Sprintf("/admin/site-images/%d/edit", img.ID),
			})
			return
		}
	}
	h.pages.handlePageError(c, err, "SiteImageForm", "/admin/site-images", "이미지를 찾을 수 없습니다.")
}

type siteImageForm struct {
	ImagePath   string `form:"image_path"`
	Description string `form:"description"`
}

// UpdateSiteImage prefers an uploaded file over a typed path.
func (h *AdminContentHandler) UpdateSiteImage(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.pages.handlePageError(c, err, "UpdateSiteImage", "/admin/site-images", "이미지를 찾을 수 없습니다.")
		return
	}
	back := fmt.Sprintf("/admin/site-images/%d/edit", id)

	var form siteImageForm
	_ = c.ShouldBind(&form)

	url, err := h.uploads.Save(c, "image_file")
	if err != nil {
		h.pages.handlePageError(c, err, "UpdateSiteImage", back, "이미지를 찾을 수 없습니다.")
		return
	}
	if url != "" {
		form.ImagePath = url
	}

	if _, err := h.content.UpdateSiteImage(c, id, form.ImagePath, form.Description); err != nil {
		h.pages.handlePageError(c, err, "UpdateSiteImage", back, "이미지를 찾을 수 없습니다.")
		return
	}
	h.pages.Redirect(c, "/admin/site-images", session.FlashSuccess, "이미지가 업데이트되었습니다.")
}
