package service

import (
	"context"
	"strings"

	"blackeagles/internal/model"
	"blackeagles/internal/repository"
	apperrors "blackeagles/pkg/app_errors"
)

// PageContent is what every public page with a banner renders.
type PageContent struct {
	Banner   *model.Banner
	Sections []*model.PageSection
}

type ContentService interface {
	// Page tolerates a missing banner; the template falls back to defaults.
	Page(ctx context.Context, pageName string) (*PageContent, error)

	ListBanners(ctx context.Context) ([]*model.Banner, error)
	GetBanner(ctx context.Context, id int) (*model.Banner, error)
	SaveBanner(ctx context.Context, banner *model.Banner) (*model.Banner, error)

	ListSections(ctx context.Context) ([]*model.PageSection, error)
	GetSection(ctx context.Context, id int) (*model.PageSection, error)
	SaveSection(ctx context.Context, section *model.PageSection) (*model.PageSection, error)
	DeleteSection(ctx context.Context, id int) error

	ListHomeContents(ctx context.Context, activeOnly bool) ([]*model.HomeContent, error)
	GetHomeContent(ctx context.Context, id int) (*model.HomeContent, error)
	SaveHomeContent(ctx context.Context, content *model.HomeContent) (*model.HomeContent, error)
	DeleteHomeContent(ctx context.Context, id int) error

	ListAboutSections(ctx context.Context, activeOnly bool, lang string) ([]*model.AboutSection, error)
	// OverviewSections is the mission/selection/formation block in one language.
	OverviewSections(ctx context.Context, lang string) ([]*model.AboutSection, error)
	GetAboutSection(ctx context.Context, id int) (*model.AboutSection, error)
	SaveAboutSection(ctx context.Context, section *model.AboutSection) (*model.AboutSection, error)
	DeleteAboutSection(ctx context.Context, id int) error

	ListPhotos(ctx context.Context, activeOnly bool) ([]*model.GalleryPhoto, error)
	GetPhoto(ctx context.Context, id int) (*model.GalleryPhoto, error)
	SavePhoto(ctx context.Context, photo *model.GalleryPhoto) (*model.GalleryPhoto, error)
	DeletePhoto(ctx context.Context, id int) error

	ListSiteImages(ctx context.Context) ([]*model.SiteImage, error)
	GetSiteImage(ctx context.Context, id int) (*model.SiteImage, error)
	SiteImagePaths(ctx context.Context) (map[string]string, error)
	UpdateSiteImage(ctx context.Context, id int, path, description string) (*model.SiteImage, error)
}

type ContentServiceImpl struct {
	banners    repository.BannerRepository
	sections   repository.PageSectionRepository
	home       repository.HomeContentRepository
	about      repository.AboutSectionRepository
	gallery    repository.GalleryRepository
	siteImages repository.SiteImageRepository
}

func NewContentService(
	banners repository.BannerRepository,
	sections repository.PageSectionRepository,
	home repository.HomeContentRepository,
	about repository.AboutSectionRepository,
	gallery repository.GalleryRepository,
	siteImages repository.SiteImageRepository,
) ContentService {
	return &ContentServiceImpl{
		banners:    banners,
		sections:   sections,
		home:       home,
		about:      about,
		gallery:    gallery,
		siteImages: siteImages,
	}
}

func (s *ContentServiceImpl) Page(ctx context.Context, pageName string) (*PageContent, error) {
	banner, err := s.banners.FindByPage(ctx, pageName)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	sections, err := s.sections.ListByPage(ctx, pageName)
	if err != nil {
		return nil, err
	}
	return &PageContent{Banner: banner, Sections: sections}, nil
}

func (s *ContentServiceImpl) ListBanners(ctx context.Context) ([]*model.Banner, error) {
	return s.banners.List(ctx)
}

func (s *ContentServiceImpl) GetBanner(ctx context.Context, id int) (*model.Banner, error) {
	return s.banners.FindByID(ctx, id)
}

// SaveBanner only edits; banners are seeded per page.
func (s *ContentServiceImpl) SaveBanner(ctx context.Context, banner *model.Banner) (*model.Banner, error) {
	if err := banner.Validate(); err != nil {
		return nil, err
	}
	return s.banners.Update(ctx, banner)
}

func (s *ContentServiceImpl) ListSections(ctx context.Context) ([]*model.PageSection, error) {
	return s.sections.List(ctx)
}

func (s *ContentServiceImpl) GetSection(ctx context.Context, id int) (*model.PageSection, error) {
	return s.sections.FindByID(ctx, id)
}

func (s *ContentServiceImpl) SaveSection(ctx context.Context, section *model.PageSection) (*model.PageSection, error) {
	if err := section.Validate(); err != nil {
		return nil, err
	}
	return s.sections.Save(ctx, section)
}

func (s *ContentServiceImpl) DeleteSection(ctx context.Context, id int) error {
	return s.sections.Delete(ctx, id)
}

func (s *ContentServiceImpl) ListHomeContents(ctx context.Context, activeOnly bool) ([]*model.HomeContent, error) {
	return s.home.List(ctx, activeOnly)
}

func (s *ContentServiceImpl) GetHomeContent(ctx context.Context, id int) (*model.HomeContent, error) {
	return s.home.FindByID(ctx, id)
}

func (s *ContentServiceImpl) SaveHomeContent(ctx context.Context, content *model.HomeContent) (*model.HomeContent, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}
	if content.ID == 0 {
		return s.home.Create(ctx, content)
	}
	return s.home.Update(ctx, content)
}

func (s *ContentServiceImpl) DeleteHomeContent(ctx context.Context, id int) error {
	return s.home.Delete(ctx, id)
}

func (s *ContentServiceImpl) ListAboutSections(ctx context.Context, activeOnly bool, lang string) ([]*model.AboutSection, error) {
	if lang != "" {
		lang = model.NormalizeLang(lang)
	}
	return s.about.List(ctx, activeOnly, lang)
}

func (s *ContentServiceImpl) OverviewSections(ctx context.Context, lang string) ([]*model.AboutSection, error) {
	all, err := s.about.List(ctx, true, model.NormalizeLang(lang))
	if err != nil {
		return nil, err
	}
	overview := make([]*model.AboutSection, 0, len(model.OverviewSectionTypes))
	for _, sec := range all {
		for _, typ := range model.OverviewSectionTypes {
			if strings.EqualFold(sec.SectionType, typ) {
				overview = append(overview, sec)
				break
			}
		}
	}
	return overview, nil
}

func (s *ContentServiceImpl) GetAboutSection(ctx context.Context, id int) (*model.AboutSection, error) {
	return s.about.FindByID(ctx, id)
}

func (s *ContentServiceImpl) SaveAboutSection(ctx context.Context, section *model.AboutSection) (*model.AboutSection, error) {
	if err := section.Validate(); err != nil {
		return nil, err
	}
	if section.ID == 0 {
		return s.about.Create(ctx, section)
	}
	return s.about.Update(ctx, section)
}

func (s *ContentServiceImpl) DeleteAboutSection(ctx context.Context, id int) error {
	return s.about.Delete(ctx, id)
}

func (s *ContentServiceImpl) ListPhotos(ctx context.Context, activeOnly bool) ([]*model.GalleryPhoto, error) {
	return s.gallery.List(ctx, activeOnly)
}

func (s *ContentServiceImpl) GetPhoto(ctx context.Context, id int) (*model.GalleryPhoto, error) {
	return s.gallery.FindByID(ctx, id)
}

func (s *ContentServiceImpl) SavePhoto(ctx context.Context, photo *model.GalleryPhoto) (*model.GalleryPhoto, error) {
	if err := photo.Validate(); err != nil {
		return nil, err
	}
	if photo.ID == 0 {
		return s.gallery.Create(ctx, photo)
	}
	return s.gallery.Update(ctx, photo)
}

func (s *ContentServiceImpl) DeletePhoto(ctx context.Context, id int) error {
	return s.gallery.Delete(ctx, id)
}

func (s *ContentServiceImpl) ListSiteImages(ctx context.Context) ([]*model.SiteImage, error) {
	return s.siteImages.List(ctx)
}

func (s *ContentServiceImpl) GetSiteImage(ctx context.Context, id int) (*model.SiteImage, error) {
	return s.siteImages.FindByID(ctx, id)
}

func (s *ContentServiceImpl) SiteImagePaths(ctx context.Context) (map[string]string, error) {
	return s.siteImages.Paths(ctx)
}

func (s *ContentServiceImpl) UpdateSiteImage(ctx context.Context, id int, path, description string) (*model.SiteImage, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, apperrors.NewValidationError("image", "이미지 파일을 선택해주세요.")
	}
	return s.siteImages.UpdatePath(ctx, id, path, strings.TrimSpace(description))
}
