package repository

import (
	"context"
	"time"

	"blackeagles/internal/model"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BannerRepository interface {
	List(ctx context.Context) ([]*model.Banner, error)
	FindByID(ctx context.Context, id int) (*model.Banner, error)
	FindByPage(ctx context.Context, pageName string) (*model.Banner, error)
	Update(ctx context.Context, banner *model.Banner) (*model.Banner, error)
}

type PageSectionRepository interface {
	List(ctx context.Context) ([]*model.PageSection, error)
	ListByPage(ctx context.Context, pageName string) ([]*model.PageSection, error)
	FindByID(ctx context.Context, id int) (*model.PageSection, error)
	// Save inserts when section.ID is zero, otherwise updates.
	Save(ctx context.Context, section *model.PageSection) (*model.PageSection, error)
	Delete(ctx context.Context, id int) error
}

type HomeContentRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.HomeContent, error)
	FindByID(ctx context.Context, id int) (*model.HomeContent, error)
	Create(ctx context.Context, content *model.HomeContent) (*model.HomeContent, error)
	Update(ctx context.Context, content *model.HomeContent) (*model.HomeContent, error)
	Delete(ctx context.Context, id int) error
}

type AboutSectionRepository interface {
	List(ctx context.Context, activeOnly bool, lang string) ([]*model.AboutSection, error)
	FindByID(ctx context.Context, id int) (*model.AboutSection, error)
	Create(ctx context.Context, section *model.AboutSection) (*model.AboutSection, error)
	Update(ctx context.Context, section *model.AboutSection) (*model.AboutSection, error)
	Delete(ctx context.Context, id int) error
}

type GalleryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.GalleryPhoto, error)
	FindByID(ctx context.Context, id int) (*model.GalleryPhoto, error)
	Create(ctx context.Context, photo *model.GalleryPhoto) (*model.GalleryPhoto, error)
	Update(ctx context.Context, photo *model.GalleryPhoto) (*model.GalleryPhoto, error)
	Delete(ctx context.Context, id int) error
}

type SiteImageRepository interface {
	List(ctx context.Context) ([]*model.SiteImage, error)
	FindByID(ctx context.Context, id int) (*model.SiteImage, error)
	// Paths maps image_key to image_path.
	Paths(ctx context.Context) (map[string]string, error)
	UpdatePath(ctx context.Context, id int, path, description string) (*model.SiteImage, error)
}

// Banners

const bannerColumns = `id, page_name, background_image, title, subtitle, description, button_text, button_link,
	title_font, title_color, subtitle_color, description_color, vertical_position, padding_top, updated_at`

type BannerRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBannerRepository(pool *pgxpool.Pool) BannerRepository {
	return &BannerRepositoryImpl{pool: pool}
}

func (r *BannerRepositoryImpl) List(ctx context.Context) ([]*model.Banner, error) {
	return collect[model.Banner](ctx, r.pool, "list banners",
		`SELECT `+bannerColumns+` FROM banner_settings ORDER BY page_name`)
}

func (r *BannerRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Banner, error) {
	return collectOne[model.Banner](ctx, r.pool, apperrors.ErrBannerNotFound, "find banner",
		`SELECT `+bannerColumns+` FROM banner_settings WHERE id = $1`, id)
}

func (r *BannerRepositoryImpl) FindByPage(ctx context.Context, pageName string) (*model.Banner, error) {
	return collectOne[model.Banner](ctx, r.pool, apperrors.ErrBannerNotFound, "find banner",
		`SELECT `+bannerColumns+` FROM banner_settings WHERE page_name = $1`, pageName)
}

func (r *BannerRepositoryImpl) Update(ctx context.Context, b *model.Banner) (*model.Banner, error) {
	query := `
		UPDATE banner_settings
		SET background_image = $1, title = $2, subtitle = $3, description = $4, button_text = $5,
			button_link = $6, title_font = $7, title_color = $8, subtitle_color = $9,
			description_color = $10, vertical_position = $11, padding_top = $12, updated_at = $13
		WHERE id = $14
		RETURNING ` + bannerColumns

	return collectOne[model.Banner](ctx, r.pool, apperrors.ErrBannerNotFound, "update banner", query,
		b.BackgroundImage, b.Title, b.Subtitle, b.Description, b.ButtonText, b.ButtonLink,
		b.TitleFont, b.TitleColor, b.SubtitleColor, b.DescriptionColor, b.VerticalPosition,
		b.PaddingTop, time.Now().UTC(), b.ID)
}

// Page sections

const pageSectionColumns = `id, page_name, section_id, section_type, title, content, image_url, link_url, link_text,
	order_num, is_active, updated_at`

type PageSectionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPageSectionRepository(pool *pgxpool.Pool) PageSectionRepository {
	return &PageSectionRepositoryImpl{pool: pool}
}

func (r *PageSectionRepositoryImpl) List(ctx context.Context) ([]*model.PageSection, error) {
	return collect[model.PageSection](ctx, r.pool, "list page sections",
		`SELECT `+pageSectionColumns+` FROM page_sections ORDER BY page_name, order_num, id`)
}

func (r *PageSectionRepositoryImpl) ListByPage(ctx context.Context, pageName string) ([]*model.PageSection, error) {
	return collect[model.PageSection](ctx, r.pool, "list page sections",
		`SELECT `+pageSectionColumns+` FROM page_sections WHERE page_name = $1 AND is_active = TRUE ORDER BY order_num, id`,
		pageName)
}

func (r *PageSectionRepositoryImpl) FindByID(ctx context.Context, id int) (*model.PageSection, error) {
	return collectOne[model.PageSection](ctx, r.pool, apperrors.ErrPageSectionNotFound, "find page section",
		`SELECT `+pageSectionColumns+` FROM page_sections WHERE id = $1`, id)
}

func (r *PageSectionRepositoryImpl) Save(ctx context.Context, s *model.PageSection) (*model.PageSection, error) {
	var (
		saved *model.PageSection
		err   error
	)
	if s.ID == 0 {
		query := `
			INSERT INTO page_sections (page_name, section_id, section_type, title, content, image_url, link_url, link_text, order_num, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING ` + pageSectionColumns
		saved, err = collectOne[model.PageSection](ctx, r.pool, apperrors.ErrPageSectionNotFound, "create page section", query,
			s.PageName, s.SectionID, s.SectionType, s.Title, s.Content, s.ImageURL, s.LinkURL, s.LinkText, s.OrderNum, s.IsActive)
	} else {
		query := `
			UPDATE page_sections
			SET page_name = $1, section_id = $2, section_type = $3, title = $4, content = $5, image_url = $6,
				link_url = $7, link_text = $8, order_num = $9, is_active = $10, updated_at = $11
			WHERE id = $12
			RETURNING ` + pageSectionColumns
		saved, err = collectOne[model.PageSection](ctx, r.pool, apperrors.ErrPageSectionNotFound, "update page section", query,
			s.PageName, s.SectionID, s.SectionType, s.Title, s.Content, s.ImageURL, s.LinkURL, s.LinkText, s.OrderNum, s.IsActive,
			time.Now().UTC(), s.ID)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateSection
		}
		return nil, err
	}
	return saved, nil
}

func (r *PageSectionRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrPageSectionNotFound, "delete page section",
		`DELETE FROM page_sections WHERE id = $1`, id)
}

// Home contents

const homeContentColumns = `id, content_type, title, content_data, order_num, is_active, created_at, updated_at`

type HomeContentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewHomeContentRepository(pool *pgxpool.Pool) HomeContentRepository {
	return &HomeContentRepositoryImpl{pool: pool}
}

func (r *HomeContentRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*model.HomeContent, error) {
	return collect[model.HomeContent](ctx, r.pool, "list home contents",
		`SELECT `+homeContentColumns+` FROM home_contents`+activeClause(activeOnly)+` ORDER BY order_num, id`)
}

func (r *HomeContentRepositoryImpl) FindByID(ctx context.Context, id int) (*model.HomeContent, error) {
	return collectOne[model.HomeContent](ctx, r.pool, apperrors.ErrHomeContentNotFound, "find home content",
		`SELECT `+homeContentColumns+` FROM home_contents WHERE id = $1`, id)
}

func (r *HomeContentRepositoryImpl) Create(ctx context.Context, h *model.HomeContent) (*model.HomeContent, error) {
	query := `
		INSERT INTO home_contents (content_type, title, content_data, order_num, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + homeContentColumns

	return collectOne[model.HomeContent](ctx, r.pool, apperrors.ErrHomeContentNotFound, "create home content", query,
		h.ContentType, h.Title, h.ContentData, h.OrderNum, h.IsActive)
}

func (r *HomeContentRepositoryImpl) Update(ctx context.Context, h *model.HomeContent) (*model.HomeContent, error) {
	query := `
		UPDATE home_contents
		SET content_type = $1, title = $2, content_data = $3, order_num = $4, is_active = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + homeContentColumns

	return collectOne[model.HomeContent](ctx, r.pool, apperrors.ErrHomeContentNotFound, "update home content", query,
		h.ContentType, h.Title, h.ContentData, h.OrderNum, h.IsActive, time.Now().UTC(), h.ID)
}

func (r *HomeContentRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrHomeContentNotFound, "delete home content",
		`DELETE FROM home_contents WHERE id = $1`, id)
}

// About sections

const aboutSectionColumns = `id, section_type, title, content, image_url, lang, order_num, is_active, created_at, updated_at`

type AboutSectionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAboutSectionRepository(pool *pgxpool.Pool) AboutSectionRepository {
	return &AboutSectionRepositoryImpl{pool: pool}
}

func (r *AboutSectionRepositoryImpl) List(ctx context.Context, activeOnly bool, lang string) ([]*model.AboutSection, error) {
	query := `SELECT ` + aboutSectionColumns + ` FROM about_sections WHERE ($1::boolean = FALSE OR is_active = TRUE) AND ($2::text = '' OR lang = $2) ORDER BY order_num, id`
	return collect[model.AboutSection](ctx, r.pool, "list about sections", query, activeOnly, lang)
}

func (r *AboutSectionRepositoryImpl) FindByID(ctx context.Context, id int) (*model.AboutSection, error) {
	return collectOne[model.AboutSection](ctx, r.pool, apperrors.ErrAboutSectionNotFound, "find about section",
		`SELECT `+aboutSectionColumns+` FROM about_sections WHERE id = $1`, id)
}

func (r *AboutSectionRepositoryImpl) Create(ctx context.Context, a *model.AboutSection) (*model.AboutSection, error) {
	query := `
		INSERT INTO about_sections (section_type, title, content, image_url, lang, order_num, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + aboutSectionColumns

	return collectOne[model.AboutSection](ctx, r.pool, apperrors.ErrAboutSectionNotFound, "create about section", query,
		a.SectionType, a.Title, a.Content, a.ImageURL, a.Lang, a.OrderNum, a.IsActive)
}

func (r *AboutSectionRepositoryImpl) Update(ctx context.Context, a *model.AboutSection) (*model.AboutSection, error) {
	query := `
		UPDATE about_sections
		SET section_type = $1, title = $2, content = $3, image_url = $4, lang = $5, order_num = $6,
			is_active = $7, updated_at = $8
		WHERE id = $9
		RETURNING ` + aboutSectionColumns

	return collectOne[model.AboutSection](ctx, r.pool, apperrors.ErrAboutSectionNotFound, "update about section", query,
		a.SectionType, a.Title, a.Content, a.ImageURL, a.Lang, a.OrderNum, a.IsActive, time.Now().UTC(), a.ID)
}

func (r *AboutSectionRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrAboutSectionNotFound, "delete about section",
		`DELETE FROM about_sections WHERE id = $1`, id)
}

// Gallery

const galleryColumns = `id, title, description, image_url, upload_date, order_num, is_active, created_at, updated_at`

type GalleryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewGalleryRepository(pool *pgxpool.Pool) GalleryRepository {
	return &GalleryRepositoryImpl{pool: pool}
}

func (r *GalleryRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*model.GalleryPhoto, error) {
	return collect[model.GalleryPhoto](ctx, r.pool, "list gallery",
		`SELECT `+galleryColumns+` FROM gallery`+activeClause(activeOnly)+` ORDER BY order_num, upload_date DESC, id`)
}

func (r *GalleryRepositoryImpl) FindByID(ctx context.Context, id int) (*model.GalleryPhoto, error) {
	return collectOne[model.GalleryPhoto](ctx, r.pool, apperrors.ErrPhotoNotFound, "find gallery photo",
		`SELECT `+galleryColumns+` FROM gallery WHERE id = $1`, id)
}

func (r *GalleryRepositoryImpl) Create(ctx context.Context, g *model.GalleryPhoto) (*model.GalleryPhoto, error) {
	query := `
		INSERT INTO gallery (title, description, image_url, order_num, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + galleryColumns

	return collectOne[model.GalleryPhoto](ctx, r.pool, apperrors.ErrPhotoNotFound, "create gallery photo", query,
		g.Title, g.Description, g.ImageURL, g.OrderNum, g.IsActive)
}

func (r *GalleryRepositoryImpl) Update(ctx context.Context, g *model.GalleryPhoto) (*model.GalleryPhoto, error) {
	query := `
		UPDATE gallery
		SET title = $1, description = $2, image_url = $3, order_num = $4, is_active = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + galleryColumns

	return collectOne[model.GalleryPhoto](ctx, r.pool, apperrors.ErrPhotoNotFound, "update gallery photo", query,
		g.Title, g.Description, g.ImageURL, g.OrderNum, g.IsActive, time.Now().UTC(), g.ID)
}

func (r *GalleryRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrPhotoNotFound, "delete gallery photo",
		`DELETE FROM gallery WHERE id = $1`, id)
}

// Site images

const siteImageColumns = `id, image_key, image_name, image_path, description, category, created_at, updated_at`

type SiteImageRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSiteImageRepository(pool *pgxpool.Pool) SiteImageRepository {
	return &SiteImageRepositoryImpl{pool: pool}
}

func (r *SiteImageRepositoryImpl) List(ctx context.Context) ([]*model.SiteImage, error) {
	return collect[model.SiteImage](ctx, r.pool, "list site images",
		`SELECT `+siteImageColumns+` FROM site_images ORDER BY category, image_key`)
}

func (r *SiteImageRepositoryImpl) FindByID(ctx context.Context, id int) (*model.SiteImage, error) {
	return collectOne[model.SiteImage](ctx, r.pool, apperrors.ErrSiteImageNotFound, "find site image",
		`SELECT `+siteImageColumns+` FROM site_images WHERE id = $1`, id)
}

func (r *SiteImageRepositoryImpl) Paths(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT image_key, image_path FROM site_images`)
	if err != nil {
		return nil, apperrors.NewPersistenceError("site image paths", err)
	}
	defer rows.Close()

	paths := make(map[string]string)
	for rows.Next() {
		var key, path string
		if err := rows.Scan(&key, &path); err != nil {
			return nil, apperrors.NewPersistenceError("site image paths", err)
		}
		paths[key] = path
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("site image paths", err)
	}
	return paths, nil
}

func (r *SiteImageRepositoryImpl) UpdatePath(ctx context.Context, id int, path, description string) (*model.SiteImage, error) {
	query := `
		UPDATE site_images
		SET image_path = $1, description = $2, updated_at = $3
		WHERE id = $4
		RETURNING ` + siteImageColumns

	return collectOne[model.SiteImage](ctx, r.pool, apperrors.ErrSiteImageNotFound, "update site image", query,
		path, description, time.Now().UTC(), id)
}
