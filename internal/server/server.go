// Package server assembles repositories, services and handlers into a gin engine.
package server

import (
	"time"

	"blackeagles/config"
	"blackeagles/internal/cache"
	"blackeagles/internal/handler"
	"blackeagles/internal/middleware"
	"blackeagles/internal/queue"
	"blackeagles/internal/repository"
	"blackeagles/internal/service"
	"blackeagles/internal/session"
	"blackeagles/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// UploadURLPrefix is where files in the upload dir are served.
const UploadURLPrefix = "/uploads"

type Services struct {
	Schedules service.ScheduleService
	Notices   service.NoticeService
	Inquiries service.InquiryService
	Auth      service.AuthService
	Roster    service.RosterService
	Content   service.ContentService
}

// NewServices wires every Postgres repository into its service.
// rdb and notifications may be nil.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, sessions session.Store, notifications queue.NotificationQueue) (*Services, error) {
	auth, err := service.NewAuthService(cfg.Admin, sessions)
	if err != nil {
		return nil, err
	}

	siteImages := repository.NewSiteImageRepository(pool)
	if rdb != nil {
		siteImages = cache.NewCachedSiteImageRepository(siteImages, rdb, cache.DefaultSiteImageTTL)
	}

	return &Services{
		Schedules: service.NewScheduleService(repository.NewScheduleRepository(pool), cfg.Server.Location()),
		Notices:   service.NewNoticeService(repository.NewNoticeRepository(pool)),
		Inquiries: service.NewInquiryService(repository.NewInquiryRepository(pool), notifications),
		Auth:      auth,
		Roster: service.NewRosterService(
			repository.NewPilotRepository(pool),
			repository.NewCrewRepository(pool),
			repository.NewCandidateRepository(pool),
			repository.NewCommanderRepository(pool),
		),
		Content: service.NewContentService(
			repository.NewBannerRepository(pool),
			repository.NewPageSectionRepository(pool),
			repository.NewHomeContentRepository(pool),
			repository.NewAboutSectionRepository(pool),
			repository.NewGalleryRepository(pool),
			siteImages,
		),
	}, nil
}

// NewRouter registers public, JSON and admin routes. The admin group is
// gated explicitly by RequireAdmin with the auth service as guard.
func NewRouter(cfg *config.Config, svc *Services) (*gin.Engine, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	loc := cfg.Server.Location()
	flasher := session.NewFlasher(cfg.Server.Key("flash-hash"), cfg.Server.Key("flash-block"), cfg.Server.SecureCookies)
	pages := handler.NewPages(flasher, func() time.Time { return time.Now().In(loc) })
	uploads := handler.NewUploader(cfg.Server.UploadDir, UploadURLPrefix)

	r := gin.New()
	r.HTMLRender = renderer
	r.MaxMultipartMemory = 16 << 20
	r.Use(gin.Recovery(), middleware.RequestLogger())
	if cfg.Server.CSRF {
		r.Use(middleware.CSRF(cfg.Server.Key("csrf"), cfg.Server.SecureCookies))
	}

	r.Static("/static", cfg.Server.StaticDir)
	r.Static(UploadURLPrefix, cfg.Server.UploadDir)

	scheduleHandler := handler.NewScheduleHandler(svc.Schedules, pages)
	noticeHandler := handler.NewNoticeHandler(svc.Notices, pages)
	inquiryHandler := handler.NewInquiryHandler(svc.Inquiries, pages)
	pageHandler := handler.NewPageHandler(svc.Content, svc.Roster, pages)
	authHandler := handler.NewAuthHandler(svc.Auth, pages, handler.CookieOptions{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Server.SecureCookies,
	})
	contentHandler := handler.NewAdminContentHandler(svc.Content, svc.Roster, pages, uploads)

	pageHandler.RegisterRoutes(r)
	scheduleHandler.RegisterRoutes(r)
	noticeHandler.RegisterRoutes(r)
	inquiryHandler.RegisterRoutes(r)
	authHandler.RegisterRoutes(r)

	admin := r.Group("/admin", middleware.RequireAdmin(svc.Auth.Authorized, flasher, cfg.Session.CookieName))
	inquiryHandler.RegisterAdminRoutes(admin)
	noticeHandler.RegisterAdminRoutes(admin)
	scheduleHandler.RegisterAdminRoutes(admin)
	contentHandler.RegisterAdminRoutes(admin)

	return r, nil
}
