package handler

import (
	"net/http"

	"blackeagles/internal/model"
	"blackeagles/internal/service"
	"blackeagles/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the content-driven public pages.
type PageHandler struct {
	content service.ContentService
	roster  service.RosterService
	pages   *Pages
}

func NewPageHandler(content service.ContentService, roster service.RosterService, pages *Pages) *PageHandler {
	return &PageHandler{content: content, roster: roster, pages: pages}
}

func (h *PageHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/contact", h.Contact)
	r.GET("/donate", h.Donate)
	r.GET("/gallery", h.Gallery)
}

// base loads what every public page shows: banner, sections and site images.
// Failures degrade to an empty page instead of an error.
func (h *PageHandler) base(c *gin.Context, pageName string) gin.H {
	log := logger.WithComponent("handler").With(zap.String("page", pageName))

	data := gin.H{"Page": &service.PageContent{}, "Images": map[string]string{}}
	if page, err := h.content.Page(c, pageName); err != nil {
		log.Error("load page content failed", zap.Error(err))
	} else {
		data["Page"] = page
	}
	if images, err := h.content.SiteImagePaths(c); err != nil {
		log.Error("load site images failed", zap.Error(err))
	} else {
		data["Images"] = images
	}
	return data
}

func (h *PageHandler) Home(c *gin.Context) {
	data := h.base(c, "home")

	contents, err := h.content.ListHomeContents(c, true)
	if err != nil {
		logger.WithComponent("handler").Error("load home contents failed", zap.Error(err))
	}
	data["Contents"] = contents
	h.pages.HTML(c, http.StatusOK, "public/index", data)
}

func (h *PageHandler) About(c *gin.Context) {
	lang := Lang(c)
	data := h.base(c, "about")
	log := logger.WithComponent("handler").With(zap.String("page", "about"))

	pilots, err := h.roster.ListPilots(c, true)
	if err != nil {
		log.Error("load pilots failed", zap.Error(err))
	}
	crew, err := h.roster.ListCrew(c, true)
	if err != nil {
		log.Error("load crew failed", zap.Error(err))
	}
	candidates, err := h.roster.ListCandidates(c, true)
	if err != nil {
		log.Error("load candidates failed", zap.Error(err))
	}
	commanders, err := h.roster.ListCommanders(c, true, lang)
	if err != nil {
		log.Error("load commanders failed", zap.Error(err))
	}
	sections, err := h.content.ListAboutSections(c, true, lang)
	if err != nil {
		log.Error("load about sections failed", zap.Error(err))
	}
	overview, err := h.content.OverviewSections(c, lang)
	if err != nil {
		log.Error("load overview failed", zap.Error(err))
	}

	data["Pilots"] = pilots
	data["Crew"] = crew
	data["Candidates"] = candidates
	data["Commanders"] = commanders
	data["Overview"] = overview
	data["Sections"] = sectionsByType(sections)
	h.pages.HTML(c, http.StatusOK, "public/about", data)
}

func (h *PageHandler) Contact(c *gin.Context) {
	h.pages.HTML(c, http.StatusOK, "public/contact", h.base(c, "contact"))
}

func (h *PageHandler) Donate(c *gin.Context) {
	h.pages.HTML(c, http.StatusOK, "public/donate", h.base(c, "donate"))
}

func (h *PageHandler) Gallery(c *gin.Context) {
	data := h.base(c, "gallery")

	photos, err := h.content.ListPhotos(c, true)
	if err != nil {
		logger.WithComponent("handler").Error("load gallery failed", zap.Error(err))
	}
	data["Photos"] = photos
	h.pages.HTML(c, http.StatusOK, "public/gallery", data)
}

// sectionsByType keeps the first section of each type, in display order.
func sectionsByType(sections []*model.AboutSection) map[string]*model.AboutSection {
	out := make(map[string]*model.AboutSection, len(sections))
	for _, s := range sections {
		if _, ok := out[s.SectionType]; !ok {
			out[s.SectionType] = s
		}
	}
	return out
}
