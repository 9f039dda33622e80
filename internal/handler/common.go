package handler

import (
	"errors"
	"net/http"
	"time"

	"blackeagles/internal/middleware"
	"blackeagles/internal/model"
	"blackeagles/internal/session"
	apperrors "blackeagles/pkg/app_errors"
	"blackeagles/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

type idUri struct {
	ID int `uri:"id" binding:"required,min=1"`
}

// Pages renders HTML with the data every layout needs and carries flashes
// across redirects.
type Pages struct {
	flasher *session.Flasher
	now     func() time.Time
}

func NewPages(flasher *session.Flasher, now func() time.Time) *Pages {
	if now == nil {
		now = time.Now
	}
	return &Pages{flasher: flasher, now: now}
}

func (p *Pages) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Lang"] = Lang(c)
	data["Path"] = c.Request.URL.Path
	if _, ok := data["Today"]; !ok {
		data["Today"] = p.now()
	}
	data["Admin"] = c.GetBool(middleware.AdminKey)
	data["CSRFField"] = csrf.TemplateField(c.Request)
	data["Flashes"] = p.flasher.Pop(c.Writer, c.Request)
	c.HTML(status, name, data)
}

func (p *Pages) Flash(c *gin.Context, category, message string) {
	p.flasher.Add(c.Writer, c.Request, category, message)
}

// Redirect flashes message (when non-empty) and sends the browser to location.
func (p *Pages) Redirect(c *gin.Context, location, category, message string) {
	if message != "" {
		p.Flash(c, category, message)
	}
	c.Redirect(http.StatusFound, location)
}

// Lang is the ?lang= query value, ko unless en was asked for.
func Lang(c *gin.Context) string {
	return model.NormalizeLang(c.Query("lang"))
}

// withLang keeps the visitor's language on a redirect target.
func withLang(c *gin.Context, path string) string {
	if Lang(c) == model.LangEN {
		return path + "?lang=en"
	}
	return path
}

// paramID parses :id; a bad id is treated like a missing row.
func paramID(c *gin.Context) (int, error) {
	var uri idUri
	if err := c.ShouldBindUri(&uri); err != nil {
		return 0, apperrors.ErrNotFound
	}
	return uri.ID, nil
}

// userMessage picks the text to flash for err. Validation errors speak for
// themselves; everything else falls back to generic.
func userMessage(err error, generic string) string {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) && vErr.Message != "" {
		return vErr.Message
	}
	return generic
}

// handleJSONError is the JSON flavor of the error switch.
func handleJSONError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrNothingToUpdate):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": userMessage(err, "Invalid input"),
		})
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("Not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// handlePageError logs err, flashes the matching message and redirects back.
func (p *Pages) handlePageError(c *gin.Context, err error, operation, back, notFound string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("Not found")
		p.Redirect(c, back, session.FlashError, notFound)
	case errors.Is(err, apperrors.ErrDuplicateSection):
		log.Warn("Duplicate section")
		p.Redirect(c, back, session.FlashError, "이미 존재하는 페이지/섹션 조합입니다.")
	case errors.Is(err, apperrors.ErrNothingToUpdate):
		log.Warn("Nothing to update")
		p.Redirect(c, back, session.FlashInfo, "변경된 내용이 없습니다.")
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		p.Redirect(c, back, session.FlashError, userMessage(err, "입력값을 확인해주세요."))
	default:
		log.Error("Unexpected error")
		p.Redirect(c, back, session.FlashError, "처리 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
	}
}
