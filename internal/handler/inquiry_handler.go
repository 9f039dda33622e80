package handler

import (
	"errors"
	"net/http"

	"blackeagles/internal/model"
	"blackeagles/internal/service"
	"blackeagles/internal/session"
	apperrors "blackeagles/pkg/app_errors"
	"blackeagles/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InquiryHandler struct {
	service service.InquiryService
	pages   *Pages
}

func NewInquiryHandler(service service.InquiryService, pages *Pages) *InquiryHandler {
	return &InquiryHandler{service: service, pages: pages}
}

func (h *InquiryHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/send_mail", h.SendMail)
	r.POST("/send_donate", h.SendDonate)
}

func (h *InquiryHandler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("", h.Dashboard)
	admin.GET("/", h.Dashboard)
	admin.GET("/messages", h.List)
	admin.GET("/messages/:id", h.Detail)
	admin.POST("/messages/:id/delete", h.Delete)
}

type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

type donateForm struct {
	Name    string `form:"name"`
	Amount  string `form:"amount"`
	Message string `form:"message"`
}

func (h *InquiryHandler) SendMail(c *gin.Context) {
	var form contactForm
	_ = c.ShouldBind(&form)

	h.submit(c, "SendMail", withLang(c, "/contact"), model.SubmitInquiryParams{
		Type:    model.InquiryContact,
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	},
		"문의가 성공적으로 접수되었습니다! 관리자가 확인 후 답변드리겠습니다.",
		"문의 접수에 실패했습니다. 잠시 후 다시 시도해주세요.",
	)
}

// SendDonate stores the pledged amount in the email column.
func (h *InquiryHandler) SendDonate(c *gin.Context) {
	var form donateForm
	_ = c.ShouldBind(&form)

	h.submit(c, "SendDonate", withLang(c, "/donate"), model.SubmitInquiryParams{
		Type:    model.InquiryDonate,
		Name:    form.Name,
		Email:   form.Amount,
		Message: form.Message,
	},
		"후원 문의가 성공적으로 전송되었습니다! 빠른 시일 내에 연락드리겠습니다.",
		"전송 중 오류가 발생했습니다. 다시 시도해 주세요.",
	)
}

func (h *InquiryHandler) submit(c *gin.Context, operation, back string, params model.SubmitInquiryParams, ok, failed string) {
	_, err := h.service.Submit(c, params)
	if err == nil {
		h.pages.Redirect(c, back, session.FlashSuccess, ok)
		return
	}

	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	if errors.Is(err, apperrors.ErrInvalidInput) {
		log.Warn("Invalid inquiry")
		h.pages.Redirect(c, back, session.FlashError, userMessage(err, failed))
		return
	}
	log.Error("Inquiry submission failed")
	h.pages.Redirect(c, back, session.FlashError, failed)
}

func (h *InquiryHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.service.Dashboard(c)
	if err != nil {
		logger.WithComponent("handler").Error("Dashboard failed", zap.Error(err))
		dashboard = &service.Dashboard{}
	}
	h.pages.HTML(c, http.StatusOK, "admin/dashboard", gin.H{
		"UnreadCount": dashboard.UnreadCount,
		"Recent":      dashboard.Recent,
	})
}

func (h *InquiryHandler) List(c *gin.Context) {
	inquiryType := model.InquiryType(c.Query("type"))
	messages, err := h.service.List(c, inquiryType)
	if err != nil {
		h.pages.handlePageError(c, err, "ListMessages", "/admin", "")
		return
	}
	if !inquiryType.IsValid() {
		inquiryType = ""
	}
	h.pages.HTML(c, http.StatusOK, "admin/messages", gin.H{
		"Messages": messages,
		"Type":     string(inquiryType),
	})
}

func (h *InquiryHandler) Detail(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		var msg *model.Inquiry
		if msg, err = h.service.Open(c, id); err == nil {
			h.pages.HTML(c, http.StatusOK, "admin/message_detail", gin.H{
				"Message": msg,
			})
			return
		}
	}
	h.pages.handlePageError(c, err, "MessageDetail", "/admin/messages", "문의를 찾을 수 없습니다.")
}

func (h *InquiryHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		err = h.service.Delete(c, id)
	}
	if err != nil {
		h.pages.handlePageError(c, err, "DeleteMessage", "/admin/messages", "문의를 찾을 수 없습니다.")
		return
	}
	h.pages.Redirect(c, "/admin/messages", session.FlashSuccess, "문의가 삭제되었습니다.")
}
