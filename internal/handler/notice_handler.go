package handler

import (
	"fmt"
	"net/http"

	"blackeagles/internal/model"
	"blackeagles/internal/service"
	"blackeagles/internal/session"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	service service.NoticeService
	pages   *Pages
}

func NewNoticeHandler(service service.NoticeService, pages *Pages) *NoticeHandler {
	return &NoticeHandler{service: service, pages: pages}
}

func (h *NoticeHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/notice", h.ListPage)
	r.GET("/notice/:id", h.DetailPage)
}

func (h *NoticeHandler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/notices", h.AdminList)
	admin.GET("/notices/new", h.NewForm)
	admin.POST("/notices/new", h.Create)
	admin.GET("/notices/:id/edit", h.EditForm)
	admin.POST("/notices/:id/edit", h.Update)
	admin.POST("/notices/:id/delete", h.Delete)
}

type noticeForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

func (f noticeForm) params() model.NoticeParams {
	return model.NoticeParams{Title: f.Title, Content: f.Content, Author: "admin"}
}

func (h *NoticeHandler) ListPage(c *gin.Context) {
	notices, err := h.service.List(c)
	if err != nil {
		h.pages.handlePageError(c, err, "NoticeListPage", withLang(c, "/"), "")
		return
	}
	h.pages.HTML(c, http.StatusOK, "public/notice", gin.H{
		"Notices": notices,
	})
}

func (h *NoticeHandler) DetailPage(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		var n *model.Notice
		if n, err = h.service.Get(c, id); err == nil {
			h.pages.HTML(c, http.StatusOK, "public/notice_detail", gin.H{
				"Notice": n,
			})
			return
		}
	}
	h.pages.handlePageError(c, err, "NoticeDetailPage", withLang(c, "/notice"), "공지사항을 찾을 수 없습니다.")
}

func (h *NoticeHandler) AdminList(c *gin.Context) {
	notices, err := h.service.List(c)
	if err != nil {
		h.pages.handlePageError(c, err, "AdminNotices", "/admin", "")
		return
	}
	h.pages.HTML(c, http.StatusOK, "admin/notices", gin.H{
		"Notices": notices,
	})
}

func (h *NoticeHandler) NewForm(c *gin.Context) {
	h.pages.HTML(c, http.StatusOK, "admin/notice_form", gin.H{
		"Notice": &model.Notice{},
		"Action": "/admin/notices/new",
	})
}

func (h *NoticeHandler) Create(c *gin.Context) {
	var form noticeForm
	_ = c.ShouldBind(&form)

	if _, err := h.service.Create(c, form.params()); err != nil {
		h.pages.handlePageError(c, err, "CreateNotice", "/admin/notices/new", "")
		return
	}
	h.pages.Redirect(c, "/admin/notices", session.FlashSuccess, "공지사항이 작성되었습니다.")
}

func (h *NoticeHandler) EditForm(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		var n *model.Notice
		if n, err = h.service.Get(c, id); err == nil {
			h.pages.HTML(c, http.StatusOK, "admin/notice_form", gin.H{
				"Notice": n,
				"Action": fmt.Sprintf("/admin/notices/%d/edit", n.ID),
			})
			return
		}
	}
	h.pages.handlePageError(c, err, "EditNoticeForm", "/admin/notices", "공지사항을 찾을 수 없습니다.")
}

func (h *NoticeHandler) Update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.pages.handlePageError(c, err, "UpdateNotice", "/admin/notices", "공지사항을 찾을 수 없습니다.")
		return
	}

	var form noticeForm
	_ = c.ShouldBind(&form)

	if _, err := h.service.Update(c, id, form.params()); err != nil {
		h.pages.handlePageError(c, err, "UpdateNotice", fmt.Sprintf("/admin/notices/%d/edit", id), "공지사항을 찾을 수 없습니다.")
		return
	}
	h.pages.Redirect(c, "/admin/notices", session.FlashSuccess, "공지사항이 수정되었습니다.")
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		err = h.service.Delete(c, id)
	}
	if err != nil {
		h.pages.handlePageError(c, err, "DeleteNotice", "/admin/notices", "공지사항을 찾을 수 없습니다.")
		return
	}
	h.pages.Redirect(c, "/admin/notices", session.FlashSuccess, "공지사항이 삭제되었습니다.")
}
