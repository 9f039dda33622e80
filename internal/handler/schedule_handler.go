package handler

import (
	"fmt"
	"net/http"
	"strings"

	"blackeagles/internal/dday"
	"blackeagles/internal/model"
	"blackeagles/internal/service"
	"blackeagles/internal/session"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	service service.ScheduleService
	pages   *Pages
}

func NewScheduleHandler(service service.ScheduleService, pages *Pages) *ScheduleHandler {
	return &ScheduleHandler{service: service, pages: pages}
}

func (h *ScheduleHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/schedule", h.ListPage)
	r.GET("/schedule/:id", h.DetailPage)
	r.GET("/schedule.ics", h.Calendar)

	api := r.Group("/api/v1")
	{
		api.GET("schedules", h.GetSchedules)
		api.GET("schedules/stats", h.GetStats)
		api.GET("schedules/:id", h.GetSchedule)
	}
}

func (h *ScheduleHandler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/schedules", h.AdminList)
	admin.GET("/schedules/new", h.NewForm)
	admin.POST("/schedules/new", h.Create)
	admin.GET("/schedules/:id/edit", h.EditForm)
	admin.POST("/schedules/:id/edit", h.Update)
	admin.POST("/schedules/:id/delete", h.Delete)
}

type scheduleQuery struct {
	Filter string `form:"filter"`
	Q      string `form:"q"`
}

// scheduleForm is the admin form. Every field is submitted, so an empty
// optional field clears the stored value.
type scheduleForm struct {
	Title       string `form:"title"`
	Location    string `form:"location"`
	EventDate   string `form:"event_date"`
	Description string `form:"description"`
}

func (f scheduleForm) required() bool {
	return strings.TrimSpace(f.Title) != "" && strings.TrimSpace(f.EventDate) != ""
}

func (f scheduleForm) updateParams() model.UpdateScheduleParams {
	return model.UpdateScheduleParams{
		Title:       &f.Title,
		Location:    &f.Location,
		EventDate:   &f.EventDate,
		Description: &f.Description,
	}
}

// Public pages

func (h *ScheduleHandler) ListPage(c *gin.Context) {
	schedules, err := h.service.List(c, model.FilterAll)
	if err != nil {
		h.pages.handlePageError(c, err, "ScheduleListPage", withLang(c, "/"), "")
		return
	}
	h.pages.HTML(c, http.StatusOK, "public/schedule", gin.H{
		"Schedules": schedules,
		"Today":     h.service.Today(),
	})
}

func (h *ScheduleHandler) DetailPage(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		var s *model.ScheduleEntry
		if s, err = h.service.Get(c, id); err == nil {
			h.pages.HTML(c, http.StatusOK, "public/schedule_detail", gin.H{
				"Schedule": s,
			})
			return
		}
	}
	h.pages.handlePageError(c, err, "ScheduleDetailPage", withLang(c, "/schedule"), "일정을 찾을 수 없습니다.")
}

// Calendar serves every entry as an all-day event.
func (h *ScheduleHandler) Calendar(c *gin.Context) {
	schedules, err := h.service.List(c, model.FilterAll)
	if err != nil {
		handleJSONError(c, err, "Calendar")
		return
	}

	c.Header("Content-Disposition", `inline; filename="blackeagles-schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(BuildCalendar(schedules).Serialize()))
}

// BuildCalendar renders schedules as an iCalendar feed with stable UIDs.
func BuildCalendar(schedules []*model.ScheduleEntry) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Virtual Black Eagles//Flight Schedule//KO")
	cal.SetXWRCalName("Virtual Black Eagles")
	cal.SetXWRTimezone("Asia/Seoul")

	for _, s := range schedules {
		date, err := s.Date()
		if err != nil {
			continue
		}
		event := cal.AddEvent(scheduleUID(s.ID))
		event.SetDtStampTime(s.UpdatedAt.UTC())
		event.SetCreatedTime(s.CreatedAt.UTC())
		event.SetModifiedAt(s.UpdatedAt.UTC())
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(s.Title)
		if s.Location != "" {
			event.SetLocation(s.Location)
		}
		if s.Description != "" {
			event.SetDescription(s.Description)
		}
	}
	return cal
}

func scheduleUID(id int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("blackeagles/schedule/%d", id))).String()
}

// JSON API

func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	var q scheduleQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	var (
		schedules []*model.ScheduleEntry
		err       error
	)
	if strings.TrimSpace(q.Q) != "" {
		schedules, err = h.service.Search(c, q.Q)
	} else {
		schedules, err = h.service.List(c, model.ParseScheduleFilter(q.Filter))
	}
	if err != nil {
		handleJSONError(c, err, "GetSchedules")
		return
	}

	today := h.service.Today()
	out := make([]gin.H, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, gin.H{
			"id":          s.ID,
			"title":       s.Title,
			"location":    s.Location,
			"event_date":  s.EventDate,
			"description": s.Description,
			"d_day":       dday.FormatISO(s.EventDate, today),
			"created_at":  s.CreatedAt,
			"updated_at":  s.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	var uri idUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	s, err := h.service.Get(c, uri.ID)
	if err != nil {
		handleJSONError(c, err, "GetSchedule")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *ScheduleHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c)
	if err != nil {
		handleJSONError(c, err, "GetStats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Admin

func (h *ScheduleHandler) AdminList(c *gin.Context) {
	schedules, err := h.service.List(c, model.FilterAll)
	if err != nil {
		h.pages.handlePageError(c, err, "AdminSchedules", "/admin", "")
		return
	}
	h.pages.HTML(c, http.StatusOK, "admin/schedules", gin.H{
		"Schedules": schedules,
		"Today":     h.service.Today(),
	})
}

func (h *ScheduleHandler) NewForm(c *gin.Context) {
	h.pages.HTML(c, http.StatusOK, "admin/schedule_form", gin.H{
		"Schedule": &model.ScheduleEntry{},
		"Action":   "/admin/schedules/new",
	})
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var form scheduleForm
	if err := c.ShouldBind(&form); err != nil || !form.required() {
		h.pages.Redirect(c, "/admin/schedules/new", session.FlashError, "제목과 날짜를 모두 입력해주세요.")
		return
	}

	_, err := h.service.Create(c, model.CreateScheduleParams{
		Title:       form.Title,
		Location:    form.Location,
		EventDate:   form.EventDate,
		Description: form.Description,
	})
	if err != nil {
		h.pages.handlePageError(c, err, "CreateSchedule", "/admin/schedules/new", "")
		return
	}
	h.pages.Redirect(c, "/admin/schedules", session.FlashSuccess, "일정이 추가되었습니다.")
}

func (h *ScheduleHandler) EditForm(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		var s *model.ScheduleEntry
		if s, err = h.service.Get(c, id); err == nil {
			h.pages.HTML(c, http.StatusOK, "admin/schedule_form", gin.H{
				"Schedule": s,
				"Action":   fmt.Sprintf("/admin/schedules/%d/edit", s.ID),
			})
			return
		}
	}
	h.pages.handlePageError(c, err, "EditScheduleForm", "/admin/schedules", "일정을 찾을 수 없습니다.")
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.pages.handlePageError(c, err, "UpdateSchedule", "/admin/schedules", "일정을 찾을 수 없습니다.")
		return
	}
	back := fmt.Sprintf("/admin/schedules/%d/edit", id)

	var form scheduleForm
	if err := c.ShouldBind(&form); err != nil || !form.required() {
		h.pages.Redirect(c, back, session.FlashError, "제목과 날짜를 모두 입력해주세요.")
		return
	}

	if _, err := h.service.Update(c, id, form.updateParams()); err != nil {
		h.pages.handlePageError(c, err, "UpdateSchedule", back, "일정을 찾을 수 없습니다.")
		return
	}
	h.pages.Redirect(c, "/admin/schedules", session.FlashSuccess, "일정이 수정되었습니다.")
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		err = h.service.Delete(c, id)
	}
	if err != nil {
		h.pages.handlePageError(c, err, "DeleteSchedule", "/admin/schedules", "일정을 찾을 수 없습니다.")
		return
	}
	h.pages.Redirect(c, "/admin/schedules", session.FlashSuccess, "일정이 삭제되었습니다.")
}
