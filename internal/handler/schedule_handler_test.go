package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blackeagles/internal/handler"
	"blackeagles/internal/model"
	"blackeagles/internal/service/mocks"
	"blackeagles/internal/session"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupScheduleTestRouter(t *testing.T) (*testEnv, *mocks.ScheduleServiceMock) {
	env := newTestEnv(t)
	mockService := mocks.NewScheduleServiceMock(fixedNow)

	h := handler.NewScheduleHandler(mockService, env.pages)
	h.RegisterRoutes(env.router)
	h.RegisterAdminRoutes(env.router.Group("/admin"))
	return env, mockService
}

func sampleSchedules() []*model.ScheduleEntry {
	stamp := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return []*model.ScheduleEntry{
		{ID: 2, Title: "정기 훈련", Location: "청주", EventDate: "2025-01-10", CreatedAt: stamp, UpdatedAt: stamp},
		{ID: 1, Title: "신년 비행", EventDate: "2025-01-01", CreatedAt: stamp, UpdatedAt: stamp},
	}
}

func TestGetSchedules(t *testing.T) {
	t.Run("Success - filter with countdown", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("List", mock.Anything, model.FilterUpcoming).Return(sampleSchedules()[:1], nil).Once()

		w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/schedules?filter=upcoming", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "정기 훈련", body[0]["title"])
		assert.Equal(t, "D-5", body[0]["d_day"])
		mockService.AssertExpectations(t)
	})

	t.Run("Success - unknown filter lists all", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("List", mock.Anything, model.FilterAll).Return(sampleSchedules(), nil).Once()

		w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/schedules?filter=someday", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - keyword searches", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("Search", mock.Anything, "청주").Return(sampleSchedules()[:1], nil).Once()

		w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/schedules?q="+url.QueryEscape("청주"), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrPersistence", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("List", mock.Anything, model.FilterAll).
			Return(nil, apperrors.NewPersistenceError("list schedules", assert.AnError)).Once()

		w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/schedules", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetSchedule(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("Get", mock.Anything, 2).Return(sampleSchedules()[0], nil).Once()

		w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/schedules/2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"event_date":"2025-01-10"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrScheduleNotFound", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("Get", mock.Anything, 99).Return(nil, apperrors.ErrScheduleNotFound).Once()

		w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/schedules/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - invalid id", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)

		w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/schedules/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestGetStats(t *testing.T) {
	env, mockService := setupScheduleTestRouter(t)
	mockService.On("Stats", mock.Anything).Return(&model.ScheduleStats{Total: 3, Upcoming: 2, Past: 1, Week: 1, Month: 1}, nil).Once()

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/schedules/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var stats model.ScheduleStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, model.ScheduleStats{Total: 3, Upcoming: 2, Past: 1, Week: 1, Month: 1}, stats)
	mockService.AssertExpectations(t)
}

func TestCalendar(t *testing.T) {
	env, mockService := setupScheduleTestRouter(t)
	mockService.On("List", mock.Anything, model.FilterAll).Return(sampleSchedules(), nil).Once()

	w := env.do(httptest.NewRequest(http.MethodGet, "/schedule.ics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar"))
	body := w.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "SUMMARY:정기 훈련")
	assert.Contains(t, body, "DTSTART;VALUE=DATE:20250110")
	assert.Contains(t, body, "DTEND;VALUE=DATE:20250111")
	assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))
	mockService.AssertExpectations(t)
}

func TestBuildCalendar_stableUIDs(t *testing.T) {
	first := handler.BuildCalendar(sampleSchedules()).Events()
	second := handler.BuildCalendar(sampleSchedules()).Events()

	require.Len(t, first, 2)
	assert.Equal(t, first[0].Id(), second[0].Id())
	assert.NotEqual(t, first[0].Id(), first[1].Id())
}

func TestSchedulePages(t *testing.T) {
	t.Run("Success - public list", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("List", mock.Anything, model.FilterAll).Return(sampleSchedules(), nil).Once()

		w := env.do(httptest.NewRequest(http.MethodGet, "/schedule", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "정기 훈련")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - detail not found redirects with flash", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("Get", mock.Anything, 9).Return(nil, apperrors.ErrScheduleNotFound).Once()

		w := env.do(httptest.NewRequest(http.MethodGet, "/schedule/9?lang=en", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/schedule?lang=en", w.Header().Get("Location"))
		flashes := env.flashes(t, w)
		require.Len(t, flashes, 1)
		assert.Equal(t, "일정을 찾을 수 없습니다.", flashes[0].Message)
	})
}

func TestAdminCreateSchedule(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("Create", mock.Anything, model.CreateScheduleParams{
			Title: "에어쇼", Location: "사천", EventDate: "2025-02-15",
		}).Return(&model.ScheduleEntry{ID: 3, Title: "에어쇼"}, nil).Once()

		w := env.do(formRequest(http.MethodPost, "/admin/schedules/new", url.Values{
			"title": {"에어쇼"}, "location": {"사천"}, "event_date": {"2025-02-15"},
		}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/schedules", w.Header().Get("Location"))
		flashes := env.flashes(t, w)
		require.Len(t, flashes, 1)
		assert.Equal(t, session.FlashSuccess, flashes[0].Category)
		assert.Equal(t, "일정이 추가되었습니다.", flashes[0].Message)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing date", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)

		w := env.do(formRequest(http.MethodPost, "/admin/schedules/new", url.Values{"title": {"에어쇼"}}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/schedules/new", w.Header().Get("Location"))
		flashes := env.flashes(t, w)
		require.Len(t, flashes, 1)
		assert.Equal(t, "제목과 날짜를 모두 입력해주세요.", flashes[0].Message)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - invalid date flashes validation message", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("event_date", "날짜 형식이 올바르지 않습니다.")).Once()

		w := env.do(formRequest(http.MethodPost, "/admin/schedules/new", url.Values{
			"title": {"에어쇼"}, "event_date": {"2025-13-40"},
		}))

		assert.Equal(t, http.StatusFound, w.Code)
		flashes := env.flashes(t, w)
		require.Len(t, flashes, 1)
		assert.Equal(t, "날짜 형식이 올바르지 않습니다.", flashes[0].Message)
	})
}

func TestAdminUpdateSchedule(t *testing.T) {
	t.Run("Success - empty optional field clears it", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("Update", mock.Anything, 2, mock.MatchedBy(func(p model.UpdateScheduleParams) bool {
			return p.Location != nil && *p.Location == "" && *p.Title == "정기 훈련"
		})).Return(sampleSchedules()[0], nil).Once()

		w := env.do(formRequest(http.MethodPost, "/admin/schedules/2/edit", url.Values{
			"title": {"정기 훈련"}, "location": {""}, "event_date": {"2025-01-10"}, "description": {""},
		}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/schedules", w.Header().Get("Location"))
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrScheduleNotFound", func(t *testing.T) {
		env, mockService := setupScheduleTestRouter(t)
		mockService.On("Update", mock.Anything, 9, mock.Anything).Return(nil, apperrors.ErrScheduleNotFound).Once()

		w := env.do(formRequest(http.MethodPost, "/admin/schedules/9/edit", url.Values{
			"title": {"x"}, "event_date": {"2025-01-10"},
		}))

		assert.Equal(t, http.StatusFound, w.Code)
		flashes := env.flashes(t, w)
		require.Len(t, flashes, 1)
		assert.Equal(t, "일정을 찾을 수 없습니다.", flashes[0].Message)
	})
}

func TestAdminDeleteSchedule(t *testing.T) {
	env, mockService := setupScheduleTestRouter(t)
	mockService.On("Delete", mock.Anything, 2).Return(nil).Once()

	w := env.do(formRequest(http.MethodPost, "/admin/schedules/2/delete", url.Values{}))

	assert.Equal(t, http.StatusFound, w.Code)
	flashes := env.flashes(t, w)
	require.Len(t, flashes, 1)
	assert.Equal(t, "일정이 삭제되었습니다.", flashes[0].Message)
	mockService.AssertExpectations(t)
}
