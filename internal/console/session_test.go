package console_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"blackeagles/internal/console"
	"blackeagles/internal/database"
	"blackeagles/internal/model"
	"blackeagles/internal/repository/sqlite"
	"blackeagles/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDate = time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)

func setupService(t *testing.T) service.ScheduleService {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "flight_schedules.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	return service.NewScheduleServiceWithClock(sqlite.NewScheduleStore(db), time.UTC, func() time.Time { return refDate })
}

// run feeds one answer per line and returns everything the session printed.
func run(t *testing.T, svc service.ScheduleService, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, console.NewSession(svc, in, &out).Run(context.Background()))
	return out.String()
}

func seed(t *testing.T, svc service.ScheduleService, params ...model.CreateScheduleParams) {
	t.Helper()
	for _, p := range params {
		_, err := svc.Create(context.Background(), p)
		require.NoError(t, err)
	}
}

func TestSession_Exit(t *testing.T) {
	svc := setupService(t)

	t.Run("Menu zero", func(t *testing.T) {
		out := run(t, svc, "0")
		assert.Contains(t, out, "Virtual Black Eagles")
		assert.Contains(t, out, "👋 프로그램을 종료합니다.")
	})

	t.Run("End of input", func(t *testing.T) {
		var out bytes.Buffer
		err := console.NewSession(svc, strings.NewReader(""), &out).Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out bytes.Buffer
		err := console.NewSession(svc, strings.NewReader("1\n"), &out).Run(ctx)
		assert.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("Unknown choice", func(t *testing.T) {
		out := run(t, svc, "9", "", "0")
		assert.Contains(t, out, "❌ 올바른 메뉴를 선택하세요.")
	})
}

func TestSession_Add(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := setupService(t)

		out := run(t, svc, "2", "에어쇼", "청주", "2025-01-10", "", "", "0")
		assert.Contains(t, out, "✅ 일정이 추가되었습니다: 에어쇼")

		all, err := svc.List(context.Background(), model.FilterAll)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "청주", all[0].Location)
	})

	t.Run("Failed - missing date", func(t *testing.T) {
		svc := setupService(t)

		out := run(t, svc, "2", "에어쇼", "", "", "", "", "0")
		assert.Contains(t, out, "❌ 제목과 날짜는 필수입니다.")
	})

	t.Run("Failed - invalid date", func(t *testing.T) {
		svc := setupService(t)

		out := run(t, svc, "2", "에어쇼", "", "2025-13-40", "", "", "0")
		assert.NotContains(t, out, "✅")

		all, err := svc.List(context.Background(), model.FilterAll)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestSession_List(t *testing.T) {
	svc := setupService(t)

	t.Run("Empty", func(t *testing.T) {
		out := run(t, svc, "1", "", "", "0")
		assert.Contains(t, out, "📭 등록된 일정이 없습니다.")
	})

	seed(t, svc,
		model.CreateScheduleParams{Title: "신년 비행", EventDate: "2025-01-01"},
		model.CreateScheduleParams{Title: "정기 훈련", Location: "청주", EventDate: "2025-01-10"},
	)

	t.Run("Upcoming with countdown", func(t *testing.T) {
		out := run(t, svc, "1", "2", "", "0")
		assert.Contains(t, out, "정기 훈련")
		assert.Contains(t, out, "D-5")
		assert.NotContains(t, out, "신년 비행")
	})

	t.Run("Unknown filter falls back to all", func(t *testing.T) {
		out := run(t, svc, "1", "x", "", "0")
		assert.Contains(t, out, "정기 훈련")
		assert.Contains(t, out, "신년 비행")
	})
}

func TestSession_Search(t *testing.T) {
	svc := setupService(t)
	seed(t, svc, model.CreateScheduleParams{Title: "정기 훈련", Location: "Seoul", EventDate: "2025-01-10"})

	t.Run("Success", func(t *testing.T) {
		out := run(t, svc, "3", "seoul", "", "0")
		assert.Contains(t, out, "🔍 'seoul' 검색 결과: 1건")
		assert.Contains(t, out, "정기 훈련")
	})

	t.Run("No match", func(t *testing.T) {
		out := run(t, svc, "3", "부산", "", "0")
		assert.Contains(t, out, "🔍 '부산' 검색 결과가 없습니다.")
	})

	t.Run("Failed - empty keyword", func(t *testing.T) {
		out := run(t, svc, "3", "", "", "0")
		assert.Contains(t, out, "❌ 검색어를 입력하세요.")
	})
}

func TestSession_Detail(t *testing.T) {
	svc := setupService(t)
	seed(t, svc, model.CreateScheduleParams{Title: "정기 훈련", EventDate: "2025-01-10"})

	t.Run("Success", func(t *testing.T) {
		out := run(t, svc, "4", "1", "", "0")
		assert.Contains(t, out, "정기 훈련")
		assert.Contains(t, out, "D-5 (앞으로 5일 남음)")
	})

	t.Run("Failed - unknown id", func(t *testing.T) {
		out := run(t, svc, "4", "42", "", "0")
		assert.Contains(t, out, "❌ ID 42번 일정을 찾을 수 없습니다.")
	})

	t.Run("Failed - not a number", func(t *testing.T) {
		out := run(t, svc, "4", "abc", "", "0")
		assert.Contains(t, out, "❌ 올바른 ID를 입력하세요.")
	})
}

func TestSession_Update(t *testing.T) {
	t.Run("Success - empty answers keep values", func(t *testing.T) {
		svc := setupService(t)
		seed(t, svc, model.CreateScheduleParams{Title: "Old", Location: "청주", EventDate: "2025-01-10", Description: "desc"})

		out := run(t, svc, "5", "1", "New", "", "", "", "", "0")
		assert.Contains(t, out, "✅ ID 1번 일정이 수정되었습니다.")

		got, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, "청주", got.Location)
		assert.Equal(t, "desc", got.Description)
	})

	t.Run("Nothing entered", func(t *testing.T) {
		svc := setupService(t)
		seed(t, svc, model.CreateScheduleParams{Title: "Old", EventDate: "2025-01-10"})

		out := run(t, svc, "5", "1", "", "", "", "", "", "0")
		assert.Contains(t, out, "⚠️  수정할 내용이 없습니다.")
	})

	t.Run("Failed - unknown id reported before bad date", func(t *testing.T) {
		svc := setupService(t)

		out := run(t, svc, "5", "7", "", "", "bad", "", "", "0")
		assert.Contains(t, out, "❌ ID 7번 일정을 찾을 수 없습니다.")
	})
}

func TestSession_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := setupService(t)
		seed(t, svc, model.CreateScheduleParams{Title: "정기 훈련", EventDate: "2025-01-10"})

		out := run(t, svc, "6", "1", "y", "", "0")
		assert.Contains(t, out, "✅ ID 1번 일정이 삭제되었습니다: 정기 훈련")

		all, err := svc.List(context.Background(), model.FilterAll)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Declined", func(t *testing.T) {
		svc := setupService(t)
		seed(t, svc, model.CreateScheduleParams{Title: "정기 훈련", EventDate: "2025-01-10"})

		out := run(t, svc, "6", "1", "n", "", "0")
		assert.NotContains(t, out, "삭제되었습니다")

		all, err := svc.List(context.Background(), model.FilterAll)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Failed - unknown id", func(t *testing.T) {
		svc := setupService(t)

		out := run(t, svc, "6", "3", "y", "", "0")
		assert.Contains(t, out, "❌ ID 3번 일정을 찾을 수 없습니다.")
	})
}

func TestSession_Stats(t *testing.T) {
	svc := setupService(t)
	seed(t, svc,
		model.CreateScheduleParams{Title: "신년 비행", EventDate: "2025-01-01"},
		model.CreateScheduleParams{Title: "정기 훈련", EventDate: "2025-01-10"},
		model.CreateScheduleParams{Title: "에어쇼 리허설", EventDate: "2025-02-15"},
	)

	out := run(t, svc, "7", "", "0")
	assert.Contains(t, out, "전체 일정: 3건")
	assert.Contains(t, out, "이번 달 일정: 1건")
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "종료됨 (D+3)", console.StatusLine(-3))
	assert.Equal(t, "🔥 오늘 진행!", console.StatusLine(0))
	assert.Equal(t, "D-2 (앞으로 2일 남음)", console.StatusLine(2))
}
