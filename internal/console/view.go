package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"blackeagles/internal/dday"
	"blackeagles/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	descriptionWidth = 30
	ruleWide         = 100
	ruleNarrow       = 60
)

// view renders with a lipgloss renderer bound to out, so colors are dropped
// when out is not a terminal.
type view struct {
	out      io.Writer
	title    lipgloss.Style
	header   lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	border   lipgloss.Style
	renderer *lipgloss.Renderer
}

func newView(out io.Writer) *view {
	r := lipgloss.NewRenderer(out)
	return &view{
		out:      out,
		renderer: r,
		title:    r.NewStyle().Bold(true),
		header:   r.NewStyle().Bold(true).Padding(0, 1),
		muted:    r.NewStyle().Faint(true),
		accent:   r.NewStyle().Foreground(lipgloss.Color("12")),
		border:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (v *view) rule(width int) {
	fmt.Fprintln(v.out, strings.Repeat("=", width))
}

func (v *view) menu() {
	fmt.Fprintln(v.out)
	v.rule(ruleNarrow)
	fmt.Fprintln(v.out, v.title.Render("✈️  Virtual Black Eagles - 비행 스케줄 관리"))
	v.rule(ruleNarrow)
	for _, line := range []string{
		"1. 📋 일정 목록 조회",
		"2. ➕ 일정 추가",
		"3. 🔍 일정 검색",
		"4. 📝 일정 상세 조회",
		"5. ✏️  일정 수정",
		"6. 🗑️  일정 삭제",
		"7. 📊 통계",
		"0. 🚪 종료",
	} {
		fmt.Fprintln(v.out, line)
	}
	v.rule(ruleNarrow)
}

// scheduleTable prints entries as a grid; withDDay adds the countdown column.
func (v *view) scheduleTable(entries []*model.ScheduleEntry, today time.Time, withDDay bool) {
	headers := []string{"ID", "제목", "장소", "날짜"}
	if withDDay {
		headers = append(headers, "D-Day")
	}
	headers = append(headers, "설명")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(v.border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return v.header
			}
			return v.renderer.NewStyle().Padding(0, 1)
		})

	for _, e := range entries {
		row := []string{strconv.Itoa(e.ID), e.Title, orDash(e.Location), e.EventDate}
		if withDDay {
			row = append(row, dday.FormatISO(e.EventDate, today))
		}
		row = append(row, orDash(truncate(e.Description, descriptionWidth)))
		t.Row(row...)
	}

	if withDDay {
		fmt.Fprintln(v.out)
		v.rule(ruleWide)
	}
	fmt.Fprintln(v.out, t.Render())
	if withDDay {
		v.rule(ruleWide)
	}
	fmt.Fprintln(v.out)
}

func (v *view) scheduleDetail(e *model.ScheduleEntry, today time.Time) {
	fmt.Fprintln(v.out)
	v.rule(ruleNarrow)
	fmt.Fprintln(v.out, v.title.Render("📋 일정 상세 정보"))
	v.rule(ruleNarrow)
	fmt.Fprintf(v.out, "ID: %d\n", e.ID)
	fmt.Fprintf(v.out, "제목: %s\n", e.Title)
	fmt.Fprintf(v.out, "장소: %s\n", orDash(e.Location))
	fmt.Fprintf(v.out, "날짜: %s\n", e.EventDate)
	fmt.Fprintf(v.out, "설명: %s\n", orDash(e.Description))
	fmt.Fprintf(v.out, "등록일: %s\n", v.muted.Render(e.CreatedAt.Local().Format("2006-01-02 15:04:05")))
	fmt.Fprintf(v.out, "수정일: %s\n", v.muted.Render(e.UpdatedAt.Local().Format("2006-01-02 15:04:05")))
	if date, err := e.Date(); err == nil {
		fmt.Fprintf(v.out, "상태: %s\n", v.accent.Render(StatusLine(dday.Days(date, today))))
	}
	v.rule(ruleNarrow)
	fmt.Fprintln(v.out)
}

func (v *view) statistics(s *model.ScheduleStats) {
	fmt.Fprintln(v.out)
	v.rule(ruleNarrow)
	fmt.Fprintln(v.out, v.title.Render("📊 비행 스케줄 통계"))
	v.rule(ruleNarrow)
	fmt.Fprintf(v.out, "전체 일정: %d건\n", s.Total)
	fmt.Fprintf(v.out, "다가오는 일정: %d건\n", s.Upcoming)
	fmt.Fprintf(v.out, "지난 일정: %d건\n", s.Past)
	fmt.Fprintf(v.out, "이번 주 일정: %d건\n", s.Week)
	fmt.Fprintf(v.out, "이번 달 일정: %d건\n", s.Month)
	v.rule(ruleNarrow)
	fmt.Fprintln(v.out)
}

// StatusLine describes an event delta days away for the detail view.
func StatusLine(delta int) string {
	switch {
	case delta < 0:
		return fmt.Sprintf("종료됨 (%s)", dday.Label(delta))
	case delta == 0:
		return "🔥 오늘 진행!"
	default:
		return fmt.Sprintf("%s (앞으로 %d일 남음)", dday.Label(delta), delta)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
