// Package console is the interactive menu of the standalone schedule manager.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blackeagles/internal/model"
	"blackeagles/internal/service"
	apperrors "blackeagles/pkg/app_errors"
	"blackeagles/pkg/logger"

	"go.uber.org/zap"
)

// Menu choices.
const (
	choiceList   = "1"
	choiceAdd    = "2"
	choiceSearch = "3"
	choiceDetail = "4"
	choiceUpdate = "5"
	choiceDelete = "6"
	choiceStats  = "7"
	choiceExit   = "0"
)

var filterChoices = map[string]model.ScheduleFilter{
	"1": model.FilterAll,
	"2": model.FilterUpcoming,
	"3": model.FilterPast,
	"4": model.FilterToday,
	"5": model.FilterWeek,
	"6": model.FilterMonth,
}

// Session runs one command per loop iteration against a schedule service.
// Empty input on update keeps the stored value.
type Session struct {
	schedules service.ScheduleService
	in        *bufio.Scanner
	out       io.Writer
	view      *view
}

func NewSession(schedules service.ScheduleService, in io.Reader, out io.Writer) *Session {
	return &Session{
		schedules: schedules,
		in:        bufio.NewScanner(in),
		out:       out,
		view:      newView(out),
	}
}

// Run returns nil on "0", on end of input and on context cancellation.
func (s *Session) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		s.view.menu()
		choice, ok := s.prompt("선택: ")
		if !ok {
			return nil
		}

		switch choice {
		case choiceList:
			s.list(ctx)
		case choiceAdd:
			s.add(ctx)
		case choiceSearch:
			s.search(ctx)
		case choiceDetail:
			s.detail(ctx)
		case choiceUpdate:
			s.update(ctx)
		case choiceDelete:
			s.delete(ctx)
		case choiceStats:
			s.stats(ctx)
		case choiceExit:
			s.println("\n👋 프로그램을 종료합니다.")
			return nil
		default:
			s.println("❌ 올바른 메뉴를 선택하세요.")
		}

		if _, ok := s.prompt("\nEnter 키를 눌러 계속..."); !ok {
			return nil
		}
	}
}

func (s *Session) list(ctx context.Context) {
	s.println("\n📋 일정 필터:")
	s.println("1. 전체")
	s.println("2. 다가오는 일정")
	s.println("3. 지난 일정")
	s.println("4. 오늘")
	s.println("5. 이번 주")
	s.println("6. 이번 달")

	answer, _ := s.prompt("선택 (기본: 1): ")
	filter, ok := filterChoices[answer]
	if !ok {
		filter = model.FilterAll
	}

	schedules, err := s.schedules.List(ctx, filter)
	if err != nil {
		s.failed("일정 조회 실패", err)
		return
	}
	if len(schedules) == 0 {
		s.println("📭 등록된 일정이 없습니다.")
		return
	}
	s.view.scheduleTable(schedules, s.schedules.Today(), true)
}

func (s *Session) add(ctx context.Context) {
	s.println("\n➕ 새 일정 추가")
	title, _ := s.prompt("제목: ")
	location, _ := s.prompt("장소: ")
	eventDate, _ := s.prompt("날짜 (YYYY-MM-DD): ")
	description, _ := s.prompt("설명 (선택): ")

	if title == "" || eventDate == "" {
		s.println("❌ 제목과 날짜는 필수입니다.")
		return
	}

	created, err := s.schedules.Create(ctx, model.CreateScheduleParams{
		Title:       title,
		Location:    location,
		EventDate:   eventDate,
		Description: description,
	})
	if err != nil {
		s.failed("일정 추가 실패", err)
		return
	}
	s.printf("✅ 일정이 추가되었습니다: %s\n", created.Title)
}

func (s *Session) search(ctx context.Context) {
	keyword, _ := s.prompt("\n🔍 검색어: ")
	if keyword == "" {
		s.println("❌ 검색어를 입력하세요.")
		return
	}

	schedules, err := s.schedules.Search(ctx, keyword)
	if err != nil {
		s.failed("검색 실패", err)
		return
	}
	if len(schedules) == 0 {
		s.printf("🔍 '%s' 검색 결과가 없습니다.\n", keyword)
		return
	}
	s.printf("\n🔍 '%s' 검색 결과: %d건\n", keyword, len(schedules))
	s.view.scheduleTable(schedules, s.schedules.Today(), false)
}

func (s *Session) detail(ctx context.Context) {
	id, ok := s.promptID("\n📝 조회할 일정 ID: ")
	if !ok {
		return
	}

	entry, err := s.schedules.Get(ctx, id)
	if err != nil {
		s.failedID(id, "일정 조회 실패", err)
		return
	}
	s.view.scheduleDetail(entry, s.schedules.Today())
}

func (s *Session) update(ctx context.Context) {
	id, ok := s.promptID("\n✏️  수정할 일정 ID: ")
	if !ok {
		return
	}

	s.println("수정할 항목을 입력하세요 (Enter: 건너뛰기)")
	var params model.UpdateScheduleParams
	params.Title = s.promptOptional("제목: ")
	params.Location = s.promptOptional("장소: ")
	params.EventDate = s.promptOptional("날짜 (YYYY-MM-DD): ")
	params.Description = s.promptOptional("설명: ")

	if _, err := s.schedules.Update(ctx, id, params); err != nil {
		if errors.Is(err, apperrors.ErrNothingToUpdate) {
			s.println("⚠️  수정할 내용이 없습니다.")
			return
		}
		s.failedID(id, "일정 수정 실패", err)
		return
	}
	s.printf("✅ ID %d번 일정이 수정되었습니다.\n", id)
}

func (s *Session) delete(ctx context.Context) {
	id, ok := s.promptID("\n🗑️  삭제할 일정 ID: ")
	if !ok {
		return
	}

	answer, _ := s.prompt(fmt.Sprintf("정말 ID %d번 일정을 삭제하시겠습니까? (y/n): ", id))
	if strings.ToLower(answer) != "y" {
		return
	}

	entry, err := s.schedules.Get(ctx, id)
	if err == nil {
		err = s.schedules.Delete(ctx, id)
	}
	if err != nil {
		s.failedID(id, "일정 삭제 실패", err)
		return
	}
	s.printf("✅ ID %d번 일정이 삭제되었습니다: %s\n", id, entry.Title)
}

func (s *Session) stats(ctx context.Context) {
	stats, err := s.schedules.Stats(ctx)
	if err != nil {
		s.failed("통계 조회 실패", err)
		return
	}
	s.view.statistics(stats)
}

// Input

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptOptional maps an empty answer to nil so the field is left unchanged.
func (s *Session) promptOptional(label string) *string {
	v, _ := s.prompt(label)
	if v == "" {
		return nil
	}
	return &v
}

func (s *Session) promptID(label string) (int, bool) {
	v, _ := s.prompt(label)
	id, err := strconv.Atoi(v)
	if err != nil || id < 0 || strings.HasPrefix(v, "+") {
		s.println("❌ 올바른 ID를 입력하세요.")
		return 0, false
	}
	return id, true
}

// Output

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) failedID(id int, op string, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		s.printf("❌ ID %d번 일정을 찾을 수 없습니다.\n", id)
		return
	}
	s.failed(op, err)
}

// failed reports validation problems verbatim and anything else with op.
func (s *Session) failed(op string, err error) {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		s.printf("❌ %s\n", vErr.Message)
		return
	}
	logger.WithComponent("console").Error(op, zap.Error(err))
	s.printf("❌ %s: %v\n", op, err)
}
