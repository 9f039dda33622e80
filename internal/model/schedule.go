package model

import (
	"strings"
	"time"

	apperrors "blackeagles/pkg/app_errors"
)

// DateLayout is the only accepted event date form.
const DateLayout = "2006-01-02"

// ScheduleEntry is one flight event. Location and Description are empty when absent.
type ScheduleEntry struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Location    string    `json:"location" db:"location"`
	EventDate   string    `json:"event_date" db:"event_date"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Date returns EventDate as a UTC midnight time.
func (s *ScheduleEntry) Date() (time.Time, error) {
	return ParseEventDate(s.EventDate)
}

type CreateScheduleParams struct {
	Title       string
	Location    string
	EventDate   string
	Description string
}

// UpdateScheduleParams overwrites only the non-nil fields.
type UpdateScheduleParams struct {
	Title       *string
	Location    *string
	EventDate   *string
	Description *string
}

func (p UpdateScheduleParams) IsEmpty() bool {
	return p.Title == nil && p.Location == nil && p.EventDate == nil && p.Description == nil
}

// ParseEventDate accepts exactly YYYY-MM-DD naming a real calendar date.
func ParseEventDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || len(s) != len(DateLayout) {
		return time.Time{}, apperrors.NewValidationError("event_date", "날짜 형식 오류. YYYY-MM-DD 형식으로 입력하세요.")
	}
	return t, nil
}

// ValidateCreate trims the params in place and rejects a blank title or a bad date.
func (p *CreateScheduleParams) ValidateCreate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Location = strings.TrimSpace(p.Location)
	p.EventDate = strings.TrimSpace(p.EventDate)
	p.Description = strings.TrimSpace(p.Description)

	if p.Title == "" {
		return apperrors.NewValidationError("title", "제목은 필수입니다.")
	}
	if _, err := ParseEventDate(p.EventDate); err != nil {
		return err
	}
	return nil
}

// Validate checks only the supplied fields.
func (p UpdateScheduleParams) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return apperrors.NewValidationError("title", "제목은 필수입니다.")
	}
	if p.EventDate != nil {
		if _, err := ParseEventDate(*p.EventDate); err != nil {
			return err
		}
	}
	return nil
}

// DateOf formats the calendar date of t in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// CivilDate drops the clock and zone of t, keeping its calendar date as UTC midnight.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type ScheduleFilter string

const (
	FilterAll      ScheduleFilter = "all"
	FilterUpcoming ScheduleFilter = "upcoming"
	FilterPast     ScheduleFilter = "past"
	FilterToday    ScheduleFilter = "today"
	FilterWeek     ScheduleFilter = "week"
	FilterMonth    ScheduleFilter = "month"
)

const (
	WeekWindowDays  = 7
	MonthWindowDays = 30
)

func (f ScheduleFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterUpcoming, FilterPast, FilterToday, FilterWeek, FilterMonth:
		return true
	}
	return false
}

// ParseScheduleFilter maps unknown or empty input to FilterAll.
func ParseScheduleFilter(s string) ScheduleFilter {
	f := ScheduleFilter(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return FilterAll
	}
	return f
}

// ScheduleWindow is the date predicate and ordering a filter resolves to.
// Empty bounds are open.
type ScheduleWindow struct {
	From      string // event_date >= From
	To        string // event_date <= To
	Before    string // event_date < Before
	Ascending bool
}

// Window resolves f against the reference date (only its calendar date matters).
func (f ScheduleFilter) Window(ref time.Time) ScheduleWindow {
	today := DateOf(ref)
	switch f {
	case FilterUpcoming:
		return ScheduleWindow{From: today, Ascending: true}
	case FilterPast:
		return ScheduleWindow{Before: today}
	case FilterToday:
		return ScheduleWindow{From: today, To: today, Ascending: true}
	case FilterWeek:
		return ScheduleWindow{From: today, To: DateOf(ref.AddDate(0, 0, WeekWindowDays)), Ascending: true}
	case FilterMonth:
		return ScheduleWindow{From: today, To: DateOf(ref.AddDate(0, 0, MonthWindowDays)), Ascending: true}
	default:
		return ScheduleWindow{}
	}
}

// Contains reports whether an ISO date falls inside the window.
func (w ScheduleWindow) Contains(date string) bool {
	if w.From != "" && date < w.From {
		return false
	}
	if w.To != "" && date > w.To {
		return false
	}
	if w.Before != "" && date >= w.Before {
		return false
	}
	return true
}

// ScheduleStats counts are independent; one entry may land in several buckets.
type ScheduleStats struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
	Week     int `json:"week"`
	Month    int `json:"month"`
}
