package service

import (
	"context"
	"strings"
	"time"

	"blackeagles/internal/model"
	"blackeagles/internal/repository"
	apperrors "blackeagles/pkg/app_errors"
)

type ScheduleService interface {
	Create(ctx context.Context, params model.CreateScheduleParams) (*model.ScheduleEntry, error)
	Get(ctx context.Context, id int) (*model.ScheduleEntry, error)
	Update(ctx context.Context, id int, params model.UpdateScheduleParams) (*model.ScheduleEntry, error)
	Delete(ctx context.Context, id int) error
	// List evaluates the filter against Today.
	List(ctx context.Context, filter model.ScheduleFilter) ([]*model.ScheduleEntry, error)
	Search(ctx context.Context, keyword string) ([]*model.ScheduleEntry, error)
	Stats(ctx context.Context) (*model.ScheduleStats, error)
	// Today is the current instant in the configured zone.
	Today() time.Time
}

type ScheduleServiceImpl struct {
	repo repository.ScheduleRepository
	loc  *time.Location
	now  func() time.Time
}

func NewScheduleService(repo repository.ScheduleRepository, loc *time.Location) ScheduleService {
	if loc == nil {
		loc = time.Local
	}
	return &ScheduleServiceImpl{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// NewScheduleServiceWithClock pins the clock, for tests.
func NewScheduleServiceWithClock(repo repository.ScheduleRepository, loc *time.Location, now func() time.Time) ScheduleService {
	s := NewScheduleService(repo, loc).(*ScheduleServiceImpl)
	s.now = now
	return s
}

func (s *ScheduleServiceImpl) Today() time.Time {
	return s.now().In(s.loc)
}

func (s *ScheduleServiceImpl) Create(ctx context.Context, params model.CreateScheduleParams) (*model.ScheduleEntry, error) {
	if err := params.ValidateCreate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *ScheduleServiceImpl) Get(ctx context.Context, id int) (*model.ScheduleEntry, error) {
	return s.repo.FindByID(ctx, id)
}

// Update reports a missing id before it reports invalid input.
func (s *ScheduleServiceImpl) Update(ctx context.Context, id int, params model.UpdateScheduleParams) (*model.ScheduleEntry, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, params)
}

func (s *ScheduleServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *ScheduleServiceImpl) List(ctx context.Context, filter model.ScheduleFilter) ([]*model.ScheduleEntry, error) {
	if !filter.IsValid() {
		filter = model.FilterAll
	}
	return s.repo.List(ctx, filter, s.Today())
}

func (s *ScheduleServiceImpl) Search(ctx context.Context, keyword string) ([]*model.ScheduleEntry, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperrors.NewValidationError("keyword", "검색어를 입력하세요.")
	}
	return s.repo.Search(ctx, keyword)
}

func (s *ScheduleServiceImpl) Stats(ctx context.Context) (*model.ScheduleStats, error) {
	return s.repo.Stats(ctx, s.Today())
}
