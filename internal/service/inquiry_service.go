package service

import (
	"context"

	"blackeagles/internal/model"
	"blackeagles/internal/queue"
	"blackeagles/internal/repository"
	"blackeagles/pkg/logger"

	"go.uber.org/zap"
)

// DashboardRecentLimit is how many inquiries the admin dashboard lists.
const DashboardRecentLimit = 5

type Dashboard struct {
	UnreadCount int
	Recent      []*model.Inquiry
}

type InquiryService interface {
	Submit(ctx context.Context, params model.SubmitInquiryParams) (*model.Inquiry, error)
	List(ctx context.Context, inquiryType model.InquiryType) ([]*model.Inquiry, error)
	// Open returns the inquiry and marks it read.
	Open(ctx context.Context, id int) (*model.Inquiry, error)
	Delete(ctx context.Context, id int) error
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type InquiryServiceImpl struct {
	repo  repository.InquiryRepository
	queue queue.NotificationQueue
}

// NewInquiryService takes a nil queue when notifications are disabled.
func NewInquiryService(repo repository.InquiryRepository, notifications queue.NotificationQueue) InquiryService {
	return &InquiryServiceImpl{
		repo:  repo,
		queue: notifications,
	}
}

func (s *InquiryServiceImpl) Submit(ctx context.Context, params model.SubmitInquiryParams) (*model.Inquiry, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	inquiry, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	if s.queue != nil {
		if err := s.queue.Publish(ctx, model.NewInquiryNotification(inquiry)); err != nil {
			// the inquiry is stored; only the mail is lost
			logger.WithComponent("service").Warn("publish inquiry notification failed",
				zap.Int("inquiry_id", inquiry.ID),
				zap.Error(err))
		}
	}
	return inquiry, nil
}

func (s *InquiryServiceImpl) List(ctx context.Context, inquiryType model.InquiryType) ([]*model.Inquiry, error) {
	if !inquiryType.IsValid() {
		inquiryType = ""
	}
	return s.repo.List(ctx, inquiryType)
}

func (s *InquiryServiceImpl) Open(ctx context.Context, id int) (*model.Inquiry, error) {
	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inquiry.IsRead {
		if err := s.repo.MarkRead(ctx, id); err != nil {
			return nil, err
		}
		inquiry.IsRead = true
	}
	return inquiry, nil
}

func (s *InquiryServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *InquiryServiceImpl) Dashboard(ctx context.Context) (*Dashboard, error) {
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.Recent(ctx, DashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	return &Dashboard{UnreadCount: unread, Recent: recent}, nil
}
