package service

import (
	"context"

	"blackeagles/internal/model"
	"blackeagles/internal/repository"
)

// RosterService manages the people shown on the about page.
type RosterService interface {
	ListPilots(ctx context.Context, activeOnly bool) ([]*model.Pilot, error)
	GetPilot(ctx context.Context, id int) (*model.Pilot, error)
	SavePilot(ctx context.Context, pilot *model.Pilot) (*model.Pilot, error)
	DeletePilot(ctx context.Context, id int) error

	ListCrew(ctx context.Context, activeOnly bool) ([]*model.MaintenanceCrew, error)
	GetCrew(ctx context.Context, id int) (*model.MaintenanceCrew, error)
	SaveCrew(ctx context.Context, crew *model.MaintenanceCrew) (*model.MaintenanceCrew, error)
	DeleteCrew(ctx context.Context, id int) error

	ListCandidates(ctx context.Context, activeOnly bool) ([]*model.Candidate, error)
	GetCandidate(ctx context.Context, id int) (*model.Candidate, error)
	SaveCandidate(ctx context.Context, candidate *model.Candidate) (*model.Candidate, error)
	DeleteCandidate(ctx context.Context, id int) error

	// ListCommanders returns every language when lang is empty.
	ListCommanders(ctx context.Context, activeOnly bool, lang string) ([]*model.CommanderGreeting, error)
	GetCommander(ctx context.Context, id int) (*model.CommanderGreeting, error)
	SaveCommander(ctx context.Context, commander *model.CommanderGreeting) (*model.CommanderGreeting, error)
	DeleteCommander(ctx context.Context, id int) error
}

type RosterServiceImpl struct {
	pilots     repository.PilotRepository
	crew       repository.CrewRepository
	candidates repository.CandidateRepository
	commanders repository.CommanderRepository
}

func NewRosterService(
	pilots repository.PilotRepository,
	crew repository.CrewRepository,
	candidates repository.CandidateRepository,
	commanders repository.CommanderRepository,
) RosterService {
	return &RosterServiceImpl{
		pilots:     pilots,
		crew:       crew,
		candidates: candidates,
		commanders: commanders,
	}
}

func (s *RosterServiceImpl) ListPilots(ctx context.Context, activeOnly bool) ([]*model.Pilot, error) {
	return s.pilots.List(ctx, activeOnly)
}

func (s *RosterServiceImpl) GetPilot(ctx context.Context, id int) (*model.Pilot, error) {
	return s.pilots.FindByID(ctx, id)
}

// SavePilot creates when pilot.ID is zero and updates otherwise.
func (s *RosterServiceImpl) SavePilot(ctx context.Context, pilot *model.Pilot) (*model.Pilot, error) {
	if err := pilot.Validate(); err != nil {
		return nil, err
	}
	if pilot.ID == 0 {
		return s.pilots.Create(ctx, pilot)
	}
	return s.pilots.Update(ctx, pilot)
}

func (s *RosterServiceImpl) DeletePilot(ctx context.Context, id int) error {
	return s.pilots.Delete(ctx, id)
}

func (s *RosterServiceImpl) ListCrew(ctx context.Context, activeOnly bool) ([]*model.MaintenanceCrew, error) {
	return s.crew.List(ctx, activeOnly)
}

func (s *RosterServiceImpl) GetCrew(ctx context.Context, id int) (*model.MaintenanceCrew, error) {
	return s.crew.FindByID(ctx, id)
}

func (s *RosterServiceImpl) SaveCrew(ctx context.Context, crew *model.MaintenanceCrew) (*model.MaintenanceCrew, error) {
	if err := crew.Validate(); err != nil {
		return nil, err
	}
	if crew.ID == 0 {
		return s.crew.Create(ctx, crew)
	}
	return s.crew.Update(ctx, crew)
}

func (s *RosterServiceImpl) DeleteCrew(ctx context.Context, id int) error {
	return s.crew.Delete(ctx, id)
}

func (s *RosterServiceImpl) ListCandidates(ctx context.Context, activeOnly bool) ([]*model.Candidate, error) {
	return s.candidates.List(ctx, activeOnly)
}

func (s *RosterServiceImpl) GetCandidate(ctx context.Context, id int) (*model.Candidate, error) {
	return s.candidates.FindByID(ctx, id)
}

func (s *RosterServiceImpl) SaveCandidate(ctx context.Context, candidate *model.Candidate) (*model.Candidate, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	if candidate.ID == 0 {
		return s.candidates.Create(ctx, candidate)
	}
	return s.candidates.Update(ctx, candidate)
}

func (s *RosterServiceImpl) DeleteCandidate(ctx context.Context, id int) error {
	return s.candidates.Delete(ctx, id)
}

func (s *RosterServiceImpl) ListCommanders(ctx context.Context, activeOnly bool, lang string) ([]*model.CommanderGreeting, error) {
	if lang != "" {
		lang = model.NormalizeLang(lang)
	}
	return s.commanders.List(ctx, activeOnly, lang)
}

func (s *RosterServiceImpl) GetCommander(ctx context.Context, id int) (*model.CommanderGreeting, error) {
	return s.commanders.FindByID(ctx, id)
}

func (s *RosterServiceImpl) SaveCommander(ctx context.Context, commander *model.CommanderGreeting) (*model.CommanderGreeting, error) {
	if err := commander.Validate(); err != nil {
		return nil, err
	}
	if commander.ID == 0 {
		return s.commanders.Create(ctx, commander)
	}
	return s.commanders.Update(ctx, commander)
}

func (s *RosterServiceImpl) DeleteCommander(ctx context.Context, id int) error {
	return s.commanders.Delete(ctx, id)
}
