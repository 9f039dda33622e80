package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrPersistence     = errors.New("persistence failure")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionNotFound    = errors.New("session not found")
	ErrDuplicateSection   = errors.New("page section already exists")
)

// entity lookups all satisfy errors.Is(err, ErrNotFound)
var (
	ErrScheduleNotFound     = notFound("schedule")
	ErrNoticeNotFound       = notFound("notice")
	ErrInquiryNotFound      = notFound("inquiry")
	ErrPilotNotFound        = notFound("pilot")
	ErrCrewNotFound         = notFound("maintenance crew")
	ErrCandidateNotFound    = notFound("candidate")
	ErrCommanderNotFound    = notFound("commander greeting")
	ErrBannerNotFound       = notFound("banner")
	ErrPageSectionNotFound  = notFound("page section")
	ErrHomeContentNotFound  = notFound("home content")
	ErrAboutSectionNotFound = notFound("about section")
	ErrPhotoNotFound        = notFound("gallery photo")
	ErrSiteImageNotFound    = notFound("site image")
)

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// ValidationError rejects a request before any state is touched.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PersistenceError wraps a storage driver failure with the operation that hit it.
type PersistenceError struct {
	Op  string
	Err error
}

func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
