package service

import (
	"errors"

	apperrors "blackeagles/pkg/app_errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
