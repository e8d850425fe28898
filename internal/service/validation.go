package service

import (
	"errors"
	"strings"

	"github.com/gesscam/community-portal/pkg/apperror"
	"gorm.io/gorm"
)

type requiredField struct {
	name  string
	value string
}

// validateRequired rejects fields that are empty after trimming, naming
// every missing field in one message.
func validateRequired(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperror.Validation("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// notFoundOr maps gorm's record-not-found to the NotFound taxonomy entry and
// hides every other store error behind InternalError.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(message)
	}
	return apperror.Wrap(apperror.ErrInternal, "", err)
}

func internal(err error) error {
	return apperror.Wrap(apperror.ErrInternal, "", err)
}
