package repositories

import (
	"errors"

	"gorm.io/gorm"

	"qatardigital.app/pkg/apperrors"
)

// translateError maps GORM errors onto the application taxonomy so callers
// above the repository layer never see gorm sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrDuplicate
	default:
		return err
	}
}
