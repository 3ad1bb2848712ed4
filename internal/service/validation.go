package service

import (
	"errors"
	"fmt"

	apperrors "campus-placement-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validateRequest runs struct validation and reports the first failing field as a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// pageOffset converts page and pageSize to an offset, rejecting out-of-range values
func pageOffset(page, pageSize int) (int, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return 0, apperrors.ErrInvalidPaginationParams
	}
	return (page - 1) * pageSize, nil
}
