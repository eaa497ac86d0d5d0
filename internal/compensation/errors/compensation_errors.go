package compensationerrors

import (
	"go-directory/internal/shared/apperror"
	"net/http"
)

var (
	ErrCompensationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Compensation not found",
		http.StatusNotFound,
	)
	ErrCompensationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Compensation for this employee already exists",
		http.StatusConflict,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeValidationError,
		"effectiveDate must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrSalaryOutOfRange = apperror.New(
		apperror.CodeValidationError,
		"salary is out of range",
		http.StatusBadRequest,
	)
)

func NoCompensationFor(employeeID string) *apperror.AppError {
	return apperror.Wrap(
		ErrCompensationNotFound,
		apperror.CodeNotFound,
		"No compensation data found for employeeId: "+employeeID,
		http.StatusNotFound,
	)
}
