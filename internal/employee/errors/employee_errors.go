package employeeerrors

import (
	"go-directory/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same id already exists",
		http.StatusConflict,
	)
)

// InvalidEmployeeID reports an identifier that does not resolve to an employee.
// It unwraps to ErrEmployeeNotFound.
func InvalidEmployeeID(id string) *apperror.AppError {
	return apperror.Wrap(
		ErrEmployeeNotFound,
		apperror.CodeNotFound,
		"Invalid employeeId: "+id,
		http.StatusNotFound,
	)
}
