package reportingerrors

import (
	"go-directory/internal/shared/apperror"
	"net/http"
)

var ErrReportingCycle = apperror.New(
	apperror.CodeInvalidState,
	"Reporting cycle detected",
	http.StatusConflict,
)

// CycleDetected names the employee that appears among its own managers.
func CycleDetected(employeeID string) *apperror.AppError {
	return apperror.Wrap(
		ErrReportingCycle,
		apperror.CodeInvalidState,
		"Reporting cycle detected at employeeId: "+employeeID,
		http.StatusConflict,
	)
}
