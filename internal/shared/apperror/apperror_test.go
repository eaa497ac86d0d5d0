package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-directory/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Equal(t, "Resource not found", httpErr.Message)
	})

	t.Run("wrapped app error is found in chain", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", apperror.Wrap(errors.New("boom"), apperror.CodeConflict, "taken", http.StatusConflict))

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "taken", httpErr.Message)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "connection refused")
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", 500))

	cause := errors.New("cause")
	err := apperror.Wrap(cause, apperror.CodeInternalError, "outer", 500)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "outer: cause", err.Error())
}

func TestNew(t *testing.T) {
	err := apperror.New(apperror.CodeNotFound, "missing", http.StatusNotFound)

	assert.Equal(t, "missing", err.Error())
	assert.NoError(t, err.Unwrap())
	assert.ErrorIs(t, fmt.Errorf("find: %w", err), err)
	assert.NotErrorIs(t, err, apperror.New(apperror.CodeNotFound, "missing", http.StatusNotFound))
}

func TestInit_ReportsJSONFieldNames(t *testing.T) {
	apperror.Init()

	type body struct {
		EmployeeID string `json:"employeeId" binding:"required"`
	}
	err := binding.Validator.ValidateStruct(body{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "employeeId", verrs[0].Field())
}

type sample struct {
	EmployeeID    string `json:"employeeId" validate:"required"`
	EffectiveDate string `json:"effective_date" validate:"omitempty,datetime=2006-01-02"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

func TestMapValidationError(t *testing.T) {
	v := newValidator()

	t.Run("required field", func(t *testing.T) {
		err := v.Struct(sample{})

		appErr := apperror.MapValidationError(err)

		assert.Equal(t, apperror.CodeValidationError, appErr.Code)
		assert.Equal(t, "Employee Id is required", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})

	t.Run("invalid field", func(t *testing.T) {
		err := v.Struct(sample{EmployeeID: "1", EffectiveDate: "24-08-2025"})

		appErr := apperror.MapValidationError(err)

		assert.Equal(t, "Effective Date is invalid", appErr.Message)
	})

	t.Run("non validation error", func(t *testing.T) {
		appErr := apperror.MapValidationError(errors.New("unexpected EOF"))

		assert.Equal(t, "Invalid input", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})
}
