package errors

import (
	"net/http"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)

	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"no salary configured for employee",
		http.StatusNotFound,
	)

	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be in YYYY-MM format",
		http.StatusBadRequest,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
