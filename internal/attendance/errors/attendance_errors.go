package errors

import (
	"net/http"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/apperror"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"an open attendance record already exists",
		http.StatusConflict,
	)

	ErrNoOpenRecord = apperror.New(
		apperror.CodeInvalidState,
		"no open attendance record to check out",
		http.StatusUnprocessableEntity,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)

	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)

	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"timestamp must be RFC3339",
		http.StatusBadRequest,
	)

	ErrCheckOutBeforeCheckIn = apperror.New(
		apperror.CodeInvalidInput,
		"check-out must not precede check-in",
		http.StatusBadRequest,
	)
)
