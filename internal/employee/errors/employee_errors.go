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

	ErrDuplicateEmployeeNumber = apperror.New(
		apperror.CodeConflict,
		"employee number already in use",
		http.StatusConflict,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
