package errors

import (
	"net/http"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/apperror"
)

var (
	ErrInvalidShiftTime = apperror.New(
		apperror.CodeInvalidInput,
		"shift times must be in HH:MM format",
		http.StatusBadRequest,
	)

	ErrInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"timezone is not a valid IANA identifier",
		http.StatusBadRequest,
	)
)
