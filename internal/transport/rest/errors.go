package rest

import (
	"errors"
	"net/http"

	"kiosk/internal/domain"
)

// errorStatus maps service errors to the HTTP status and the message shown
// to the display.
func errorStatus(err error) (int, string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity, verr.Message
	}

	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			return m.status, m.err.Error()
		}
	}
	return http.StatusInternalServerError, "erro interno do servidor"
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrMissingSelection, http.StatusUnprocessableEntity},
	{domain.ErrVerificationFailed, http.StatusBadGateway},
	{domain.ErrVerificationInFlight, http.StatusConflict},
	{domain.ErrVerificationDiscarded, http.StatusConflict},
	{domain.ErrActionNotAvailable, http.StatusConflict},
	{domain.ErrSelectionUnavailable, http.StatusBadRequest},
	{domain.ErrSpecialistNotFound, http.StatusNotFound},
	{domain.ErrSessionNotFound, http.StatusUnauthorized},
	{domain.ErrPrecondition, http.StatusInternalServerError},
}
