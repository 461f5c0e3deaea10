package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/luachapp/luach-api/internal/api/shared"
	"github.com/luachapp/luach-api/internal/domain/hebcal"
	"github.com/luachapp/luach-api/internal/domain/zmanim"
)

// Request-shape errors raised while parsing query parameters, before any
// domain code runs.
var (
	// ErrInvalidDate is returned for a date parameter that is not a valid
	// YYYY-MM-DD value.
	ErrInvalidDate = errors.New("invalid date parameter")

	// ErrInvalidCoordinate is returned for latitude/longitude parameters
	// that are not numbers.
	ErrInvalidCoordinate = errors.New("invalid coordinate parameter")

	// ErrInvalidTimeZone is returned for an unknown IANA time zone name.
	ErrInvalidTimeZone = errors.New("invalid time zone parameter")

	// ErrInvalidNusach is returned for an unknown liturgical tradition.
	ErrInvalidNusach = errors.New("invalid nusach parameter")

	// ErrInvalidMode is returned for an unknown display mode.
	ErrInvalidMode = errors.New("invalid mode parameter")
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	// Bad request parameters
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidCoordinate),
		errors.Is(err, ErrInvalidTimeZone),
		errors.Is(err, ErrInvalidNusach),
		errors.Is(err, ErrInvalidMode),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Domain range errors are also the caller's fault
	case errors.Is(err, zmanim.ErrNoLocation),
		errors.Is(err, zmanim.ErrNoTimeZone),
		errors.Is(err, zmanim.ErrLatitudeOutOfRange),
		errors.Is(err, zmanim.ErrLongitudeOutOfRange),
		errors.Is(err, hebcal.ErrMonthOutOfRange):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrInvalidDate):
		return "Date must be a valid YYYY-MM-DD value"

	case errors.Is(err, ErrInvalidCoordinate):
		return "Latitude and longitude must be numbers"

	case errors.Is(err, zmanim.ErrLatitudeOutOfRange):
		return "Latitude must be between -90 and 90 degrees"

	case errors.Is(err, zmanim.ErrLongitudeOutOfRange):
		return "Longitude must be between -180 and 180 degrees"

	case errors.Is(err, zmanim.ErrNoLocation):
		return "Latitude and longitude are required"

	case errors.Is(err, zmanim.ErrNoTimeZone), errors.Is(err, ErrInvalidTimeZone):
		return "A valid IANA time zone is required"

	case errors.Is(err, ErrInvalidNusach):
		return "Unknown nusach; expected ashkenaz, sefard, or edot_hamizrach"

	case errors.Is(err, ErrInvalidMode):
		return "Unknown mode; expected full or basic"

	case errors.Is(err, hebcal.ErrMonthOutOfRange):
		return "Hebrew date is out of range"

	case errors.As(err, &validationErrs):
		return "Request validation failed"

	default:
		return "An unexpected error occurred"
	}
}

// RespondWithMappedError pairs the two mappings above; every handler error
// path funnels through here.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
