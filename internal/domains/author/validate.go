package author

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared/apperr"
)

const maxNameLength = 255

// Validate evaluates every field rule and accumulates the violations.
// Checks for different fields are independent; within one field the rules
// short-circuit (length is only checked when the value is present).
func Validate(req SaveAuthorRequest, now time.Time) []apperr.FieldError {
	var details []apperr.FieldError

	if err := validation.Validate(req.Name,
		validation.NotNil.Error("name is required"),
		validation.Required.Error("name is required"),
		validation.RuneLength(1, maxNameLength).Error("name must be 255 characters or less"),
	); err != nil {
		details = append(details, apperr.FieldError{Field: "name", Message: err.Error()})
	}

	if req.Birthdate == nil || *req.Birthdate == "" {
		details = append(details, apperr.FieldError{Field: "birthdate", Message: "birthdate is required"})
	} else if birthdate, err := ParseBirthdate(*req.Birthdate); err != nil {
		details = append(details, apperr.FieldError{Field: "birthdate", Message: "birthdate must be a valid date in YYYY-MM-DD format"})
	} else if !birthdate.Before(dateOf(now)) {
		details = append(details, apperr.FieldError{Field: "birthdate", Message: "birthdate must be a date in the past"})
	}

	return details
}

// ParseBirthdate parses a YYYY-MM-DD string. The parsed date is rendered
// back and compared with the input, so overflowed dates that a lenient
// parser would normalize (2024-04-31 -> 2024-04-30) are rejected instead
// of silently coerced.
func ParseBirthdate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if parsed.Format(DateLayout) != value {
		return time.Time{}, fmt.Errorf("date %q does not round-trip", value)
	}
	return parsed, nil
}

// dateOf truncates a timestamp to its calendar date in UTC, matching the
// midnight-UTC instants ParseBirthdate produces.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
