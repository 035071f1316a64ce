package daterule

import (
	"errors"
	"fmt"
	"time"
)

// Errors
var (
	ErrParse                    = errors.New("parse rule expression")
	ErrInvalidToken             = errors.New("invalid token")
	ErrCalendarLookup           = errors.New("date outside calendar range")
	ErrInsufficientBusinessDays = errors.New("insufficient business days")
	ErrTriggerExhausted         = errors.New("trigger exhausted")
)

// TokenError reports a token that does not match the grammar of its field.
// It unwraps to ErrInvalidToken.
type TokenError struct {
	Field Field
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrInvalidToken, e.Field, e.Token)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// parseError returns a parse error with a custom error message,
// which unwraps to ErrParse.
func parseError(message string) error {
	return fmt.Errorf("%w: %s", ErrParse, message)
}

// calendarLookupError returns a calendar lookup error for the date,
// which unwraps to ErrCalendarLookup.
func calendarLookupError(date time.Time) error {
	return fmt.Errorf("%w: %s", ErrCalendarLookup, date.Format(dateLayout))
}

// insufficientBusinessDaysError returns an insufficient business days error
// with a custom error message, which unwraps to ErrInsufficientBusinessDays.
func insufficientBusinessDaysError(message string) error {
	return fmt.Errorf("%w: %s", ErrInsufficientBusinessDays, message)
}

// triggerExhaustedError returns a trigger exhausted error with a custom
// error message, which unwraps to ErrTriggerExhausted.
func triggerExhaustedError(message string) error {
	return fmt.Errorf("%w: %s", ErrTriggerExhausted, message)
}
