package daterule

import (
	"fmt"
	"strconv"
	"time"
)

// Field identifies the segment a token belongs to.
type Field int

// Rule fields.
const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
)

var fieldNames = [...]string{"year", "month", "day", "hour", "minute", "second"}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// wildcards per field
var wildcards = [...]string{"y", "m", "d", "h", "m", "s"}

type tokenKind int

const (
	tokenAny tokenKind = iota
	tokenNumber
	tokenMonth
	tokenWeekday
	tokenBusinessDay
	tokenStep
	tokenInvalid
)

// token is a classified rule atom. value holds the year, month, day of
// month, weekday index (Monday=0), business day ordinal or step,
// depending on kind.
type token struct {
	kind  tokenKind
	value int
	raw   string
}

var (
	monthAbbr = map[string]time.Month{
		"jan": time.January,
		"feb": time.February,
		"mar": time.March,
		"apr": time.April,
		"may": time.May,
		"jun": time.June,
		"jul": time.July,
		"aug": time.August,
		"sep": time.September,
		"oct": time.October,
		"nov": time.November,
		"dec": time.December,
	}

	// weekdayAbbr maps to the Monday=0 weekday index.
	weekdayAbbr = map[string]int{
		"mon": 0,
		"tue": 1,
		"wed": 2,
		"thr": 3,
		"thu": 3,
		"fri": 4,
		"sat": 5,
		"sun": 6,
	}

	fieldLimits = [...]struct{ min, max int }{
		FieldYear:   {0, 9999},
		FieldMonth:  {1, 12},
		FieldDay:    {1, 31},
		FieldHour:   {0, 23},
		FieldMinute: {0, 59},
		FieldSecond: {0, 59},
	}
)

// weekdayIndex returns the Monday=0 index of the weekday.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// classify parses a raw token of the given field.
func classify(field Field, raw string) (token, error) {
	if raw == wildcards[field] {
		return token{kind: tokenAny, raw: raw}, nil
	}
	if n, ok := atoi(raw); ok {
		limits := fieldLimits[field]
		if n < limits.min || n > limits.max {
			return token{}, &TokenError{Field: field, Token: raw}
		}
		return token{kind: tokenNumber, value: n, raw: raw}, nil
	}

	switch field {
	case FieldMonth:
		if month, ok := monthAbbr[raw]; ok {
			return token{kind: tokenMonth, value: int(month), raw: raw}, nil
		}
	case FieldDay:
		if index, ok := weekdayAbbr[raw]; ok {
			return token{kind: tokenWeekday, value: index, raw: raw}, nil
		}
		if len(raw) > 1 && raw[0] == 't' {
			if n, ok := atoi(raw[1:]); ok && n > 0 {
				return token{kind: tokenBusinessDay, value: n, raw: raw}, nil
			}
		}
	case FieldHour, FieldMinute, FieldSecond:
		unit := wildcards[field]
		if last := len(raw) - 1; last > 0 && raw[last:] == unit {
			if n, ok := atoi(raw[:last]); ok && n > 0 {
				return token{kind: tokenStep, value: n, raw: raw}, nil
			}
		}
	}
	return token{}, &TokenError{Field: field, Token: raw}
}

// atoi parses an unsigned decimal integer.
func atoi(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
