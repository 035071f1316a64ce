package daterule

import (
	"time"

	"github.com/reugn/go-daterule/calendar"
)

// MatchYear reports whether the date satisfies a single year token:
// "y" or a decimal year.
func MatchYear(date time.Time, tok string) (bool, error) {
	t, err := classify(FieldYear, tok)
	if err != nil {
		return false, err
	}
	return matchYear(date, t), nil
}

// MatchMonth reports whether the date satisfies a single month token:
// "m", a decimal month or a three-letter abbreviation "jan".."dec".
func MatchMonth(date time.Time, tok string) (bool, error) {
	t, err := classify(FieldMonth, tok)
	if err != nil {
		return false, err
	}
	return matchMonth(date, t), nil
}

// MatchDay reports whether the date satisfies a single day token: "d",
// a decimal day of month, a weekday abbreviation "mon".."sun" or "t<N>",
// the Nth business day of the date's month according to cal.
func MatchDay(date time.Time, tok string, cal calendar.Calendar) (bool, error) {
	t, err := classify(FieldDay, tok)
	if err != nil {
		return false, err
	}
	return matchDay(date, t, cal)
}

func matchYear(date time.Time, t token) bool {
	switch t.kind {
	case tokenAny:
		return true
	case tokenNumber:
		return date.Year() == t.value
	}
	return false
}

func matchMonth(date time.Time, t token) bool {
	switch t.kind {
	case tokenAny:
		return true
	case tokenNumber, tokenMonth:
		return int(date.Month()) == t.value
	}
	return false
}

func matchDay(date time.Time, t token, cal calendar.Calendar) (bool, error) {
	switch t.kind {
	case tokenAny:
		return true, nil
	case tokenNumber:
		return date.Day() == t.value, nil
	case tokenWeekday:
		return weekdayIndex(date) == t.value, nil
	case tokenBusinessDay:
		year, month, day := date.Date()
		nth, err := NthBusinessDay(year, month, t.value, cal)
		if err != nil {
			return false, err
		}
		return nth.Day() == day, nil
	}
	return false, nil
}
