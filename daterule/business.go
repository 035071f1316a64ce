package daterule

import (
	"fmt"
	"time"

	"github.com/reugn/go-daterule/calendar"
)

const dateLayout = "2006-01-02"

// maxNonBusinessRun is the longest run of consecutive non-business days
// AddBusinessDays walks through before giving up.
const maxNonBusinessRun = 366

// IsBusinessDay reports whether the date is a business day according to
// cal. A nil cal falls back to Monday through Friday. A date cal does not
// cover fails with ErrCalendarLookup.
func IsBusinessDay(date time.Time, cal calendar.Calendar) (bool, error) {
	if cal == nil {
		return calendar.IsWeekday(date), nil
	}
	if !cal.Covers(date) {
		return false, calendarLookupError(date)
	}
	return cal.IsBusinessDay(date), nil
}

// NthBusinessDay returns the nth (1-indexed) business day of the month.
// Counting starts on the 1st and stops at the end of the month; a month
// with fewer than n business days fails with ErrInsufficientBusinessDays.
func NthBusinessDay(year int, month time.Month, n int, cal calendar.Calendar) (time.Time, error) {
	if n < 1 {
		return time.Time{}, &TokenError{Field: FieldDay, Token: fmt.Sprintf("t%d", n)}
	}

	count := 0
	for day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); day.Month() == month; day = day.AddDate(0, 0, 1) {
		business, err := IsBusinessDay(day, cal)
		if err != nil {
			return time.Time{}, err
		}
		if !business {
			continue
		}
		count++
		if count == n {
			return day, nil
		}
	}

	return time.Time{}, insufficientBusinessDaysError(
		fmt.Sprintf("t%d in %04d-%02d has %d business days", n, year, int(month), count))
}

// AddBusinessDays moves n business days away from date: forward for a
// positive n and backward for a negative one. For n == 0 it returns date
// if it is a business day and the following business day otherwise.
// The time of day of date is discarded.
func AddBusinessDays(date time.Time, n int, cal calendar.Calendar) (time.Time, error) {
	day := calendar.Day(date)
	step, remaining := 1, n
	if n < 0 {
		step, remaining = -1, -n
	}

	if n == 0 {
		remaining = 1
	} else {
		day = day.AddDate(0, 0, step)
	}

	run := 0
	for {
		business, err := IsBusinessDay(day, cal)
		if err != nil {
			return time.Time{}, err
		}
		if business {
			run = 0
			remaining--
			if remaining == 0 {
				return day, nil
			}
		} else {
			run++
			if run > maxNonBusinessRun {
				return time.Time{}, insufficientBusinessDaysError(
					fmt.Sprintf("no business day within %d days of %s",
						maxNonBusinessRun, day.Format(dateLayout)))
			}
		}
		day = day.AddDate(0, 0, step)
	}
}
