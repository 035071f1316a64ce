// Package calendar provides business-day calendars consumed by the date rule
// matchers. A Calendar reports whether a date is a business day and which
// dates it is able to answer for. Backends range from the weekday fallback
// to immutable tables loaded from files or a SQL database, and holiday rule
// sets. Every backend is read-only after construction and safe for
// concurrent use.
package calendar

import (
	"errors"
	"time"
)

// Calendar is a read-only business-day lookup.
type Calendar interface {
	// IsBusinessDay reports whether the date is a business day.
	// The result is only meaningful for dates the calendar covers.
	IsBusinessDay(date time.Time) bool

	// Covers reports whether the calendar holds information for the date.
	Covers(date time.Time) bool
}

// Errors
var (
	ErrUnsupportedFormat = errors.New("unsupported calendar format")
	ErrInvalidEntry      = errors.New("invalid calendar entry")
)

// DateLayout is the textual date layout used by the file and SQL backends.
const DateLayout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar date, discarding the
// time of day and location.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// julianDate returns the julian day number of the calendar date of t.
func julianDate(t time.Time) int {
	year, m, day := t.Date()
	month := int(m)
	return day - 32075 + 1461*(year+4800+(month-14)/12)/4 + 367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}

// Weekdays is the fallback calendar: Monday through Friday are business
// days. It covers every date.
type Weekdays struct{}

var _ Calendar = Weekdays{}

// IsBusinessDay implements [Calendar].
func (Weekdays) IsBusinessDay(date time.Time) bool {
	return IsWeekday(date)
}

// Covers implements [Calendar].
func (Weekdays) Covers(time.Time) bool {
	return true
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	weekday := t.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}

// Bounded restricts the coverage of a calendar to the inclusive range
// [from, to].
type Bounded struct {
	cal      Calendar
	from, to int
}

var _ Calendar = (*Bounded)(nil)

// NewBounded returns a [Bounded] view of cal covering dates from through to.
func NewBounded(cal Calendar, from, to time.Time) *Bounded {
	return &Bounded{
		cal:  cal,
		from: julianDate(from),
		to:   julianDate(to),
	}
}

// IsBusinessDay implements [Calendar].
func (b *Bounded) IsBusinessDay(date time.Time) bool {
	return b.cal.IsBusinessDay(date)
}

// Covers implements [Calendar].
func (b *Bounded) Covers(date time.Time) bool {
	jd := julianDate(date)
	return jd >= b.from && jd <= b.to && b.cal.Covers(date)
}
