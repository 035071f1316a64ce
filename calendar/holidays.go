package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// Holidays adapts a rule-based holiday calendar to the [Calendar]
// interface. Holiday rules are defined for every year, so it covers all
// dates.
type Holidays struct {
	calendar *cal.BusinessCalendar
}

var _ Calendar = (*Holidays)(nil)

// NewHolidays returns a [Holidays] calendar observing the given holidays on
// top of a Monday through Friday work week.
func NewHolidays(holidays ...*cal.Holiday) *Holidays {
	calendar := cal.NewBusinessCalendar()
	calendar.AddHoliday(holidays...)
	return &Holidays{calendar: calendar}
}

// NewUSFederal returns a [Holidays] calendar observing the US federal
// holidays.
func NewUSFederal() *Holidays {
	return NewHolidays(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
}

// IsBusinessDay implements [Calendar].
func (h *Holidays) IsBusinessDay(date time.Time) bool {
	return h.calendar.IsWorkday(date)
}

// Covers implements [Calendar].
func (h *Holidays) Covers(time.Time) bool {
	return true
}

// IsHoliday reports whether the date is an observed holiday and returns
// the holiday name.
func (h *Holidays) IsHoliday(date time.Time) (bool, string) {
	_, observed, holiday := h.calendar.IsHoliday(date)
	if !observed || holiday == nil {
		return false, ""
	}
	return true, holiday.Name
}
