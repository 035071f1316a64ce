package daterule

import (
	"iter"
	"time"

	"github.com/reugn/go-daterule/calendar"
)

// MatchingDates returns the dates from start to end inclusive, in
// ascending order, that satisfy the rule expression. The sequence is lazy
// and may be ranged over any number of times; a parse or evaluation error
// is yielded once and ends the sequence.
func MatchingDates(expr string, start, end time.Time, cal calendar.Calendar) iter.Seq2[time.Time, error] {
	m := NewMatcher(WithCalendar(cal))
	rule, err := m.Parse(expr)
	if err != nil {
		return func(yield func(time.Time, error) bool) {
			yield(time.Time{}, err)
		}
	}
	return m.Dates(rule, start, end)
}

// Dates returns the dates from start to end inclusive that satisfy the
// rule. Only the calendar dates of start and end are used; yielded dates
// are midnight UTC. Stopping the iteration early requires no cleanup.
func (m *Matcher) Dates(rule *Rule, start, end time.Time) iter.Seq2[time.Time, error] {
	first, last := calendar.Day(start), calendar.Day(end)
	return func(yield func(time.Time, error) bool) {
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			ok, err := m.MatchRule(day, rule)
			if err != nil {
				yield(time.Time{}, err)
				return
			}
			if ok && !yield(day, nil) {
				return
			}
		}
	}
}

// CollectDates drains a date sequence into a slice, stopping at the first
// error.
func CollectDates(seq iter.Seq2[time.Time, error]) ([]time.Time, error) {
	var dates []time.Time
	for date, err := range seq {
		if err != nil {
			return dates, err
		}
		dates = append(dates, date)
	}
	return dates, nil
}
