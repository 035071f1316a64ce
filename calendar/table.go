package calendar

import (
	"fmt"
	"time"
)

// Entry is a single calendar day.
type Entry struct {
	Date        time.Time
	BusinessDay bool
}

// Table is an immutable in-memory calendar. It covers exactly the dates it
// was built with.
type Table struct {
	days     map[int]bool
	from, to time.Time
}

var _ Calendar = (*Table)(nil)

// NewTable builds a [Table] from entries. A date listed twice with
// conflicting flags is rejected.
func NewTable(entries []Entry) (*Table, error) {
	table := &Table{days: make(map[int]bool, len(entries))}
	for i, entry := range entries {
		key := julianDate(entry.Date)
		if flag, ok := table.days[key]; ok && flag != entry.BusinessDay {
			return nil, fmt.Errorf("%w: conflicting flags for %s",
				ErrInvalidEntry, entry.Date.Format(DateLayout))
		}
		table.days[key] = entry.BusinessDay

		day := Day(entry.Date)
		if i == 0 || day.Before(table.from) {
			table.from = day
		}
		if i == 0 || day.After(table.to) {
			table.to = day
		}
	}
	return table, nil
}

// IsBusinessDay implements [Calendar]. Dates not in the table are reported
// as non-business days.
func (t *Table) IsBusinessDay(date time.Time) bool {
	return t.days[julianDate(date)]
}

// Covers implements [Calendar].
func (t *Table) Covers(date time.Time) bool {
	_, ok := t.days[julianDate(date)]
	return ok
}

// Len returns the number of days in the table.
func (t *Table) Len() int {
	return len(t.days)
}

// Range returns the earliest and latest dates of the table.
// Both are zero for an empty table.
func (t *Table) Range() (from, to time.Time) {
	return t.from, t.to
}

// Entries returns the table contents ordered by date.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.days))
	if len(t.days) == 0 {
		return entries
	}
	for day := t.from; !day.After(t.to); day = day.AddDate(0, 0, 1) {
		if flag, ok := t.days[julianDate(day)]; ok {
			entries = append(entries, Entry{Date: day, BusinessDay: flag})
		}
	}
	return entries
}

// FromCalendar snapshots cal into a [Table] for the inclusive range
// [from, to], skipping dates cal does not cover.
func FromCalendar(cal Calendar, from, to time.Time) *Table {
	var entries []Entry
	for day := Day(from); !day.After(Day(to)); day = day.AddDate(0, 0, 1) {
		if cal.Covers(day) {
			entries = append(entries, Entry{Date: day, BusinessDay: cal.IsBusinessDay(day)})
		}
	}
	// entries hold unique dates, so NewTable cannot fail
	table, _ := NewTable(entries)
	return table
}
