package daterule_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/reugn/go-daterule/daterule"
	"github.com/reugn/go-daterule/internal/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// eachDay calls fn for every day from 2019-12-25 through 2024-03-05.
func eachDay(fn func(time.Time)) {
	for d := date(2019, 12, 25); !d.After(date(2024, 3, 5)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func mustMatch(t *testing.T, d time.Time, expr string) bool {
	t.Helper()
	ok, err := daterule.Matches(d, expr, nil)
	if err != nil {
		t.Fatalf("%s on %s: %v", expr, d.Format(time.DateOnly), err)
	}
	return ok
}

func TestFullWildcard(t *testing.T) {
	t.Parallel()
	eachDay(func(d time.Time) {
		assert.True(t, mustMatch(t, d, "y/m/d"))
	})
}

func TestYearToken(t *testing.T) {
	t.Parallel()
	for _, year := range []int{2019, 2020, 2021, 2022, 2023, 2024} {
		expr := fmt.Sprintf("%d/m/d", year)
		eachDay(func(d time.Time) {
			assert.Equal(t, mustMatch(t, d, expr), d.Year() == year)
		})
	}
}

func TestMonthAbbreviations(t *testing.T) {
	t.Parallel()
	abbr := []string{"jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec"}
	for i, a := range abbr {
		month := time.Month(i + 1)
		named := "y/" + a + "/d"
		numeric := fmt.Sprintf("y/%d/d", i+1)
		eachDay(func(d time.Time) {
			assert.Equal(t, mustMatch(t, d, named), d.Month() == month)
			assert.Equal(t, mustMatch(t, d, numeric), d.Month() == month)
		})
	}
}

func TestWeekdayAbbreviations(t *testing.T) {
	t.Parallel()
	weekdays := map[string]time.Weekday{
		"mon": time.Monday,
		"tue": time.Tuesday,
		"wed": time.Wednesday,
		"thr": time.Thursday,
		"thu": time.Thursday,
		"fri": time.Friday,
		"sat": time.Saturday,
		"sun": time.Sunday,
	}
	for abbr, weekday := range weekdays {
		expr := "y/m/" + abbr
		eachDay(func(d time.Time) {
			assert.Equal(t, mustMatch(t, d, expr), d.Weekday() == weekday)
		})
	}
}

func TestDayOfMonth(t *testing.T) {
	t.Parallel()
	for _, day := range []int{1, 15, 29, 31} {
		expr := fmt.Sprintf("y/m/%d", day)
		eachDay(func(d time.Time) {
			assert.Equal(t, mustMatch(t, d, expr), d.Day() == day)
		})
	}
}

func TestOrWithinSegment(t *testing.T) {
	t.Parallel()
	eachDay(func(d time.Time) {
		assert.Equal(t, mustMatch(t, d, "y/jan,feb/d"),
			d.Month() == time.January || d.Month() == time.February)
		assert.Equal(t, mustMatch(t, d, "2020,2022/m/d"),
			d.Year() == 2020 || d.Year() == 2022)
		assert.Equal(t, mustMatch(t, d, "y/m/sat,sun"),
			d.Weekday() == time.Saturday || d.Weekday() == time.Sunday)
	})
}

func TestAndAcrossSegments(t *testing.T) {
	t.Parallel()
	// 2021-02-05 is a Friday
	d := date(2021, 2, 5)
	assert.True(t, mustMatch(t, d, "2021/feb/d"))
	assert.True(t, mustMatch(t, d, "2021/feb/fri"))
	assert.False(t, mustMatch(t, d, "2021/feb/sat"))
	assert.False(t, mustMatch(t, d, "2022/feb/fri"))
	assert.False(t, mustMatch(t, d, "2021/mar/fri"))

	eachDay(func(d time.Time) {
		assert.Equal(t, mustMatch(t, d, "2021,2022/feb,mar/sat"),
			(d.Year() == 2021 || d.Year() == 2022) &&
				(d.Month() == time.February || d.Month() == time.March) &&
				d.Weekday() == time.Saturday)
	})
}

func TestMatchYear(t *testing.T) {
	t.Parallel()
	d := date(2021, 6, 15)

	ok, err := daterule.MatchYear(d, "y")
	assert.IsNil(t, err)
	assert.True(t, ok)

	ok, err = daterule.MatchYear(d, "2021")
	assert.IsNil(t, err)
	assert.True(t, ok)

	ok, err = daterule.MatchYear(d, "2020")
	assert.IsNil(t, err)
	assert.False(t, ok)

	_, err = daterule.MatchYear(d, "21y")
	assert.ErrorIs(t, err, daterule.ErrInvalidToken)
}

func TestMatchMonth(t *testing.T) {
	t.Parallel()
	d := date(2021, 6, 15)
	tests := []struct {
		token    string
		expected bool
	}{
		{"m", true},
		{"6", true},
		{"06", true},
		{"jun", true},
		{"7", false},
		{"jul", false},
	}
	for _, tt := range tests {
		ok, err := daterule.MatchMonth(d, tt.token)
		assert.IsNil(t, err)
		assert.Equal(t, ok, tt.expected)
	}

	_, err := daterule.MatchMonth(d, "june")
	assert.ErrorIs(t, err, daterule.ErrInvalidToken)
}

func TestMatchDay(t *testing.T) {
	t.Parallel()
	// 2021-06-15 is a Tuesday and the 11th weekday of the month
	d := date(2021, 6, 15)
	tests := []struct {
		token    string
		expected bool
	}{
		{"d", true},
		{"15", true},
		{"16", false},
		{"tue", true},
		{"wed", false},
		{"t11", true},
		{"t10", false},
	}
	for _, tt := range tests {
		ok, err := daterule.MatchDay(d, tt.token, nil)
		assert.IsNil(t, err)
		assert.Equal(t, ok, tt.expected)
	}

	_, err := daterule.MatchDay(d, "x1", nil)
	assert.ErrorIs(t, err, daterule.ErrInvalidToken)
}
