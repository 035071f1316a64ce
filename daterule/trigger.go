package daterule

import (
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/reugn/go-daterule/calendar"
)

// defaultHorizon is the number of days a RuleTrigger searches ahead for a
// fire time. It spans the longest gap between leap days.
const defaultHorizon = 366 * 9

// Trigger computes fire times for a recurring schedule.
type Trigger interface {
	// NextFireTime returns the next fire time in Unix nanoseconds after prev.
	NextFireTime(prev int64) (int64, error)

	// Description returns the description of the Trigger.
	Description() string
}

// RuleTrigger fires at the times of a cron expression on the dates that
// satisfy a date rule, e.g. at 09:30 on the first business day of each
// month with "y/m/t1" and "30 9 * * *".
type RuleTrigger struct {
	rule     *Rule
	expr     *cronexpr.Expression
	cron     string
	matcher  *Matcher
	location *time.Location
	horizon  int
}

var _ Trigger = (*RuleTrigger)(nil)

// TriggerOption configures a [RuleTrigger].
type TriggerOption func(*RuleTrigger)

// WithLocation sets the location fire times are computed in.
// The default is UTC.
func WithLocation(location *time.Location) TriggerOption {
	return func(t *RuleTrigger) {
		if location != nil {
			t.location = location
		}
	}
}

// WithHorizon sets the number of days searched for the next fire time.
func WithHorizon(days int) TriggerOption {
	return func(t *RuleTrigger) {
		if days > 0 {
			t.horizon = days
		}
	}
}

// WithTriggerMatcher sets the matcher evaluating the date rule, e.g. to
// use a business day calendar.
func WithTriggerMatcher(m *Matcher) TriggerOption {
	return func(t *RuleTrigger) {
		if m != nil {
			t.matcher = m
		}
	}
}

// NewRuleTrigger returns a new [RuleTrigger] for the date rule expression
// and the cron time expression.
func NewRuleTrigger(dateExpr, cronExpr string, opts ...TriggerOption) (*RuleTrigger, error) {
	trigger := &RuleTrigger{
		cron:     cronExpr,
		matcher:  NewMatcher(),
		location: time.UTC,
		horizon:  defaultHorizon,
	}
	for _, opt := range opts {
		opt(trigger)
	}

	rule, err := trigger.matcher.Parse(dateExpr)
	if err != nil {
		return nil, err
	}
	expr, err := cronexpr.Parse(cronExpr)
	if err != nil {
		return nil, parseError(fmt.Sprintf("cron expression %q: %s", cronExpr, err))
	}
	trigger.rule = rule
	trigger.expr = expr
	return trigger, nil
}

// NewCalendarRuleTrigger is shorthand for a [RuleTrigger] resolving
// business days with cal.
func NewCalendarRuleTrigger(dateExpr, cronExpr string, cal calendar.Calendar,
	opts ...TriggerOption) (*RuleTrigger, error) {
	opts = append([]TriggerOption{WithTriggerMatcher(NewMatcher(WithCalendar(cal)))}, opts...)
	return NewRuleTrigger(dateExpr, cronExpr, opts...)
}

// NextFireTime returns the next time at which the RuleTrigger is scheduled
// to fire, in Unix nanoseconds.
func (t *RuleTrigger) NextFireTime(prev int64) (int64, error) {
	next, err := t.Next(time.Unix(0, prev))
	if err != nil {
		return 0, err
	}
	return next.UnixNano(), nil
}

// Next returns the first fire time strictly after from.
func (t *RuleTrigger) Next(from time.Time) (time.Time, error) {
	current := from.In(t.location)
	year, month, day := current.Date()
	limit := time.Date(year, month, day+t.horizon, 0, 0, 0, 0, t.location)

	for {
		next := t.expr.Next(current)
		if next.IsZero() || !next.Before(limit) {
			return time.Time{}, triggerExhaustedError(
				fmt.Sprintf("no fire time within %d days of %s", t.horizon,
					from.Format(time.RFC3339)))
		}

		ok, err := t.matcher.MatchRule(next, t.rule)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			return next, nil
		}

		// skip the rest of a non-matching day
		y, m, d := next.Date()
		current = time.Date(y, m, d+1, 0, 0, 0, 0, t.location).Add(-time.Nanosecond)
	}
}

// Description returns the description of the trigger.
func (t *RuleTrigger) Description() string {
	return fmt.Sprintf("RuleTrigger::%s::%s::%s", t.rule, t.cron, t.location)
}
