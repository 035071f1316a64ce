package daterule

import (
	"time"

	"github.com/reugn/go-daterule/calendar"
	"github.com/reugn/go-daterule/logger"
)

// Matcher evaluates rule expressions against dates. A Matcher holds only
// its configuration and may be used concurrently.
type Matcher struct {
	calendar calendar.Calendar
	lenient  bool
	logger   logger.Logger
}

// MatcherOption configures a [Matcher].
type MatcherOption func(*Matcher)

// WithCalendar sets the business day calendar used to resolve t<N> day
// tokens. Without a calendar Monday through Friday are business days.
func WithCalendar(cal calendar.Calendar) MatcherOption {
	return func(m *Matcher) {
		m.calendar = cal
	}
}

// WithLenient makes the matcher treat unrecognized tokens as non-matching
// instead of failing with ErrInvalidToken. Every evaluated invalid token
// is logged at warn level.
func WithLenient(lenient bool) MatcherOption {
	return func(m *Matcher) {
		m.lenient = lenient
	}
}

// WithLogger sets the matcher logger.
func WithLogger(l logger.Logger) MatcherOption {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMatcher returns a new [Matcher] configured with opts.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{logger: logger.NoOpLogger{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Matches reports whether the date satisfies the rule expression, using
// cal to resolve business days. It is shorthand for a strict [Matcher].
func Matches(date time.Time, expr string, cal calendar.Calendar) (bool, error) {
	return NewMatcher(WithCalendar(cal)).Match(date, expr)
}

// Parse parses expr according to the matcher mode.
func (m *Matcher) Parse(expr string) (*Rule, error) {
	if m.lenient {
		return ParseLenient(expr)
	}
	return Parse(expr)
}

// Match reports whether the date satisfies the rule expression.
func (m *Matcher) Match(date time.Time, expr string) (bool, error) {
	rule, err := m.Parse(expr)
	if err != nil {
		return false, err
	}
	return m.MatchRule(date, rule)
}

// MatchRule reports whether the date satisfies the rule. Tokens within a
// segment are ORed and segments are ANDed. Evaluation stops at the first
// segment that does not match, so a failing year skips the month and day
// segments along with their calendar lookups.
func (m *Matcher) MatchRule(date time.Time, rule *Rule) (bool, error) {
	for i, tokens := range rule.segments {
		ok, err := m.matchSegment(date, Field(i), tokens)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (m *Matcher) matchSegment(date time.Time, field Field, tokens []token) (bool, error) {
	for _, t := range tokens {
		ok, err := m.matchToken(date, field, t)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (m *Matcher) matchToken(date time.Time, field Field, t token) (bool, error) {
	if t.kind == tokenInvalid {
		if !m.lenient {
			return false, &TokenError{Field: field, Token: t.raw}
		}
		m.logger.Warn("Invalid rule token", "field", field.String(), "token", t.raw)
		return false, nil
	}

	switch field {
	case FieldYear:
		return matchYear(date, t), nil
	case FieldMonth:
		return matchMonth(date, t), nil
	default:
		ok, err := matchDay(date, t, m.calendar)
		if err == nil && t.kind == tokenBusinessDay {
			m.logger.Trace("Resolved business day", "token", t.raw,
				"date", date.Format(dateLayout), "match", ok)
		}
		return ok, err
	}
}
