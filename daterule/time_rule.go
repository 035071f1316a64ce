package daterule

import (
	"fmt"
	"strings"
	"time"
)

// TimeRule is a parsed "<hour>:<minute>:<second>" time-of-day expression.
// Each field is a comma-separated list of tokens: the wildcard ("h", "m"
// or "s"), a decimal value, or a step such as "2h", "15m" or "30s" that
// matches values divisible by the step.
type TimeRule struct {
	fields [3][]token
}

// ParseTimeRule parses a time-of-day expression.
func ParseTimeRule(expr string) (*TimeRule, error) {
	parts := strings.Split(expr, ":")
	if len(parts) != 3 {
		return nil, parseError(fmt.Sprintf("%q has %d time fields, expected 3",
			expr, len(parts)))
	}

	var rule TimeRule
	for i, part := range parts {
		tokens, err := parseSegment(FieldHour+Field(i), part, false)
		if err != nil {
			return nil, err
		}
		rule.fields[i] = tokens
	}
	return &rule, nil
}

// Match reports whether the time of day of t satisfies the rule.
func (r *TimeRule) Match(t time.Time) bool {
	hour, minute, second := t.Clock()
	values := [3]int{hour, minute, second}
	for i, tokens := range r.fields {
		if !matchClockField(values[i], tokens) {
			return false
		}
	}
	return true
}

// String returns the time rule expression.
func (r *TimeRule) String() string {
	parts := make([]string, len(r.fields))
	for i, tokens := range r.fields {
		raw := make([]string, len(tokens))
		for j, tok := range tokens {
			raw[j] = tok.raw
		}
		parts[i] = strings.Join(raw, ",")
	}
	return strings.Join(parts, ":")
}

func matchClockField(value int, tokens []token) bool {
	for _, t := range tokens {
		switch t.kind {
		case tokenAny:
			return true
		case tokenNumber:
			if value == t.value {
				return true
			}
		case tokenStep:
			if value%t.value == 0 {
				return true
			}
		}
	}
	return false
}
