package daterule

import (
	"fmt"
	"strings"
)

// Rule is a parsed "<year>/<month>/<day>" expression. A Rule is immutable
// and safe to share between goroutines.
type Rule struct {
	segments [3][]token
}

// Parse parses a rule expression. Every token is validated against the
// grammar of its segment; an unrecognized token fails with a [*TokenError].
func Parse(expr string) (*Rule, error) {
	return parse(expr, false)
}

// ParseLenient parses a rule expression, keeping unrecognized tokens as
// tokens that never match. Structural errors still fail with ErrParse.
func ParseLenient(expr string) (*Rule, error) {
	return parse(expr, true)
}

// MustParse is like [Parse] but panics if the expression cannot be parsed.
func MustParse(expr string) *Rule {
	rule, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return rule
}

func parse(expr string, lenient bool) (*Rule, error) {
	segments := strings.Split(expr, "/")
	if len(segments) != 3 {
		return nil, parseError(fmt.Sprintf("%q has %d segments, expected 3",
			expr, len(segments)))
	}

	var rule Rule
	for i, segment := range segments {
		field := Field(i)
		tokens, err := parseSegment(field, segment, lenient)
		if err != nil {
			return nil, err
		}
		rule.segments[i] = tokens
	}
	return &rule, nil
}

func parseSegment(field Field, segment string, lenient bool) ([]token, error) {
	if segment == "" {
		return nil, parseError(fmt.Sprintf("empty %s segment", field))
	}
	raw := strings.Split(segment, ",")
	tokens := make([]token, 0, len(raw))
	for _, r := range raw {
		if r == "" {
			return nil, parseError(fmt.Sprintf("empty token in %s segment %q", field, segment))
		}
		tok, err := classify(field, r)
		if err != nil {
			if !lenient {
				return nil, err
			}
			tok = token{kind: tokenInvalid, raw: r}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// UsesBusinessDays reports whether the rule holds a t<N> day token, which
// makes matching consult a business day calendar.
func (r *Rule) UsesBusinessDays() bool {
	for _, tok := range r.segments[FieldDay] {
		if tok.kind == tokenBusinessDay {
			return true
		}
	}
	return false
}

// Tokens returns the raw tokens of the given date field.
func (r *Rule) Tokens(field Field) []string {
	if field < FieldYear || field > FieldDay {
		return nil
	}
	tokens := r.segments[field]
	raw := make([]string, len(tokens))
	for i, tok := range tokens {
		raw[i] = tok.raw
	}
	return raw
}

// String returns the rule expression.
func (r *Rule) String() string {
	segments := make([]string, len(r.segments))
	for i := range r.segments {
		segments[i] = strings.Join(r.Tokens(Field(i)), ",")
	}
	return strings.Join(segments, "/")
}
