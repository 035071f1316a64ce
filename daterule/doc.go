// Package daterule evaluates compact calendar rules of the form
// "<year>/<month>/<day>".
//
// Each segment is a comma-separated list of tokens. Tokens within a segment
// are ORed; the three segments are ANDed.
//
//	year:  y | <year>
//	month: m | <month> | jan..dec
//	day:   d | <day> | mon,tue,wed,thr,fri,sat,sun | t<N>
//
// The t<N> token selects the Nth business day of the month. Business days
// come from a [calendar.Calendar]; without one, Monday through Friday are
// business days.
//
//	// every Saturday of February or March 2021 and 2022
//	ok, err := daterule.Matches(date, "2021,2022/feb,mar/sat", nil)
//
//	// the first business day of every month in 2022
//	for date, err := range daterule.MatchingDates("2022/m/t1", from, to, cal) {
//		...
//	}
//
// Matching is pure: a parsed [Rule] and a [Matcher] may be shared between
// goroutines as long as the calendar is not mutated.
package daterule
