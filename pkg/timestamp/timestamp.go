// Package timestamp converts the textual timestamps kept by the intake store
// into points in time.
//
// Two layouts are accepted: "DD-MM-YY HH:MM:SS" and the date-only "DD-MM-YY",
// which stands for midnight of that day.
package timestamp

import (
	"fmt"
	"strings"
	"time"

	errorvalues "github.com/limbo/hydration/internal/error_values"
)

const (
	DateTimeLayout = "02-01-06 15:04:05"
	DateLayout     = "02-01-06"

	// Strings up to this length are read as date-only by the length strategy.
	dateOnlyMaxLen = 10
)

type Strategy string

const (
	// StrategyLength picks the layout by string length. Kept for compatibility
	// with rows written by older clients: a date-only value longer than ten
	// characters, or a date+time value shorter than that, is rejected.
	StrategyLength Strategy = "length"
	// StrategyFirstMatch tries date+time first, then date-only.
	StrategyFirstMatch Strategy = "first_match"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyLength:
		return StrategyLength, nil
	case StrategyFirstMatch:
		return StrategyFirstMatch, nil
	}
	return "", fmt.Errorf("unknown timestamp strategy %q", s)
}

type Parser struct {
	Strategy Strategy
}

// Default uses the length strategy.
var Default = Parser{Strategy: StrategyLength}

func NewParser(strategy Strategy) Parser {
	return Parser{Strategy: strategy}
}

// Parse returns the point in time held by s. Failures wrap
// errorvalues.ErrMalformedTimestamp and carry the offending value.
func (p Parser) Parse(s string) (time.Time, error) {
	if p.Strategy == StrategyFirstMatch {
		for _, layout := range []string{DateTimeLayout, DateLayout} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, malformed(s)
	}
	layout := DateTimeLayout
	if len(s) <= dateOnlyMaxLen {
		layout = DateLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, malformed(s)
	}
	return t, nil
}

func Parse(s string) (time.Time, error) {
	return Default.Parse(s)
}

// DateOf returns the calendar date of t as midnight UTC, so that two dates
// one day apart always differ by exactly 24h.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Format renders t the way the store keeps it.
func Format(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDate reads a date-only value, e.g. a reference date given by a client.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, malformed(s)
	}
	return t, nil
}

func malformed(s string) error {
	return fmt.Errorf("%w: %q", errorvalues.ErrMalformedTimestamp, s)
}
