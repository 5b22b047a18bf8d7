// Package period models one instance of a periodic note: a day, a week,
// a month, a quarter or a year.
package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind is the granularity of a periodic note.
type Kind string

const (
	Daily     Kind = "daily"
	Weekly    Kind = "weekly"
	Monthly   Kind = "monthly"
	Quarterly Kind = "quarterly"
	Yearly    Kind = "yearly"
)

// Kinds lists every Kind from the finest to the coarsest.
var Kinds = []Kind{Daily, Weekly, Monthly, Quarterly, Yearly}

var ErrUnknownKind = errors.New("unknown period kind")

// ParseKind accepts a kind name in any case, plus the short forms
// "day", "week", "month", "quarter" and "year".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Period is immutable once built. Date is the first instant of the period
// in the location of the date it was built from.
type Period struct {
	Kind Kind
	Date time.Time
}

// New returns the period of the given kind that contains t. Weeks start on
// weekStart.
func New(kind Kind, t time.Time, weekStart time.Weekday) (Period, error) {
	y, m, d := t.Date()
	loc := t.Location()
	var start time.Time
	switch kind {
	case Daily:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Weekly:
		offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
		start = time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	case Monthly:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Quarterly:
		start = time.Date(y, quarterStart(m), 1, 0, 0, 0, 0, loc)
	case Yearly:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return Period{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	return Period{Kind: kind, Date: start}, nil
}

func quarterStart(m time.Month) time.Month {
	return m - (m-1)%3
}

// Next returns the period directly after p.
func (p Period) Next() Period {
	return p.step(1)
}

// Prev returns the period directly before p.
func (p Period) Prev() Period {
	return p.step(-1)
}

func (p Period) step(n int) Period {
	y, m, d := p.Date.Date()
	loc := p.Date.Location()
	var next time.Time
	switch p.Kind {
	case Daily:
		next = time.Date(y, m, d+n, 0, 0, 0, 0, loc)
	case Weekly:
		next = time.Date(y, m, d+7*n, 0, 0, 0, 0, loc)
	case Monthly:
		next = time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, loc)
	case Quarterly:
		next = time.Date(y, m+time.Month(3*n), 1, 0, 0, 0, 0, loc)
	case Yearly:
		next = time.Date(y+n, time.January, 1, 0, 0, 0, 0, loc)
	default:
		next = p.Date
	}
	return Period{Kind: p.Kind, Date: next}
}

// Contains reports whether t falls inside p.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Date) && t.Before(p.Next().Date)
}

func (p Period) String() string {
	return string(p.Kind) + " " + p.Date.Format("2006-01-02")
}
