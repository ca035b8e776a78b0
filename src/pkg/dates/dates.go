// Package dates resolves user-supplied date strings against a fixed list of
// accepted formats. The timezone is always an explicit parameter; nothing in
// here reads the process-wide default.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/tuumbleweed/xerr"
)

const (
	isoLayout  = "2006-01-02"
	longLayout = "2 January 2006"
)

// Accepted input formats, in priority order. First parse wins.
var layouts = []string{
	isoLayout,    // 2025-09-01
	"02/01/2006", // 01/09/2025 (day first)
}

// Resolved is a date in both machine and human form.
type Resolved struct {
	Time time.Time
	ISO  string // YYYY-MM-DD
	Long string // e.g. "1 September 2025"
}

func newResolved(t time.Time) Resolved {
	return Resolved{
		Time: t,
		ISO:  t.Format(isoLayout),
		Long: t.Format(longLayout),
	}
}

/*
Resolve parses raw against the accepted formats and falls back to "today" in
loc when nothing matches. It never fails: a garbled date still yields a
usable document date. Use ResolveStrict when a bad date should be rejected
instead.
*/
func Resolve(raw string, loc *time.Location) Resolved {
	resolved, e := ResolveStrict(raw, loc)
	if e != nil {
		return newResolved(today(loc))
	}
	return resolved
}

// ResolveStrict is the error-reporting variant: an empty or unparseable date
// comes back as an error instead of defaulting.
func ResolveStrict(raw string, loc *time.Location) (resolved Resolved, e *xerr.Error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		err := fmt.Errorf("date is empty")
		e = xerr.NewError(err, "resolve date", raw)
		return
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, trimmed, loc)
		if err == nil {
			return newResolved(t), nil
		}
	}

	err := fmt.Errorf("date %q matches none of the accepted formats", trimmed)
	e = xerr.NewError(err, "resolve date", trimmed)
	return
}

// AddDays derives a date n calendar days later, same location. Used for
// invoice due dates (+7).
func (r Resolved) AddDays(n int) Resolved {
	return newResolved(r.Time.AddDate(0, 0, n))
}

func today(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}
