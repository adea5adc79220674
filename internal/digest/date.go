package digest

import (
	"fmt"
	"time"
)

// Layout is the canonical digest date form, used both as display key and
// fetch key.
const Layout = "2006-01-02"

// Date is a local calendar day. It carries no time of day and no zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the local calendar day of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String returns the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of d in the local zone.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays returns d shifted by n calendar days, normalizing across month
// and year boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.Local))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Display renders d the way the recent-dates list shows it: "Sat, Oct 17, 2026".
func (d Date) Display() string {
	return d.Time().Format("Mon, Jan 2, 2006")
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// DisplayString formats a canonical date string for display, returning the
// input unchanged when it does not parse.
func DisplayString(s string) string {
	d, err := ParseDate(s)
	if err != nil {
		return s
	}
	return d.Display()
}
