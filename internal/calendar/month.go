package calendar

import (
	"fmt"
	"time"

	"github.com/ziadkadry99/digestview/internal/digest"
)

// Month is a displayed calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d digest.Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// Add returns the month n months away, wrapping years.
func (m Month) Add(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Prev returns the previous month.
func (m Month) Prev() Month { return m.Add(-1) }

// Next returns the following month.
func (m Month) Next() Month { return m.Add(1) }

// FirstWeekday is the weekday index (0=Sunday) of the first of the month,
// which is also the number of leading blank cells.
func (m Month) FirstWeekday() int {
	return int(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Days returns the number of days in the month. Day zero of the following
// month normalizes to the last day of this one.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the given day of the month.
func (m Month) Date(day int) digest.Date {
	return digest.Date{Year: m.Year, Month: m.Month, Day: day}
}

// Label renders the month heading, e.g. "October 2026".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Key returns the YYYY-MM form.
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Contains reports whether the date string falls inside the month.
func (m Month) Contains(date string) bool {
	d, err := digest.ParseDate(date)
	if err != nil {
		return false
	}
	return d.Year == m.Year && d.Month == m.Month
}
