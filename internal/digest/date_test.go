package digest

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-10-17")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year != 2026 || d.Month != time.October || d.Day != 17 {
		t.Errorf("ParseDate = %+v", d)
	}
	if got := d.String(); got != "2026-10-17" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "2026-13-01", "2026-02-30", "17/10/2026", "2026-1-5"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2026-10-17", 0, "2026-10-17"},
		{"2026-10-17", -1, "2026-10-16"},
		{"2026-10-01", -1, "2026-09-30"},
		{"2026-01-01", -1, "2025-12-31"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2025-03-01", -1, "2025-02-28"},
		{"2026-12-31", 1, "2027-01-01"},
		{"2026-10-17", -29, "2026-09-18"},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.from)
		if err != nil {
			t.Fatal(err)
		}
		if got := d.AddDays(tt.n).String(); got != tt.want {
			t.Errorf("%s.AddDays(%d) = %s, want %s", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	d := Date{Year: 2026, Month: time.October, Day: 17}
	if got := d.Display(); got != "Sat, Oct 17, 2026" {
		t.Errorf("Display() = %q", got)
	}
	if got := DisplayString("not-a-date"); got != "not-a-date" {
		t.Errorf("DisplayString passthrough = %q", got)
	}
}

func TestWeekday(t *testing.T) {
	d := Date{Year: 2026, Month: time.October, Day: 1}
	if got := d.Weekday(); got != time.Thursday {
		t.Errorf("Weekday() = %v, want Thursday", got)
	}
}

func TestAvailableDedupesAndKeepsOrder(t *testing.T) {
	a := NewAvailable([]string{"2026-10-17", "2026-10-15", "2026-10-17", "2026-10-10"}, OriginIndex)
	want := []string{"2026-10-17", "2026-10-15", "2026-10-10"}
	got := a.Dates()
	if len(got) != len(want) {
		t.Fatalf("Dates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if newest, ok := a.Newest(); !ok || newest != "2026-10-17" {
		t.Errorf("Newest() = %q, %v", newest, ok)
	}
	if !a.Contains("2026-10-15") || a.Contains("2026-10-16") {
		t.Error("Contains mismatch")
	}
	if r := a.Recent(2); len(r) != 2 || r[1] != "2026-10-15" {
		t.Errorf("Recent(2) = %v", r)
	}
}

func TestAvailableEmpty(t *testing.T) {
	a := NewAvailable(nil, OriginProbe)
	if a.Len() != 0 {
		t.Errorf("Len() = %d", a.Len())
	}
	if _, ok := a.Newest(); ok {
		t.Error("Newest() on empty set should report false")
	}
	if r := a.Recent(10); r != nil {
		t.Errorf("Recent on empty = %v", r)
	}
}
