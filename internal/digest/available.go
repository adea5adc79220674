package digest

// Origin records how an available-dates set was obtained.
type Origin string

const (
	OriginIndex Origin = "index"
	OriginProbe Origin = "probe"
)

// Available is the ordered, duplicate-free set of date strings known to
// have a digest. It is read-only once built.
type Available struct {
	dates  []string
	set    map[string]struct{}
	origin Origin
}

// NewAvailable builds a set from dates in the given order. Later duplicates
// of a date string are dropped.
func NewAvailable(dates []string, origin Origin) *Available {
	a := &Available{
		dates:  make([]string, 0, len(dates)),
		set:    make(map[string]struct{}, len(dates)),
		origin: origin,
	}
	for _, d := range dates {
		if _, dup := a.set[d]; dup {
			continue
		}
		a.set[d] = struct{}{}
		a.dates = append(a.dates, d)
	}
	return a
}

// Dates returns a copy of the dates in index order.
func (a *Available) Dates() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.dates...)
}

// Contains reports whether date is in the set.
func (a *Available) Contains(date string) bool {
	if a == nil {
		return false
	}
	_, ok := a.set[date]
	return ok
}

// Len returns the number of dates.
func (a *Available) Len() int {
	if a == nil {
		return 0
	}
	return len(a.dates)
}

// Newest returns the first entry, which indexes list newest-first.
func (a *Available) Newest() (string, bool) {
	if a.Len() == 0 {
		return "", false
	}
	return a.dates[0], true
}

// Recent returns at most n leading entries.
func (a *Available) Recent(n int) []string {
	if a.Len() == 0 || n <= 0 {
		return nil
	}
	if n > len(a.dates) {
		n = len(a.dates)
	}
	return append([]string(nil), a.dates[:n]...)
}

// Origin reports whether the set came from the index or a probe.
func (a *Available) Origin() Origin {
	if a == nil {
		return ""
	}
	return a.origin
}
