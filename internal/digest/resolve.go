package digest

import (
	"context"
	"log"
)

// DefaultProbeDays is how far back the fallback probe looks.
const DefaultProbeDays = 30

// ProbeFunc observes each probe step: the 1-based step, the total number of
// steps, the probed date and whether it exists.
type ProbeFunc func(step, total int, date Date, found bool)

// Resolver determines the available-dates set for a Source.
type Resolver struct {
	Source    Source
	ProbeDays int
	OnProbe   ProbeFunc
	// ForceProbe skips the index and always probes.
	ForceProbe bool
}

// Resolve returns the available-dates set. The index is used verbatim when
// it can be fetched and decoded; otherwise the most recent ProbeDays days
// ending at today are probed one by one, newest first. Errors never escape:
// an unreachable host yields an empty set.
func (r *Resolver) Resolve(ctx context.Context, today Date) *Available {
	if !r.ForceProbe {
		dates, err := r.Source.Index(ctx)
		if err == nil {
			return NewAvailable(dates, OriginIndex)
		}
		log.Printf("resolve: no usable index (%v), probing recent days", err)
	}
	return NewAvailable(r.probe(ctx, today), OriginProbe)
}

func (r *Resolver) probe(ctx context.Context, today Date) []string {
	days := r.ProbeDays
	if days <= 0 {
		days = DefaultProbeDays
	}

	var found []string
	for i := 0; i < days; i++ {
		date := today.AddDays(-i)
		ok, err := r.Source.Exists(ctx, date)
		if err != nil {
			log.Printf("resolve: probe %s: %v", date, err)
			ok = false
		}
		if ok {
			found = append(found, date.String())
		}
		if r.OnProbe != nil {
			r.OnProbe(i+1, days, date, ok)
		}
	}
	return found
}

// Resolve is a convenience wrapper around Resolver with default settings.
func Resolve(ctx context.Context, src Source, today Date, probeDays int) *Available {
	r := &Resolver{Source: src, ProbeDays: probeDays}
	return r.Resolve(ctx, today)
}
