package generation

import "time"

// DateLayout is the ISO day format used for every generated date.
const DateLayout = "2006-01-02"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Fixed sampling windows for root-level entities. Child entities sample
// inside their parent's own window instead.
var (
	orgWindowStart  = day(2015, time.January, 1)
	orgWindowEnd    = day(2020, time.December, 31)
	teamWindowStart = day(2020, time.January, 1)
	teamWindowEnd   = day(2024, time.December, 31)
	userWindowStart = day(2021, time.January, 1)
	userWindowEnd   = day(2025, time.December, 31)
	workWindowStart = day(2021, time.January, 1)
	workWindowEnd   = day(2025, time.January, 1)
	startDateEnd    = day(2025, time.June, 30)
	horizonEnd      = day(2025, time.December, 31)
)

// DateBetween returns a uniform day between start and end inclusive, at
// day granularity. Inverted bounds are swapped.
func (s *Source) DateBetween(start, end time.Time) time.Time {
	if start.After(end) {
		start, end = end, start
	}
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.Between(0, days))
}

// Reconcile corrects a (created, due, completed) date triple into causal
// order. created is authoritative and never changed. A due date before
// created is pushed to created plus a uniform 1-7 day offset. A completed
// date before its reference (the corrected due date when present,
// otherwise created) is pushed past that reference by a uniform 1-7 day
// offset. The due correction must land before the completed check so the
// corrected due date, not the original invalid one, anchors the reference.
// Absent fields stay absent; inputs are not mutated. Applying Reconcile to
// its own output draws no randomness and returns it unchanged.
func Reconcile(s *Source, created time.Time, due, completed *time.Time) (time.Time, *time.Time, *time.Time) {
	var outDue, outCompleted *time.Time

	if due != nil {
		d := *due
		if d.Before(created) {
			d = created.AddDate(0, 0, s.Between(1, 7))
		}
		outDue = &d
	}

	if completed != nil {
		c := *completed
		reference := created
		if outDue != nil {
			reference = *outDue
		}
		if c.Before(reference) {
			c = reference.AddDate(0, 0, s.Between(1, 7))
		}
		outCompleted = &c
	}

	return created, outDue, outCompleted
}
