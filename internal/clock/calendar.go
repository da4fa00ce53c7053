package clock

import "time"

// BoundaryReport says which calendar units differ between two instants.
// The booleans are independent: a 23:59→00:00 crossing sets both Hour and
// Day; a month or year change always implies a day change, never the
// reverse.
type BoundaryReport struct {
	Hour  bool
	Day   bool
	Month bool
	Year  bool
}

// CompareBoundaries reports which UTC calendar fields differ between prev
// and next. Comparisons are always on UTC fields so results do not depend
// on the host timezone. No ordering is imposed on the inputs: the report
// describes difference, not forward progress.
func CompareBoundaries(prev, next time.Time) BoundaryReport {
	pu, nu := prev.UTC(), next.UTC()
	py, pm, pd := pu.Date()
	ny, nm, nd := nu.Date()

	sameDate := py == ny && pm == nm && pd == nd
	return BoundaryReport{
		Hour:  !sameDate || pu.Hour() != nu.Hour(),
		Day:   !sameDate,
		Month: py != ny || pm != nm,
		Year:  py != ny,
	}
}

// CrossedBoundary projects CompareBoundaries onto a single unit. Only
// "hour" and "day" are recognized; any other unit returns false rather
// than failing (unknown input degrades to no-op).
func CrossedBoundary(prev, next time.Time, unit string) bool {
	r := CompareBoundaries(prev, next)
	switch unit {
	case "hour":
		return r.Hour
	case "day":
		return r.Day
	default:
		return false
	}
}
