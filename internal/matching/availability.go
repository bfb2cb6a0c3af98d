package matching

import "campus-teamup/internal/model"

// OverlapHours computes the effective weekly overlap between two
// availability windows, in hours.
//
// The clock-time intersection is multiplied by the number of day-classes
// (weekday, weekend) both windows share, so overlap available on both
// day-classes counts double. This is a deliberate heuristic weight, not a
// per-day calendar simulation. Windows that fail to parse or are
// non-positive-length yield 0, as do windows with no day-class in common.
func OverlapHours(a, b model.Availability) float64 {
	aStart, okAS := ParseClockTime(a.StartTime)
	aEnd, okAE := ParseClockTime(a.EndTime)
	bStart, okBS := ParseClockTime(b.StartTime)
	bEnd, okBE := ParseClockTime(b.EndTime)

	if !okAS || !okAE || !okBS || !okBE {
		return 0
	}
	if aEnd <= aStart || bEnd <= bStart {
		return 0
	}

	overlapMins := min(aEnd, bEnd) - max(aStart, bStart)
	if overlapMins < 0 {
		overlapMins = 0
	}

	multiplier := 0
	if a.Weekdays && b.Weekdays {
		multiplier++
	}
	if a.Weekends && b.Weekends {
		multiplier++
	}

	return float64(overlapMins*multiplier) / 60
}
