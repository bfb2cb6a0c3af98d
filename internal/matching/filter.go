package matching

import "campus-teamup/internal/model"

// Failure reasons surfaced by the hard filter.
const (
	ReasonInsufficientOverlap = "Availability does not overlap enough."
	ReasonNoSharedInterest    = "No role or skill overlap."
)

// FilterResult is the outcome of the hard admissibility gate for one
// (source, candidate) pair. The overlap fields are populated even on
// failure so callers can report why a pair was rejected.
type FilterResult struct {
	OK           bool
	Reason       string
	OverlapHours float64
	RoleOverlap  []string
	SkillOverlap []string
}

// PassesHardFilters decides whether a candidate card may be scored and shown
// against the source card. Both checks must hold:
//
//   - time: effective overlap >= cfg.MinOverlapHours, or both cards are
//     weekend-available (two weekend people are assumed to find time);
//   - interest: at least one shared role or shared skill.
//
// Availability is checked before interest, so when both fail the reported
// reason is the availability one.
func PassesHardFilters(cfg Config, source, candidate model.IntentCard) FilterResult {
	roleOverlap := intersectTags(source.LookingForRoles, candidate.LookingForRoles)
	skillOverlap := intersectTags(source.RequiredSkills, candidate.RequiredSkills)
	overlapHours := OverlapHours(source.Availability, candidate.Availability)

	res := FilterResult{
		OverlapHours: overlapHours,
		RoleOverlap:  roleOverlap,
		SkillOverlap: skillOverlap,
	}

	weekendsMatch := source.Availability.Weekends && candidate.Availability.Weekends
	if overlapHours < cfg.MinOverlapHours && !weekendsMatch {
		res.Reason = ReasonInsufficientOverlap
		return res
	}

	if len(roleOverlap) == 0 && len(skillOverlap) == 0 {
		res.Reason = ReasonNoSharedInterest
		return res
	}

	res.OK = true
	return res
}
