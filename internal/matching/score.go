package matching

import (
	"math"

	"campus-teamup/internal/model"
)

// ScoreBreakdown is the componentized result of scoring one
// (source, candidate) pair. Component scores and Total are rounded for
// display; OverlapHours and the overlap lists are the raw values.
type ScoreBreakdown struct {
	Role         int      `json:"role"`
	Skill        int      `json:"skill"`
	Availability int      `json:"availability"`
	Hostel       int      `json:"hostel"`
	Commitment   int      `json:"commitment"`
	Total        int      `json:"total"`
	OverlapHours float64  `json:"overlap_hours"`
	RoleOverlap  []string `json:"role_overlap"`
	SkillOverlap []string `json:"skill_overlap"`
}

// ScoreMatch computes the weighted compatibility score for a pair of cards.
// It is total: callers normally invoke it only after PassesHardFilters, but
// no admissibility precondition is assumed.
func ScoreMatch(cfg Config, source, candidate model.IntentCard) ScoreBreakdown {
	roleOverlap := intersectTags(source.LookingForRoles, candidate.LookingForRoles)
	skillOverlap := intersectTags(source.RequiredSkills, candidate.RequiredSkills)
	overlapHours := OverlapHours(source.Availability, candidate.Availability)

	roleScore := clamp(
		float64(len(roleOverlap))/float64(max(1, max(len(source.LookingForRoles), len(candidate.LookingForRoles))))*cfg.RoleWeight,
		0, cfg.RoleWeight)

	skillScore := clamp(
		float64(len(skillOverlap))/float64(max(1, max(len(source.RequiredSkills), len(candidate.RequiredSkills))))*cfg.SkillWeight,
		0, cfg.SkillWeight)

	availabilityScore := clamp(
		math.Min(overlapHours, cfg.AvailabilityCapHours)/cfg.AvailabilityCapHours*cfg.AvailabilityWeight,
		0, cfg.AvailabilityWeight)

	var hostelScore float64
	if source.HostelStatus == candidate.HostelStatus {
		hostelScore = cfg.HostelBonus
	}

	commitmentScore := commitmentBonus(cfg, source.CommitmentLevel, candidate.CommitmentLevel)

	total := clamp(roleScore+skillScore+availabilityScore+hostelScore+commitmentScore, 0, 100)

	return ScoreBreakdown{
		Role:         int(math.Round(roleScore)),
		Skill:        int(math.Round(skillScore)),
		Availability: int(math.Round(availabilityScore)),
		Hostel:       int(math.Round(hostelScore)),
		Commitment:   int(math.Round(commitmentScore)),
		Total:        int(math.Round(total)),
		OverlapHours: overlapHours,
		RoleOverlap:  roleOverlap,
		SkillOverlap: skillOverlap,
	}
}

// commitmentBonus rewards proximity on the ordered commitment scale: full
// bonus for an exact match, a small one for adjacent levels, nothing for
// opposite ends or unknown levels.
func commitmentBonus(cfg Config, a, b model.CommitmentLevel) float64 {
	ai, bi := a.Index(), b.Index()
	if ai == -1 || bi == -1 {
		return 0
	}
	switch {
	case ai == bi:
		return cfg.CommitmentExactBonus
	case ai-bi == 1 || bi-ai == 1:
		return cfg.CommitmentAdjacentBonus
	default:
		return 0
	}
}

func clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}
