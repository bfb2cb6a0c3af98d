package matching

import (
	"fmt"
	"sort"
	"strings"

	"campus-teamup/internal/model"
)

// Explain converts a score breakdown into at most cfg.MaxReasons short
// human-readable reasons, ordered by the originating component score
// descending (stable among ties). Only components that actually contributed
// produce a reason, so the result can be empty.
func Explain(cfg Config, source, candidate model.IntentCard, breakdown ScoreBreakdown) []string {
	type reason struct {
		score int
		text  string
	}
	var reasons []reason

	if breakdown.Role > 0 && len(breakdown.RoleOverlap) > 0 {
		reasons = append(reasons, reason{
			score: breakdown.Role,
			text:  fmt.Sprintf("Role overlap: you both selected %s.", strings.Join(head(breakdown.RoleOverlap, 3), ", ")),
		})
	}

	if breakdown.Skill > 0 && len(breakdown.SkillOverlap) > 0 {
		reasons = append(reasons, reason{
			score: breakdown.Skill,
			text:  fmt.Sprintf("Skill overlap: %s.", strings.Join(head(breakdown.SkillOverlap, 4), ", ")),
		})
	}

	if breakdown.Availability > 0 {
		text := fmt.Sprintf("Your availability overlaps by ~%.1f hours.", breakdown.OverlapHours)
		if source.Availability.Weekends && candidate.Availability.Weekends {
			text = fmt.Sprintf("You both are available on weekends, with ~%.1fh time overlap.", breakdown.OverlapHours)
		}
		reasons = append(reasons, reason{score: breakdown.Availability, text: text})
	}

	if breakdown.Commitment > 0 {
		reasons = append(reasons, reason{
			score: breakdown.Commitment,
			text:  fmt.Sprintf("Commitment level aligns (%s vs %s).", source.CommitmentLevel, candidate.CommitmentLevel),
		})
	}

	if breakdown.Hostel > 0 {
		reasons = append(reasons, reason{
			score: breakdown.Hostel,
			text:  fmt.Sprintf("Same hostel status (%s).", source.HostelStatus),
		})
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].score > reasons[j].score
	})

	limit := cfg.MaxReasons
	if limit > len(reasons) {
		limit = len(reasons)
	}
	out := make([]string, 0, limit)
	for _, r := range reasons[:limit] {
		out = append(out, r.text)
	}
	return out
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
