package matching

import (
	"testing"

	"campus-teamup/internal/model"

	"github.com/stretchr/testify/assert"
)

func testCard(roles, skills []string, av model.Availability) model.IntentCard {
	return model.IntentCard{
		LookingForRoles: roles,
		RequiredSkills:  skills,
		Availability:    av,
		HostelStatus:    model.HostelHosteler,
		CommitmentLevel: model.CommitmentSerious,
	}
}

func TestPassesHardFilters(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("admissible with shared role and enough overlap", func(t *testing.T) {
		source := testCard([]string{"frontend"}, []string{"React"}, window(true, false, "18:00", "22:00"))
		candidate := testCard([]string{"frontend"}, []string{"SQL"}, window(true, false, "17:00", "20:00"))

		res := PassesHardFilters(cfg, source, candidate)
		assert.True(t, res.OK)
		assert.Empty(t, res.Reason)
		assert.Equal(t, []string{"frontend"}, res.RoleOverlap)
		assert.Empty(t, res.SkillOverlap)
		assert.InDelta(t, 2.0, res.OverlapHours, 1e-9)
	})

	t.Run("mutual weekends bypass the overlap threshold", func(t *testing.T) {
		// Zero clock overlap, but both weekend-available.
		source := testCard([]string{"frontend"}, nil, window(false, true, "08:00", "10:00"))
		candidate := testCard([]string{"frontend"}, nil, window(false, true, "18:00", "20:00"))

		res := PassesHardFilters(cfg, source, candidate)
		assert.True(t, res.OK)
		assert.Zero(t, res.OverlapHours)
	})

	t.Run("rejects when no role or skill is shared", func(t *testing.T) {
		source := testCard([]string{"frontend"}, []string{"React"}, window(true, false, "18:00", "22:00"))
		candidate := testCard([]string{"manager"}, []string{"SQL"}, window(true, false, "18:00", "22:00"))

		res := PassesHardFilters(cfg, source, candidate)
		assert.False(t, res.OK)
		assert.Equal(t, ReasonNoSharedInterest, res.Reason)
	})

	t.Run("rejects on insufficient overlap", func(t *testing.T) {
		// One hour weekday overlap is below the 1.5h threshold.
		source := testCard([]string{"frontend"}, nil, window(true, false, "18:00", "22:00"))
		candidate := testCard([]string{"frontend"}, nil, window(true, false, "21:00", "23:00"))

		res := PassesHardFilters(cfg, source, candidate)
		assert.False(t, res.OK)
		assert.Equal(t, ReasonInsufficientOverlap, res.Reason)
	})

	t.Run("availability failure reported before interest failure", func(t *testing.T) {
		source := testCard([]string{"frontend"}, nil, window(true, false, "08:00", "09:00"))
		candidate := testCard([]string{"manager"}, nil, window(true, false, "18:00", "20:00"))

		res := PassesHardFilters(cfg, source, candidate)
		assert.False(t, res.OK)
		assert.Equal(t, ReasonInsufficientOverlap, res.Reason)
	})

	t.Run("threshold is tunable", func(t *testing.T) {
		relaxed := cfg
		relaxed.MinOverlapHours = 0.5

		source := testCard([]string{"frontend"}, nil, window(true, false, "18:00", "22:00"))
		candidate := testCard([]string{"frontend"}, nil, window(true, false, "21:00", "23:00"))

		assert.False(t, PassesHardFilters(cfg, source, candidate).OK)
		assert.True(t, PassesHardFilters(relaxed, source, candidate).OK)
	})
}
