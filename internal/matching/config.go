// Package matching ranks intent cards against each other. Every function in
// this package is a pure transformation of its inputs: no I/O, no shared
// state, safe to call concurrently.
package matching

// Config defines the weights and thresholds used by the hard filter, the
// scorer and the rationale generator. All values are tunable at startup.
type Config struct {
	// MinOverlapHours is the minimum effective weekly overlap required by
	// the hard filter, unless both cards are weekend-available.
	MinOverlapHours float64

	// Component maxima. Role and skill dominate because shared purpose
	// matters most; availability is secondary; the rest are nudges.
	RoleWeight         float64
	SkillWeight        float64
	AvailabilityWeight float64
	HostelBonus        float64

	// Commitment bonus by distance on the casual < serious < win scale.
	CommitmentExactBonus    float64
	CommitmentAdjacentBonus float64

	// AvailabilityCapHours caps the overlap counted toward the
	// availability component.
	AvailabilityCapHours float64

	// MaxReasons limits the rationale list length.
	MaxReasons int
}

// DefaultConfig returns the production weighting.
func DefaultConfig() Config {
	return Config{
		MinOverlapHours:         1.5,
		RoleWeight:              40,
		SkillWeight:             30,
		AvailabilityWeight:      20,
		HostelBonus:             5,
		CommitmentExactBonus:    5,
		CommitmentAdjacentBonus: 2,
		AvailabilityCapHours:    6,
		MaxReasons:              3,
	}
}
