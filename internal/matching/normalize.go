package matching

import (
	"regexp"
	"strings"
)

var clockTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// NormalizeTagSet trims the given role/skill tags, drops empties and
// deduplicates case-insensitively while preserving the first-seen casing and
// insertion order. It is idempotent.
func NormalizeTagSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, raw := range values {
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ParseClockTime parses a strict 24-hour "HH:MM" string into minutes since
// midnight. The second return is false for anything malformed or out of
// range, including missing leading zeros.
func ParseClockTime(s string) (int, bool) {
	m := clockTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	// The regex guarantees two in-range digit groups.
	hours := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	mins := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return hours*60 + mins, true
}

// intersectTags returns the case-insensitive intersection of a and b,
// keeping a's casing and a's order of first match.
func intersectTags(a, b []string) []string {
	bSet := make(map[string]struct{}, len(b))
	for _, v := range b {
		bSet[strings.ToLower(v)] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		if _, ok := bSet[strings.ToLower(v)]; ok {
			out = append(out, v)
		}
	}
	return out
}
