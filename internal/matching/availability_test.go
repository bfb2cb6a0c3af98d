package matching

import (
	"testing"

	"campus-teamup/internal/model"

	"github.com/stretchr/testify/assert"
)

func window(weekdays, weekends bool, start, end string) model.Availability {
	return model.Availability{
		Weekdays:  weekdays,
		Weekends:  weekends,
		StartTime: start,
		EndTime:   end,
	}
}

func TestOverlapHours(t *testing.T) {
	tests := []struct {
		name     string
		a        model.Availability
		b        model.Availability
		expected float64
	}{
		{
			"weekday evening overlap",
			window(true, false, "18:00", "22:00"),
			window(true, false, "17:00", "20:00"),
			2.0,
		},
		{
			"both day-classes double the overlap",
			window(true, true, "18:00", "22:00"),
			window(true, true, "17:00", "20:00"),
			4.0,
		},
		{
			"no shared day-class yields zero despite clock overlap",
			window(true, false, "18:00", "22:00"),
			window(false, true, "18:00", "22:00"),
			0,
		},
		{
			"disjoint clock ranges",
			window(true, true, "08:00", "10:00"),
			window(true, true, "18:00", "20:00"),
			0,
		},
		{
			"unparseable time yields zero",
			window(true, false, "9:00", "22:00"),
			window(true, false, "17:00", "20:00"),
			0,
		},
		{
			"non-positive window yields zero",
			window(true, false, "22:00", "18:00"),
			window(true, false, "17:00", "20:00"),
			0,
		},
		{
			"zero-length window yields zero",
			window(true, false, "18:00", "18:00"),
			window(true, false, "17:00", "20:00"),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, OverlapHours(tt.a, tt.b), 1e-9)
		})
	}
}

func TestOverlapHoursSymmetry(t *testing.T) {
	windows := []model.Availability{
		window(true, false, "18:00", "22:00"),
		window(true, true, "17:00", "20:00"),
		window(false, true, "09:30", "11:45"),
		window(false, false, "00:00", "23:59"),
		window(true, true, "bad", "22:00"),
	}

	for _, a := range windows {
		for _, b := range windows {
			assert.Equal(t, OverlapHours(a, b), OverlapHours(b, a))
		}
	}
}
