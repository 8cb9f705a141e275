package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	v, err := ParseTimeOfDay("08:30")
	assert.NoError(t, err)
	assert.Equal(t, TimeOfDay(8*60+30), v)
	assert.Equal(t, "08:30", v.String())

	midnight, err := ParseTimeOfDay("00:00")
	assert.NoError(t, err)
	assert.Equal(t, TimeOfDay(0), midnight)

	for _, bad := range []string{"24:00", "8am", "12:60", "9:30", "10:30xyz", "10-30", ""} {
		_, err = ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeOfDay_JSONRoundTrip(t *testing.T) {
	v, _ := ParseTimeOfDay("22:00")
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	assert.Equal(t, `"22:00"`, string(data))

	var parsed TimeOfDay
	assert.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, v, parsed)

	assert.Error(t, json.Unmarshal([]byte(`"25:99"`), &parsed))
}

func TestOverlaps_HalfOpen(t *testing.T) {
	nine, _ := ParseTimeOfDay("09:00")
	ten, _ := ParseTimeOfDay("10:00")
	eleven, _ := ParseTimeOfDay("11:00")
	halfTen, _ := ParseTimeOfDay("10:30")

	// back-to-back intervals do not overlap
	assert.False(t, Overlaps(nine, ten, ten, eleven))
	assert.False(t, Overlaps(ten, eleven, nine, ten))

	assert.True(t, Overlaps(ten, eleven, halfTen, eleven))
	assert.True(t, Overlaps(nine, eleven, ten, halfTen))
	assert.False(t, Overlaps(nine, ten, halfTen, eleven))
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	assert.NoError(t, err)
	assert.True(t, d.Before("2025-06-02"))
	assert.False(t, d.Before("2025-06-01"))
	assert.False(t, d.Before("2025-05-31"))

	_, err = ParseDate("01.06.2025")
	assert.Error(t, err)

	assert.Equal(t, Date("2025-06-01"), DateOf(time.Date(2025, 6, 1, 23, 15, 0, 0, time.UTC)))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	assert.NoError(t, json.Unmarshal([]byte(`"2025-06-01"`), &d))
	assert.Equal(t, Date("2025-06-01"), d)

	for _, bad := range []string{`"not-a-date"`, `"2025-13-01"`, `"2025-6-01"`, `""`} {
		assert.Error(t, json.Unmarshal([]byte(bad), new(Date)), bad)
	}
}

func TestCourt_IsClosedOn(t *testing.T) {
	c := Court{ClosedDates: []Date{"2025-07-04"}}
	assert.True(t, c.IsClosedOn("2025-07-04"))
	assert.False(t, c.IsClosedOn("2025-07-05"))
}
