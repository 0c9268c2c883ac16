package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDBDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 7, 9, 5, 2, 0, time.UTC)
	assert.Equal(t, "2024-03-07 09:05:02", FormatDBDateTime(ts))
}

func TestNowDBDateTimeRoundTrips(t *testing.T) {
	formatted := NowDBDateTime()
	parsed, err := time.Parse(DBDateTimeFormat, formatted)
	assert.NoError(t, err)
	assert.Equal(t, formatted, parsed.Format(DBDateTimeFormat))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, 24*time.Hour, ParseDuration("", 24*time.Hour))
}
