package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DBDateTimeFormat is the fixed timestamp layout used by the legacy database
// schema. Timestamps are stored as plain strings in this format, not as
// native date columns.
const DBDateTimeFormat = "2006-01-02 15:04:05"

// FormatDBDateTime formats a time in the legacy database layout.
func FormatDBDateTime(t time.Time) string {
	return t.Format(DBDateTimeFormat)
}

// NowDBDateTime returns the current server time in the legacy database layout.
func NowDBDateTime() string {
	return FormatDBDateTime(time.Now())
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
