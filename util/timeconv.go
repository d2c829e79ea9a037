package util

import (
	"time"

	"github.com/spf13/cast"
)

const (
	dateLayout         = "2006-01-02"
	dateTimeLayout     = "2006-01-02 15:04"
	dateTimeFullLayout = "2006-01-02 15:04:05"
)

// DateToTimestamp converts a strict "YYYY-MM-DD" date to Unix seconds at
// UTC midnight. Impossible calendar dates ("2024-13-40") and anything not
// matching the layout report ok=false.
func DateToTimestamp(s string) (int64, bool) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return 0, false
	}
	return t.Unix(), true
}

// TimestampToDate renders Unix seconds as "YYYY-MM-DD HH:MM" in UTC.
func TimestampToDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(dateTimeLayout)
}

// FormatTime is TimestampToDate over loosely typed input, for template use.
// The API reports timestamps as numbers or numeric strings depending on the
// endpoint.
func FormatTime(v any) string {
	ts, err := cast.ToInt64E(v)
	if err != nil {
		return "N/A"
	}
	return TimestampToDate(ts)
}

// FormatDate drops the clock part, for daily series rows.
func FormatDate(v any) string {
	ts, err := cast.ToInt64E(v)
	if err != nil {
		return "N/A"
	}
	return time.Unix(ts, 0).UTC().Format(dateLayout)
}

// FormatTimeFull includes seconds, for candle rows and update stamps.
func FormatTimeFull(v any) string {
	ts, err := cast.ToInt64E(v)
	if err != nil {
		return "N/A"
	}
	return time.Unix(ts, 0).UTC().Format(dateTimeFullLayout)
}

// ParseISOTime parses the RFC3339 timestamps the TVL endpoint returns.
func ParseISOTime(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
